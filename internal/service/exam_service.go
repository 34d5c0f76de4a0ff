package service

import (
	"errors"
	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type ExamService struct {
	ExamRepo       *repository.ExamRepository
	UniversityRepo *repository.UniversityRepository
}

func NewExamService(examRepo *repository.ExamRepository, universityRepo *repository.UniversityRepository) *ExamService {
	return &ExamService{
		ExamRepo:       examRepo,
		UniversityRepo: universityRepo,
	}
}

// ExamRequest 创建/更新考试的入参
type ExamRequest struct {
	Name         string `json:"name" binding:"required"`
	Date         string `json:"date" binding:"required"`
	IsMock       bool   `json:"isMock"`
	ExamType     string `json:"examType"`
	UniversityID *uint  `json:"universityId"`
}

func (s *ExamService) CreateExam(req *ExamRequest) (*model.Exam, error) {
	// 新建考试要求日期合法，历史脏数据只在读取端容忍
	if !engine.IsValidDate(req.Date) {
		return nil, util.ErrInvalidDate
	}

	if req.UniversityID != nil {
		if _, err := s.UniversityRepo.FindByID(*req.UniversityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrUniversityNotFound
			}
			return nil, err
		}
	}

	exam := &model.Exam{
		Name:         req.Name,
		Date:         req.Date,
		IsMock:       req.IsMock,
		ExamType:     req.ExamType,
		UniversityID: req.UniversityID,
	}
	if err := s.ExamRepo.Create(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) UpdateExam(id uint, req *ExamRequest) (*model.Exam, error) {
	exam, err := s.GetExam(id)
	if err != nil {
		return nil, err
	}

	if !engine.IsValidDate(req.Date) {
		return nil, util.ErrInvalidDate
	}

	exam.Name = req.Name
	exam.Date = req.Date
	exam.IsMock = req.IsMock
	exam.ExamType = req.ExamType
	exam.UniversityID = req.UniversityID

	if err := s.ExamRepo.Update(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) GetExam(id uint) (*model.Exam, error) {
	exam, err := s.ExamRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	return exam, err
}

func (s *ExamService) GetExams() ([]model.Exam, error) {
	return s.ExamRepo.FindAll()
}

func (s *ExamService) DeleteExam(id uint) error {
	if _, err := s.GetExam(id); err != nil {
		return err
	}
	return s.ExamRepo.Delete(id)
}

func (s *ExamService) CreateUniversity(university *model.University) error {
	return s.UniversityRepo.Create(university)
}

func (s *ExamService) UpdateUniversity(university *model.University) error {
	if _, err := s.GetUniversity(university.ID); err != nil {
		return err
	}
	return s.UniversityRepo.Update(university)
}

func (s *ExamService) GetUniversity(id uint) (*model.University, error) {
	university, err := s.UniversityRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUniversityNotFound
	}
	return university, err
}

func (s *ExamService) GetUniversities() ([]model.University, error) {
	return s.UniversityRepo.FindAll()
}

func (s *ExamService) DeleteUniversity(id uint) error {
	if _, err := s.GetUniversity(id); err != nil {
		return err
	}
	return s.UniversityRepo.Delete(id)
}
