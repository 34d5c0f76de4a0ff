package service

import (
	"errors"
	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type StudyLogService struct {
	StudyLogRepo *repository.StudyLogRepository
	TextbookRepo *repository.TextbookRepository
}

func NewStudyLogService(studyLogRepo *repository.StudyLogRepository, textbookRepo *repository.TextbookRepository) *StudyLogService {
	return &StudyLogService{
		StudyLogRepo: studyLogRepo,
		TextbookRepo: textbookRepo,
	}
}

// StudyLogRequest 记录某天学习量的入参
type StudyLogRequest struct {
	TextbookID    uint   `json:"textbookId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	PlannedAmount int    `json:"plannedAmount"`
	ActualAmount  int    `json:"actualAmount" binding:"min=0"`
	Note          string `json:"note"`
}

// UpsertLog 按 (textbook_id, date) 创建或覆盖当天的记录
func (s *StudyLogService) UpsertLog(req *StudyLogRequest) (*model.StudyLog, error) {
	if !engine.IsValidDate(req.Date) {
		return nil, util.ErrInvalidDate
	}

	if _, err := s.TextbookRepo.FindByID(req.TextbookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTextbookNotFound
		}
		return nil, err
	}

	existing, err := s.StudyLogRepo.FindByTextbookAndDate(req.TextbookID, req.Date)
	if err == nil {
		existing.PlannedAmount = req.PlannedAmount
		existing.ActualAmount = req.ActualAmount
		existing.Note = req.Note
		if err := s.StudyLogRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log := &model.StudyLog{
		TextbookID:    req.TextbookID,
		Date:          req.Date,
		PlannedAmount: req.PlannedAmount,
		ActualAmount:  req.ActualAmount,
		Note:          req.Note,
	}
	if err := s.StudyLogRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *StudyLogService) GetLogs(textbookID uint) ([]model.StudyLog, error) {
	if textbookID > 0 {
		return s.StudyLogRepo.FindByTextbookID(textbookID)
	}
	return s.StudyLogRepo.FindAll()
}

func (s *StudyLogService) DeleteLog(id uint) error {
	if _, err := s.StudyLogRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}
	return s.StudyLogRepo.Delete(id)
}
