package service

import (
	"errors"
	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type ProgressService struct {
	TextbookRepo *repository.TextbookRepository
	ScheduleRepo *repository.ScheduleRepository
	StudyLogRepo *repository.StudyLogRepository
}

func NewProgressService(
	textbookRepo *repository.TextbookRepository,
	scheduleRepo *repository.ScheduleRepository,
	studyLogRepo *repository.StudyLogRepository,
) *ProgressService {
	return &ProgressService{
		TextbookRepo: textbookRepo,
		ScheduleRepo: scheduleRepo,
		StudyLogRepo: studyLogRepo,
	}
}

// GetProgress 计算一本教材的进度报告。today 由调用方传入
func (s *ProgressService) GetProgress(textbookID uint, today time.Time) (*engine.ProgressReport, error) {
	textbook, err := s.TextbookRepo.FindByID(textbookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTextbookNotFound
	}
	if err != nil {
		return nil, err
	}

	// 没有计划不是错误，返回无计划变体
	schedule, err := s.ScheduleRepo.FindByTextbookID(textbookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		schedule = nil
	} else if err != nil {
		return nil, err
	}

	logs, err := s.StudyLogRepo.FindByTextbookID(textbookID)
	if err != nil {
		return nil, err
	}

	report := engine.CalculateProgress(*textbook, schedule, logs, today)
	return &report, nil
}

// GetAllProgress 计算全部教材的进度报告
func (s *ProgressService) GetAllProgress(today time.Time) ([]engine.ProgressReport, error) {
	textbooks, err := s.TextbookRepo.FindAll()
	if err != nil {
		return nil, err
	}

	reports := make([]engine.ProgressReport, 0, len(textbooks))
	for _, textbook := range textbooks {
		report, err := s.GetProgress(textbook.ID, today)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}
