package service

import (
	"errors"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type TextbookService struct {
	TextbookRepo *repository.TextbookRepository
	ScheduleRepo *repository.ScheduleRepository
}

func NewTextbookService(textbookRepo *repository.TextbookRepository, scheduleRepo *repository.ScheduleRepository) *TextbookService {
	return &TextbookService{
		TextbookRepo: textbookRepo,
		ScheduleRepo: scheduleRepo,
	}
}

func (s *TextbookService) GetTextbooks(subject string) ([]model.Textbook, error) {
	if subject != "" {
		return s.TextbookRepo.FindBySubject(subject)
	}
	return s.TextbookRepo.FindAll()
}

func (s *TextbookService) GetTextbook(id uint) (*model.Textbook, error) {
	textbook, err := s.TextbookRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTextbookNotFound
	}
	return textbook, err
}

func (s *TextbookService) CreateTextbook(textbook *model.Textbook) error {
	return s.TextbookRepo.Create(textbook)
}

func (s *TextbookService) UpdateTextbook(textbook *model.Textbook) error {
	if _, err := s.GetTextbook(textbook.ID); err != nil {
		return err
	}
	return s.TextbookRepo.Update(textbook)
}

// DeleteTextbook 删除教材及其学习计划。学习记录保留（不自动删除）
func (s *TextbookService) DeleteTextbook(id uint) error {
	if _, err := s.GetTextbook(id); err != nil {
		return err
	}

	if schedule, err := s.ScheduleRepo.FindByTextbookID(id); err == nil {
		if err := s.ScheduleRepo.Delete(schedule.ID); err != nil {
			return err
		}
	}

	return s.TextbookRepo.Delete(id)
}

// LinkAnkiDeck 绑定外部闪卡牌组ID，引擎只透传不解析
func (s *TextbookService) LinkAnkiDeck(id uint, deckID string) (*model.Textbook, error) {
	textbook, err := s.GetTextbook(id)
	if err != nil {
		return nil, err
	}

	textbook.AnkiDeckID = deckID
	if err := s.TextbookRepo.Update(textbook); err != nil {
		return nil, err
	}
	return textbook, nil
}
