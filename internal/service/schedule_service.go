package service

import (
	"errors"
	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"

	"gorm.io/gorm"
)

type ScheduleService struct {
	ScheduleRepo *repository.ScheduleRepository
	TextbookRepo *repository.TextbookRepository
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository, textbookRepo *repository.TextbookRepository) *ScheduleService {
	return &ScheduleService{
		ScheduleRepo: scheduleRepo,
		TextbookRepo: textbookRepo,
	}
}

// ScheduleRequest 创建/更新学习计划的入参
type ScheduleRequest struct {
	TextbookID    uint   `json:"textbookId" binding:"required"`
	StartDate     string `json:"startDate" binding:"required"`
	DailyGoal     int    `json:"dailyGoal"`
	BufferDays    int    `json:"bufferDays"`
	WeekdayQuotas []int  `json:"weekdayQuotas" binding:"required"`
	TotalProblems int    `json:"totalProblems"`
}

// ResolvedSchedule 结束日预览结果
type ResolvedSchedule struct {
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	TotalDays     int    `json:"totalDays"`
	WeeklyTotal   int    `json:"weeklyTotal"`
	ProblemCount  int    `json:"problemCount"`
}

// Resolve 按周配额推算结束日。周配额为0时返回 engine.ErrZeroWeeklyQuota，
// 必须在保存前提示用户而不是静默给默认值
func (s *ScheduleService) Resolve(req *ScheduleRequest) (*ResolvedSchedule, error) {
	start, err := engine.ParseDate(req.StartDate)
	if err != nil {
		return nil, util.ErrInvalidDate
	}

	problemCount := req.TotalProblems
	if problemCount <= 0 {
		textbook, err := s.TextbookRepo.FindByID(req.TextbookID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTextbookNotFound
		}
		if err != nil {
			return nil, err
		}
		problemCount = textbook.TotalProblems
	}

	quota := engine.QuotaFromSlice(req.WeekdayQuotas)
	end, err := engine.ResolveEndDate(start, quota, problemCount)
	if err != nil {
		return nil, err
	}

	return &ResolvedSchedule{
		StartDate:    engine.FormatDate(start),
		EndDate:      engine.FormatDate(end),
		TotalDays:    engine.InclusiveDays(start, end),
		WeeklyTotal:  quota.WeeklyTotal(),
		ProblemCount: problemCount,
	}, nil
}

// CreateSchedule 创建学习计划，结束日由求解器计算
func (s *ScheduleService) CreateSchedule(req *ScheduleRequest) (*model.StudySchedule, error) {
	resolved, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	schedule := &model.StudySchedule{
		TextbookID:    req.TextbookID,
		StartDate:     resolved.StartDate,
		EndDate:       resolved.EndDate,
		DailyGoal:     req.DailyGoal,
		BufferDays:    req.BufferDays,
		WeekdayQuotas: req.WeekdayQuotas,
		TotalProblems: req.TotalProblems,
	}

	if err := s.ScheduleRepo.Create(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// UpdateSchedule 更新学习计划并重新求解结束日
func (s *ScheduleService) UpdateSchedule(id uint, req *ScheduleRequest) (*model.StudySchedule, error) {
	schedule, err := s.GetSchedule(id)
	if err != nil {
		return nil, err
	}

	resolved, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	schedule.TextbookID = req.TextbookID
	schedule.StartDate = resolved.StartDate
	schedule.EndDate = resolved.EndDate
	schedule.DailyGoal = req.DailyGoal
	schedule.BufferDays = req.BufferDays
	schedule.WeekdayQuotas = req.WeekdayQuotas
	schedule.TotalProblems = req.TotalProblems

	if err := s.ScheduleRepo.Update(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) GetSchedule(id uint) (*model.StudySchedule, error) {
	schedule, err := s.ScheduleRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrScheduleNotFound
	}
	return schedule, err
}

func (s *ScheduleService) GetSchedules() ([]model.StudySchedule, error) {
	return s.ScheduleRepo.FindAllWithTextbook()
}

func (s *ScheduleService) DeleteSchedule(id uint) error {
	if _, err := s.GetSchedule(id); err != nil {
		return err
	}
	return s.ScheduleRepo.Delete(id)
}
