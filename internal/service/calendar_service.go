package service

import (
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/engine"
	"fmt"
	"time"
)

type CalendarService struct {
	TimelineService *TimelineService
	Config          *config.Config
}

func NewCalendarService(timelineService *TimelineService, cfg *config.Config) *CalendarService {
	return &CalendarService{
		TimelineService: timelineService,
		Config:          cfg,
	}
}

// GetLayout 计算日历布局。daily 为滚动窗口，yearly 为 today 所在学年的固定窗口
func (s *CalendarService) GetLayout(resolution string, width float64, today time.Time) (*engine.Layout, error) {
	res := engine.Resolution(resolution)

	var window engine.Window
	switch res {
	case engine.ResolutionDaily:
		window = engine.DailyWindow(today)
	case engine.ResolutionYearly:
		startMonth := time.Month(s.Config.Calendar.AcademicYearStartMonth)
		year := engine.AcademicYearOf(today, startMonth)
		window = engine.YearlyWindow(year, startMonth)
	default:
		return nil, fmt.Errorf("unknown resolution: %s", resolution)
	}

	events, err := s.TimelineService.BuildEvents()
	if err != nil {
		return nil, err
	}

	layout := engine.ComputeLayout(window, width, engine.Sorted(events), today, res)
	return &layout, nil
}
