package service

import (
	"errors"
	"testing"

	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/util"
)

func TestResolvePreview(t *testing.T) {
	s := NewScheduleService(nil, nil)

	resolved, err := s.Resolve(&ScheduleRequest{
		TextbookID:    1,
		StartDate:     "2025-04-01",
		WeekdayQuotas: []int{10, 10, 10, 10, 10, 10, 10},
		TotalProblems: 350,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if resolved.EndDate != "2025-05-05" {
		t.Fatalf("expected end date 2025-05-05, got %s", resolved.EndDate)
	}
	if resolved.TotalDays != 35 {
		t.Fatalf("expected 35 total days, got %d", resolved.TotalDays)
	}
	if resolved.WeeklyTotal != 70 {
		t.Fatalf("expected weekly total 70, got %d", resolved.WeeklyTotal)
	}
	if resolved.ProblemCount != 350 {
		t.Fatalf("expected problem count 350, got %d", resolved.ProblemCount)
	}
}

func TestResolveZeroQuota(t *testing.T) {
	s := NewScheduleService(nil, nil)

	_, err := s.Resolve(&ScheduleRequest{
		TextbookID:    1,
		StartDate:     "2025-04-01",
		WeekdayQuotas: []int{0, 0, 0, 0, 0, 0, 0},
		TotalProblems: 100,
	})
	if !errors.Is(err, engine.ErrZeroWeeklyQuota) {
		t.Fatalf("expected ErrZeroWeeklyQuota, got %v", err)
	}
}

func TestResolveInvalidStartDate(t *testing.T) {
	s := NewScheduleService(nil, nil)

	_, err := s.Resolve(&ScheduleRequest{
		TextbookID:    1,
		StartDate:     "04/01/2025",
		WeekdayQuotas: []int{10, 10, 10, 10, 10, 10, 10},
		TotalProblems: 100,
	})
	if !errors.Is(err, util.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
