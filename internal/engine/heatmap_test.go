package engine

import (
	"exam_prep_backend/internal/model"
	"testing"
)

func TestYearDensityBucketCount(t *testing.T) {
	buckets, _ := YearDensity(2025, nil)
	if len(buckets) != 365 {
		t.Fatalf("2025 has %d buckets, want 365", len(buckets))
	}

	// 闰年由日历推导而不是写死365
	buckets, _ = YearDensity(2024, nil)
	if len(buckets) != 366 {
		t.Fatalf("2024 has %d buckets, want 366", len(buckets))
	}

	if buckets[0].Date != "2024-01-01" || buckets[len(buckets)-1].Date != "2024-12-31" {
		t.Fatalf("buckets should span the whole year: %s .. %s", buckets[0].Date, buckets[len(buckets)-1].Date)
	}
}

func TestYearDensityAggregation(t *testing.T) {
	logs := []model.StudyLog{
		{Date: "2025-04-01", ActualAmount: 10},
		{Date: "2025-04-01", ActualAmount: 5}, // 同一天多本教材
		{Date: "2025-09-20", ActualAmount: 30},
		{Date: "2024-12-31", ActualAmount: 99}, // 目标年份之外
		{Date: "bogus", ActualAmount: 7},       // 无法解析
	}

	buckets, stats := YearDensity(2025, logs)

	byDate := make(map[string]int, len(buckets))
	for _, b := range buckets {
		byDate[b.Date] = b.Count
	}

	if byDate["2025-04-01"] != 15 {
		t.Fatalf("2025-04-01 count = %d, want 15", byDate["2025-04-01"])
	}
	if byDate["2025-09-20"] != 30 {
		t.Fatalf("2025-09-20 count = %d, want 30", byDate["2025-09-20"])
	}
	if byDate["2025-01-01"] != 0 {
		t.Fatalf("day without logs should be 0")
	}

	if stats.Total != 45 {
		t.Fatalf("total = %d, want 45", stats.Total)
	}
	if stats.ActiveDays != 2 {
		t.Fatalf("activeDays = %d, want 2", stats.ActiveDays)
	}
	if stats.MaxCount != 30 {
		t.Fatalf("maxCount = %d, want 30", stats.MaxCount)
	}
	if want := 45.0 / 365.0; stats.DailyMean != want {
		t.Fatalf("dailyMean = %f, want %f", stats.DailyMean, want)
	}
}
