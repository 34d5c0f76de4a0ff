package engine

import (
	"exam_prep_backend/internal/model"
	"time"
)

// DayBucket 某一天的刷题总量
type DayBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DensityStats 年度热力图的汇总统计
type DensityStats struct {
	Total      int     `json:"total"`
	ActiveDays int     `json:"activeDays"`
	MaxCount   int     `json:"maxCount"`
	DailyMean  float64 `json:"dailyMean"`
}

// YearDensity 把日志按天聚合到目标年份的每个日历日上。
// 桶的数量由日历推导（365或366），没有日志的日子计0。
// 日期无法解析或不在目标年份的日志忽略
func YearDensity(year int, logs []model.StudyLog) ([]DayBucket, DensityStats) {
	perDay := make(map[string]int)
	for _, l := range logs {
		d, err := ParseDate(l.Date)
		if err != nil || d.Year() != year {
			continue
		}
		perDay[l.Date] += l.ActualAmount
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := InclusiveDays(start, end)

	buckets := make([]DayBucket, 0, days)
	stats := DensityStats{}

	for i := 0; i < days; i++ {
		date := FormatDate(start.AddDate(0, 0, i))
		count := perDay[date]
		buckets = append(buckets, DayBucket{Date: date, Count: count})

		stats.Total += count
		if count > 0 {
			stats.ActiveDays++
		}
		if count > stats.MaxCount {
			stats.MaxCount = count
		}
	}

	stats.DailyMean = float64(stats.Total) / float64(days)

	return buckets, stats
}
