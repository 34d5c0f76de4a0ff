package engine

import (
	"exam_prep_backend/internal/model"
	"math"
	"sort"
	"time"
)

// ProgressStatus 实际进度相对理想曲线的状态
type ProgressStatus string

const (
	StatusOnTrack ProgressStatus = "on_track"
	StatusBehind  ProgressStatus = "behind"
)

// CurvePoint 理想/实际累计曲线上的一个点，用于绘图
type CurvePoint struct {
	Date   string `json:"date"`
	Ideal  int    `json:"ideal"`
	Actual int    `json:"actual"`
}

// ProgressReport 一本教材的进度报告，每次请求重新计算，无独立身份
type ProgressReport struct {
	Textbook    model.Textbook       `json:"textbook"`
	Schedule    *model.StudySchedule `json:"schedule,omitempty"`
	HasSchedule bool                 `json:"hasSchedule"`

	TotalProblems      int     `json:"totalProblems"`
	SolvedProblems     int     `json:"solvedProblems"`
	RemainingProblems  int     `json:"remainingProblems"`
	ProgressPercentage float64 `json:"progressPercentage"`

	TotalDays     int `json:"totalDays"`
	ElapsedDays   int `json:"elapsedDays"`
	RemainingDays int `json:"remainingDays"`

	IdealSolved int            `json:"idealSolved"`
	Deviation   int            `json:"deviation"`
	Status      ProgressStatus `json:"status"`
	DailyTarget int            `json:"dailyTarget"`

	Curve []CurvePoint     `json:"curve"`
	Logs  []model.StudyLog `json:"logs"`
}

// CalculateProgress 计算理想/实际进度。today 由调用方传入以保证可测性。
// schedule 为 nil（或日期无法解析）时返回只携带教材信息的无计划变体
func CalculateProgress(textbook model.Textbook, schedule *model.StudySchedule, logs []model.StudyLog, today time.Time) ProgressReport {
	actualSolved := 0
	for _, l := range logs {
		actualSolved += l.ActualAmount
	}

	report := ProgressReport{
		Textbook:       textbook,
		TotalProblems:  textbook.TotalProblems,
		SolvedProblems: actualSolved,
		Status:         StatusOnTrack,
		Logs:           logs,
	}

	if schedule == nil {
		report.RemainingProblems = clampNonNegative(textbook.TotalProblems - actualSolved)
		report.ProgressPercentage = percentage(actualSolved, textbook.TotalProblems)
		return report
	}

	start, err := ParseDate(schedule.StartDate)
	if err != nil {
		return report
	}
	end, err := ParseDate(schedule.EndDate)
	if err != nil {
		return report
	}

	totalProblems := textbook.TotalProblems
	if schedule.TotalProblems > 0 {
		totalProblems = schedule.TotalProblems
	}

	totalDays := InclusiveDays(start, end)
	if totalDays < 1 {
		totalDays = 1
	}

	elapsedDays := elapsedWithin(start, end, today, totalDays)
	remainingDays := totalDays - elapsedDays

	// 理想日速率。totalDays 已保证 >= 1
	dailyIdealRate := float64(totalProblems) / float64(totalDays)

	idealSolved := int(math.Round(dailyIdealRate * float64(elapsedDays)))
	if idealSolved > totalProblems {
		idealSolved = totalProblems
	}

	deviation := actualSolved - idealSolved
	status := StatusOnTrack
	if deviation < 0 {
		status = StatusBehind
	}

	outstanding := clampNonNegative(totalProblems - actualSolved)
	dailyTarget := outstanding
	if remainingDays > 0 {
		// ceil(outstanding / remainingDays)
		dailyTarget = (outstanding + remainingDays - 1) / remainingDays
	}

	report.Schedule = schedule
	report.HasSchedule = true
	report.TotalProblems = totalProblems
	report.RemainingProblems = outstanding
	report.ProgressPercentage = percentage(actualSolved, totalProblems)
	report.TotalDays = totalDays
	report.ElapsedDays = elapsedDays
	report.RemainingDays = remainingDays
	report.IdealSolved = idealSolved
	report.Deviation = deviation
	report.Status = status
	report.DailyTarget = dailyTarget
	report.Curve = buildCurve(start, end, totalDays, dailyIdealRate, totalProblems, logs)
	return report
}

// elapsedWithin 计划开始到 min(today, end) 的含端点天数，夹在 [0, totalDays]
func elapsedWithin(start, end, today time.Time, totalDays int) int {
	if dateOnly(today).Before(dateOnly(start)) {
		return 0
	}
	elapsed := InclusiveDays(start, minDate(dateOnly(today), dateOnly(end)))
	if elapsed > totalDays {
		elapsed = totalDays
	}
	return elapsed
}

// buildCurve 按日志日期顺序推进实际累计与理想累计，产出配对的曲线点。
// 日期无法解析的日志跳过
func buildCurve(start, end time.Time, totalDays int, rate float64, totalProblems int, logs []model.StudyLog) []CurvePoint {
	sorted := make([]model.StudyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	curve := make([]CurvePoint, 0, len(sorted))
	actualCum := 0
	for _, l := range sorted {
		day, err := ParseDate(l.Date)
		if err != nil {
			continue
		}
		actualCum += l.ActualAmount

		elapsed := elapsedWithin(start, end, day, totalDays)
		ideal := int(math.Round(rate * float64(elapsed)))
		if ideal > totalProblems {
			ideal = totalProblems
		}

		curve = append(curve, CurvePoint{
			Date:   l.Date,
			Ideal:  ideal,
			Actual: actualCum,
		})
	}
	return curve
}

// percentage 进度百分比，总题数为0时按约定返回0而不是NaN
func percentage(solved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(solved) / float64(total) * 100
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
