package engine

import (
	"exam_prep_backend/internal/model"
	"testing"
)

func testTextbook(total int) model.Textbook {
	return model.Textbook{Title: "基礎英文法", Subject: "english", TotalProblems: total}
}

func testSchedule(start, end string) *model.StudySchedule {
	return &model.StudySchedule{StartDate: start, EndDate: end}
}

func TestCalculateProgressMidSchedule(t *testing.T) {
	// 总题数100、总天数10、已过4天、已解50题
	// => 理想 round(100/10*4)=40、偏差+10、状态on_track
	// => 剩余6天的每日目标 ceil((100-50)/6)=9
	textbook := testTextbook(100)
	schedule := testSchedule("2025-04-01", "2025-04-10")
	logs := []model.StudyLog{
		{Date: "2025-04-01", ActualAmount: 20},
		{Date: "2025-04-02", ActualAmount: 15},
		{Date: "2025-04-04", ActualAmount: 15},
	}

	report := CalculateProgress(textbook, schedule, logs, mustDate(t, "2025-04-04"))

	if report.TotalDays != 10 || report.ElapsedDays != 4 || report.RemainingDays != 6 {
		t.Fatalf("days = %d/%d/%d, want 10/4/6", report.TotalDays, report.ElapsedDays, report.RemainingDays)
	}
	if report.IdealSolved != 40 {
		t.Fatalf("idealSolved = %d, want 40", report.IdealSolved)
	}
	if report.SolvedProblems != 50 {
		t.Fatalf("solvedProblems = %d, want 50", report.SolvedProblems)
	}
	if report.Deviation != 10 {
		t.Fatalf("deviation = %d, want +10", report.Deviation)
	}
	if report.Status != StatusOnTrack {
		t.Fatalf("status = %s, want on_track", report.Status)
	}
	if report.DailyTarget != 9 {
		t.Fatalf("dailyTarget = %d, want 9", report.DailyTarget)
	}
	if report.ProgressPercentage != 50 {
		t.Fatalf("progressPercentage = %f, want 50", report.ProgressPercentage)
	}
}

func TestCalculateProgressInvariants(t *testing.T) {
	textbook := testTextbook(137)
	schedule := testSchedule("2025-04-01", "2025-06-30")
	logs := []model.StudyLog{{Date: "2025-04-10", ActualAmount: 30}}

	for _, today := range []string{"2025-03-01", "2025-04-01", "2025-05-15", "2025-06-30", "2025-12-31"} {
		report := CalculateProgress(textbook, schedule, logs, mustDate(t, today))

		if report.IdealSolved < 0 || report.IdealSolved > report.TotalProblems {
			t.Fatalf("today=%s: idealSolved %d outside [0, %d]", today, report.IdealSolved, report.TotalProblems)
		}
		if report.ElapsedDays+report.RemainingDays != report.TotalDays {
			t.Fatalf("today=%s: elapsed %d + remaining %d != total %d", today, report.ElapsedDays, report.RemainingDays, report.TotalDays)
		}
	}
}

func TestCalculateProgressBeforeStart(t *testing.T) {
	report := CalculateProgress(testTextbook(100), testSchedule("2025-04-01", "2025-04-10"), nil, mustDate(t, "2025-03-20"))

	if report.ElapsedDays != 0 {
		t.Fatalf("elapsedDays = %d, want 0", report.ElapsedDays)
	}
	if report.IdealSolved != 0 {
		t.Fatalf("idealSolved = %d, want 0", report.IdealSolved)
	}
}

func TestCalculateProgressAfterEnd(t *testing.T) {
	// 结束日已过：elapsed=totalDays、remaining=0、每日目标退化为未完成题数
	logs := []model.StudyLog{{Date: "2025-04-05", ActualAmount: 60}}
	report := CalculateProgress(testTextbook(100), testSchedule("2025-04-01", "2025-04-10"), logs, mustDate(t, "2025-05-01"))

	if report.ElapsedDays != report.TotalDays {
		t.Fatalf("elapsedDays = %d, want totalDays %d", report.ElapsedDays, report.TotalDays)
	}
	if report.RemainingDays != 0 {
		t.Fatalf("remainingDays = %d, want 0", report.RemainingDays)
	}
	if report.DailyTarget != 40 {
		t.Fatalf("dailyTarget = %d, want outstanding 40", report.DailyTarget)
	}
}

func TestCalculateProgressZeroTotalProblems(t *testing.T) {
	report := CalculateProgress(testTextbook(0), testSchedule("2025-04-01", "2025-04-10"), nil, mustDate(t, "2025-04-05"))

	if report.ProgressPercentage != 0 {
		t.Fatalf("progressPercentage = %f, want 0 by convention", report.ProgressPercentage)
	}
}

func TestCalculateProgressNoSchedule(t *testing.T) {
	logs := []model.StudyLog{{Date: "2025-04-01", ActualAmount: 25}}
	report := CalculateProgress(testTextbook(100), nil, logs, mustDate(t, "2025-04-05"))

	if report.HasSchedule {
		t.Fatalf("report without schedule should have HasSchedule=false")
	}
	if report.SolvedProblems != 25 {
		t.Fatalf("solvedProblems = %d, want 25", report.SolvedProblems)
	}
	if report.RemainingProblems != 75 {
		t.Fatalf("remainingProblems = %d, want 75", report.RemainingProblems)
	}
}

func TestCalculateProgressScheduleOverride(t *testing.T) {
	schedule := testSchedule("2025-04-01", "2025-04-10")
	schedule.TotalProblems = 200

	report := CalculateProgress(testTextbook(100), schedule, nil, mustDate(t, "2025-04-05"))
	if report.TotalProblems != 200 {
		t.Fatalf("totalProblems = %d, want schedule override 200", report.TotalProblems)
	}
}

func TestCalculateProgressLogsOutsideWindowStillCount(t *testing.T) {
	// 计划区间外的日志也计入实际解题数
	logs := []model.StudyLog{
		{Date: "2025-03-15", ActualAmount: 10},
		{Date: "2025-04-05", ActualAmount: 20},
		{Date: "2025-07-01", ActualAmount: 5},
	}
	report := CalculateProgress(testTextbook(100), testSchedule("2025-04-01", "2025-04-10"), logs, mustDate(t, "2025-04-05"))

	if report.SolvedProblems != 35 {
		t.Fatalf("solvedProblems = %d, want 35", report.SolvedProblems)
	}
}

func TestCalculateProgressCurve(t *testing.T) {
	logs := []model.StudyLog{
		{Date: "2025-04-03", ActualAmount: 15},
		{Date: "2025-04-01", ActualAmount: 10},
		{Date: "bad-date", ActualAmount: 99},
	}
	report := CalculateProgress(testTextbook(100), testSchedule("2025-04-01", "2025-04-10"), logs, mustDate(t, "2025-04-05"))

	if len(report.Curve) != 2 {
		t.Fatalf("curve has %d points, want 2 (bad date skipped)", len(report.Curve))
	}
	if report.Curve[0].Date != "2025-04-01" || report.Curve[1].Date != "2025-04-03" {
		t.Fatalf("curve not in chronological order: %+v", report.Curve)
	}
	if report.Curve[0].Actual != 10 || report.Curve[1].Actual != 25 {
		t.Fatalf("actual cumulative wrong: %+v", report.Curve)
	}
	// 理想值按10题/天推进
	if report.Curve[0].Ideal != 10 || report.Curve[1].Ideal != 30 {
		t.Fatalf("ideal cumulative wrong: %+v", report.Curve)
	}
}
