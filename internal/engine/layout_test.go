package engine

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDailyWindowSpan(t *testing.T) {
	today := mustDate(t, "2025-04-15")
	win := DailyWindow(today)

	if FormatDate(win.Start) != "2025-04-08" {
		t.Fatalf("window start = %s, want 2025-04-08", FormatDate(win.Start))
	}
	if FormatDate(win.End) != "2025-06-14" {
		t.Fatalf("window end = %s, want 2025-06-14", FormatDate(win.End))
	}
	if days := InclusiveDays(win.Start, win.End); days != 68 {
		t.Fatalf("daily window spans %d days, want 68", days)
	}
}

func TestYearlyWindowSpan(t *testing.T) {
	win := YearlyWindow(2025, time.April)

	if FormatDate(win.Start) != "2025-04-01" || FormatDate(win.End) != "2026-03-31" {
		t.Fatalf("yearly window = [%s, %s]", FormatDate(win.Start), FormatDate(win.End))
	}
	if days := InclusiveDays(win.Start, win.End); days != 365 {
		t.Fatalf("academic year 2025 spans %d days, want 365", days)
	}
}

func TestAcademicYearOf(t *testing.T) {
	if y := AcademicYearOf(mustDate(t, "2025-03-31"), time.April); y != 2024 {
		t.Fatalf("2025-03-31 belongs to academic year %d, want 2024", y)
	}
	if y := AcademicYearOf(mustDate(t, "2025-04-01"), time.April); y != 2025 {
		t.Fatalf("2025-04-01 belongs to academic year %d, want 2025", y)
	}
}

func TestPointEventOccupiesOneColumn(t *testing.T) {
	today := mustDate(t, "2025-04-15")
	win := DailyWindow(today)
	events := []Event{
		{ID: "mock_exam:1", Type: EventTypeMockExam, StartDate: "2025-04-20", EndDate: "2025-04-20"},
	}

	layout := ComputeLayout(win, 1360, events, today, ResolutionDaily)

	if len(layout.Events) != 1 {
		t.Fatalf("got %d event boxes, want 1", len(layout.Events))
	}
	box := layout.Events[0]
	if !almostEqual(box.Width, layout.ColumnWidth) {
		t.Fatalf("point event width = %f, want one column %f", box.Width, layout.ColumnWidth)
	}
	if !box.Marker {
		t.Fatalf("exam events should be full-height markers")
	}
}

func TestMonthSegmentWidthsSumToContainer(t *testing.T) {
	today := mustDate(t, "2025-04-15")

	for _, tc := range []struct {
		win   Window
		res   Resolution
		width float64
	}{
		{DailyWindow(today), ResolutionDaily, 1360},
		{YearlyWindow(2025, time.April), ResolutionYearly, 1100},
		{YearlyWindow(2023, time.April), ResolutionYearly, 977.5}, // 含闰日的学年
	} {
		layout := ComputeLayout(tc.win, tc.width, nil, today, tc.res)

		sum := 0.0
		for _, m := range layout.Months {
			sum += m.Width
		}
		if !almostEqual(sum, tc.width) {
			t.Fatalf("month widths sum to %f, want %f", sum, tc.width)
		}
	}
}

func TestDayTicksByResolution(t *testing.T) {
	today := mustDate(t, "2025-04-15")

	daily := ComputeLayout(DailyWindow(today), 1360, nil, today, ResolutionDaily)
	if len(daily.DayTicks) != daily.Days {
		t.Fatalf("daily resolution should tick every day: %d ticks for %d days", len(daily.DayTicks), daily.Days)
	}

	yearly := ComputeLayout(YearlyWindow(2025, time.April), 1100, nil, today, ResolutionYearly)
	if len(yearly.DayTicks) != 12 {
		t.Fatalf("yearly resolution should tick each first-of-month: got %d", len(yearly.DayTicks))
	}
	for _, tick := range yearly.DayTicks {
		if tick.Label != "1" {
			t.Fatalf("yearly tick label = %q, want first-of-month", tick.Label)
		}
	}
}

func TestScheduleStacking(t *testing.T) {
	today := mustDate(t, "2025-04-15")
	win := DailyWindow(today)
	events := []Event{
		{ID: "schedule:1", Type: EventTypeSchedule, StartDate: "2025-04-10", EndDate: "2025-04-30"},
		{ID: "schedule:2", Type: EventTypeSchedule, StartDate: "2025-04-12", EndDate: "2025-05-10"},
		{ID: "exam:1", Type: EventTypeExam, StartDate: "2025-04-20", EndDate: "2025-04-20"},
	}

	layout := ComputeLayout(win, 1360, events, today, ResolutionDaily)

	if len(layout.Events) != 3 {
		t.Fatalf("got %d boxes, want 3", len(layout.Events))
	}

	first, second, exam := layout.Events[0], layout.Events[1], layout.Events[2]
	if first.Row != 0 || second.Row != 1 {
		t.Fatalf("schedule rows = %d, %d, want 0, 1", first.Row, second.Row)
	}
	if !almostEqual(second.Y-first.Y, EventHeight+EventMargin) {
		t.Fatalf("row pitch = %f, want %f", second.Y-first.Y, EventHeight+EventMargin)
	}
	// 考试标记不占堆叠行
	if !exam.Marker || exam.Row != 0 {
		t.Fatalf("exam marker should not consume a stacking row: %+v", exam)
	}
}

func TestTodayMarkerOnlyInsideWindow(t *testing.T) {
	today := mustDate(t, "2025-04-15")

	inside := ComputeLayout(DailyWindow(today), 1360, nil, today, ResolutionDaily)
	if !inside.ShowToday {
		t.Fatalf("today marker should be shown inside rolling window")
	}

	// 去年的学年窗口不含今天，标记省略而不是贴边
	outside := ComputeLayout(YearlyWindow(2023, time.April), 1100, nil, today, ResolutionYearly)
	if outside.ShowToday {
		t.Fatalf("today marker should be omitted outside the window")
	}
}

func TestEventBarClampedToWindow(t *testing.T) {
	today := mustDate(t, "2025-04-15")
	win := DailyWindow(today) // [2025-04-08, 2025-06-14]
	events := []Event{
		// 从窗口前开始、在窗口内结束
		{ID: "schedule:1", Type: EventTypeSchedule, StartDate: "2025-03-01", EndDate: "2025-04-20"},
		// 完全在窗口外
		{ID: "schedule:2", Type: EventTypeSchedule, StartDate: "2024-01-01", EndDate: "2024-02-01"},
	}

	layout := ComputeLayout(win, 1360, events, today, ResolutionDaily)

	if len(layout.Events) != 1 {
		t.Fatalf("out-of-window event should be skipped, got %d boxes", len(layout.Events))
	}
	if layout.Events[0].X != 0 {
		t.Fatalf("overflowing bar should clamp to left edge, x = %f", layout.Events[0].X)
	}
}

func TestUnparsableEventSkippedInLayout(t *testing.T) {
	today := mustDate(t, "2025-04-15")
	events := []Event{
		{ID: "exam:1", Type: EventTypeExam, StartDate: "garbage", EndDate: "garbage"},
	}

	layout := ComputeLayout(DailyWindow(today), 1360, events, today, ResolutionDaily)
	if len(layout.Events) != 0 {
		t.Fatalf("unparsable event should not be placed")
	}
}
