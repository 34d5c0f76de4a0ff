package engine

import (
	"exam_prep_backend/internal/model"
	"testing"
)

func testTimelineFixtures() ([]model.StudySchedule, []model.Exam, []model.Exam) {
	textbook := &model.Textbook{Title: "数学重要問題集"}
	textbook.ID = 1

	schedule := model.StudySchedule{
		TextbookID: 1,
		Textbook:   textbook,
		StartDate:  "2025-04-01",
		EndDate:    "2025-05-05",
	}
	schedule.ID = 3

	university := &model.University{Name: "東京大学"}
	university.ID = 1

	exam := model.Exam{
		Name:       "二次試験",
		Date:       "2026-02-25",
		ExamType:   model.ExamTypeSecondary,
		University: university,
	}
	exam.ID = 9

	mock := model.Exam{
		Name:     "全国模試",
		Date:     "2025-07-13",
		IsMock:   true,
		ExamType: model.ExamTypeMock,
	}
	mock.ID = 12

	return []model.StudySchedule{schedule}, []model.Exam{exam}, []model.Exam{mock}
}

func TestBuildTimeline(t *testing.T) {
	schedules, exams, mocks := testTimelineFixtures()

	events := BuildTimeline(schedules, exams, mocks)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	byID := make(map[string]Event)
	for _, ev := range events {
		byID[ev.ID] = ev
	}

	sched := byID["schedule:3"]
	if sched.Type != EventTypeSchedule || sched.Title != "数学重要問題集" {
		t.Fatalf("schedule event wrong: %+v", sched)
	}
	if sched.StartDate != "2025-04-01" || sched.EndDate != "2025-05-05" {
		t.Fatalf("schedule event dates wrong: %+v", sched)
	}

	exam := byID["exam:9"]
	if exam.Type != EventTypeExam {
		t.Fatalf("exam event type = %s", exam.Type)
	}
	// 正式考试标题带大学名前缀
	if exam.Title != "東京大学 二次試験" {
		t.Fatalf("exam title = %q", exam.Title)
	}
	// 考试是点事件
	if exam.StartDate != exam.EndDate {
		t.Fatalf("exam should be a point event: %+v", exam)
	}

	mock := byID["mock_exam:12"]
	if mock.Type != EventTypeMockExam || mock.Title != "全国模試" {
		t.Fatalf("mock event wrong: %+v", mock)
	}
}

func TestBuildTimelineIndependentAllocations(t *testing.T) {
	schedules, exams, mocks := testTimelineFixtures()

	first := BuildTimeline(schedules, exams, mocks)
	second := BuildTimeline(schedules, exams, mocks)

	if first[0].ID != second[0].ID || first[0].Title != second[0].Title {
		t.Fatalf("repeated aggregation should be structurally equal")
	}
	if first[0].Schedule == second[0].Schedule {
		t.Fatalf("repeated aggregation should allocate independent events")
	}
}

func TestSortedDropsUnparsableDates(t *testing.T) {
	badExam := model.Exam{Name: "壊れた日付", Date: "invalid"}
	badExam.ID = 99
	schedules, exams, mocks := testTimelineFixtures()
	exams = append(exams, badExam)

	events := Sorted(BuildTimeline(schedules, exams, mocks))

	if len(events) != 3 {
		t.Fatalf("sorted view has %d events, want 3 (unparsable dropped)", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].StartDate > events[i].StartDate {
			t.Fatalf("events not sorted: %s before %s", events[i-1].StartDate, events[i].StartDate)
		}
	}
}

func TestWithinWindowOmitsUnparsableWithoutError(t *testing.T) {
	badExam := model.Exam{Name: "壊れた日付", Date: "not-a-date"}
	schedules, exams, mocks := testTimelineFixtures()
	exams = append(exams, badExam)

	events := WithinWindow(BuildTimeline(schedules, exams, mocks), "2025-04-01", "2026-03-31")

	for _, ev := range events {
		if ev.Title == "壊れた日付" {
			t.Fatalf("unparsable exam should be excluded from window filter")
		}
	}
	// 计划、二次试验、模试都与窗口相交
	if len(events) != 3 {
		t.Fatalf("got %d events in window, want 3", len(events))
	}
}

func TestWithinWindowOverlap(t *testing.T) {
	schedules, exams, mocks := testTimelineFixtures()
	events := BuildTimeline(schedules, exams, mocks)

	// 窗口只截到计划中段，仍应包含计划
	got := WithinWindow(events, "2025-04-10", "2025-04-20")
	if len(got) != 1 || got[0].Type != EventTypeSchedule {
		t.Fatalf("partially overlapping schedule should be included, got %+v", got)
	}

	// 窗口在所有事件之前
	got = WithinWindow(events, "2024-01-01", "2024-12-31")
	if len(got) != 0 {
		t.Fatalf("no events expected before 2025, got %d", len(got))
	}
}
