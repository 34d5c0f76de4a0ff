package engine

import (
	"exam_prep_backend/internal/model"
	"fmt"
	"sort"
)

// EventType 时间轴事件的封闭类型标签
type EventType string

const (
	EventTypeSchedule EventType = "schedule"
	EventTypeExam     EventType = "exam"
	EventTypeMockExam EventType = "mock_exam"
)

// Event 时间轴事件，由学习计划和考试投影而来的派生值对象。
// 每次聚合调用重新构建，不持久化。点事件的 EndDate 等于 StartDate
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      EventType `json:"type"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`

	// 原始记录，按类型只填其一
	Schedule *model.StudySchedule `json:"schedule,omitempty"`
	Exam     *model.Exam          `json:"exam,omitempty"`
}

// BuildTimeline 把学习计划、正式考试、模拟考试合并为一条时间轴。
// 不去重：同一行记录每次调用都会生成一个新的事件值。
// 日期不合法的事件原样保留，由 Sorted / WithinWindow 在排序筛选时剔除
func BuildTimeline(schedules []model.StudySchedule, exams, mockExams []model.Exam) []Event {
	events := make([]Event, 0, len(schedules)+len(exams)+len(mockExams))

	for i := range schedules {
		s := schedules[i]
		title := ""
		if s.Textbook != nil {
			title = s.Textbook.Title
		}
		events = append(events, Event{
			ID:        fmt.Sprintf("schedule:%d", s.ID),
			Title:     title,
			Type:      EventTypeSchedule,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Schedule:  &s,
		})
	}

	for i := range exams {
		e := exams[i]
		title := e.Name
		// 正式考试带上所属大学名
		if e.University != nil {
			title = e.University.Name + " " + e.Name
		}
		events = append(events, Event{
			ID:        fmt.Sprintf("exam:%d", e.ID),
			Title:     title,
			Type:      EventTypeExam,
			StartDate: e.Date,
			EndDate:   e.Date,
			Exam:      &e,
		})
	}

	for i := range mockExams {
		e := mockExams[i]
		events = append(events, Event{
			ID:        fmt.Sprintf("mock_exam:%d", e.ID),
			Title:     e.Name,
			Type:      EventTypeMockExam,
			StartDate: e.Date,
			EndDate:   e.Date,
			Exam:      &e,
		})
	}

	return events
}

// Sorted 按开始日期升序返回新切片，日期无法解析的事件被静默剔除
func Sorted(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if IsValidDate(ev.StartDate) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		// yyyy-MM-dd 的字典序即时间序
		return out[i].StartDate < out[j].StartDate
	})
	return out
}

// WithinWindow 筛选与 [start, end] 有交集的事件，日期不合法视为不在窗口内
func WithinWindow(events []Event, start, end string) []Event {
	s, err := ParseDate(start)
	if err != nil {
		return nil
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil
	}

	out := make([]Event, 0, len(events))
	for _, ev := range events {
		evStart, err := ParseDate(ev.StartDate)
		if err != nil {
			continue
		}
		evEnd := evStart
		if t, err := ParseDate(ev.EndDate); err == nil {
			evEnd = t
		}
		if evEnd.Before(s) || evStart.After(e) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
