package engine

import (
	"fmt"
	"strconv"
	"time"
)

// Resolution 日历布局的两种分辨率
type Resolution string

const (
	ResolutionDaily  Resolution = "daily"  // 滚动窗口 [今天-7, 今天+60]
	ResolutionYearly Resolution = "yearly" // 固定学年窗口
)

// 日视图滚动窗口的前后天数
const (
	DailyWindowPastDays   = 7
	DailyWindowFutureDays = 60
)

// 布局几何常量（像素）
const (
	HeaderHeight = 40.0
	EventHeight  = 24.0
	EventMargin  = 4.0
)

// Window 布局的绝对日期窗口（含两端）
type Window struct {
	Start time.Time
	End   time.Time
}

// DailyWindow 以 today 为基准的滚动窗口
func DailyWindow(today time.Time) Window {
	base := dateOnly(today)
	return Window{
		Start: base.AddDate(0, 0, -DailyWindowPastDays),
		End:   base.AddDate(0, 0, DailyWindowFutureDays),
	}
}

// YearlyWindow 从 startMonth 月1日起整一年的学年窗口
func YearlyWindow(year int, startMonth time.Month) Window {
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(1, 0, -1),
	}
}

// AcademicYearOf 返回 today 所属的学年（学年开始月份之前算上一学年）
func AcademicYearOf(today time.Time, startMonth time.Month) int {
	if today.Month() < startMonth {
		return today.Year() - 1
	}
	return today.Year()
}

// MonthSegment 月份表头区段。所有区段宽度之和等于容器宽度
type MonthSegment struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// DayTick 日刻度。日视图逐日给出，年视图仅每月1日
type DayTick struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
}

// EventBox 单个事件的几何位置。
// 计划条按顺序纵向堆叠；考试/模拟考为通高竖线标记（Marker=true）
type EventBox struct {
	Event  Event   `json:"event"`
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Row    int     `json:"row"`
	Marker bool    `json:"marker"`
}

// Layout 日历布局结果，渲染层据此画图，引擎本身不产生像素
type Layout struct {
	Start        string         `json:"start"`
	End          string         `json:"end"`
	Days         int            `json:"days"`
	Width        float64        `json:"width"`
	ColumnWidth  float64        `json:"columnWidth"`
	HeaderHeight float64        `json:"headerHeight"`
	Months       []MonthSegment `json:"months"`
	DayTicks     []DayTick      `json:"dayTicks"`
	Events       []EventBox     `json:"events"`
	ShowToday    bool           `json:"showToday"`
	TodayX       float64        `json:"todayX"`
}

// ComputeLayout 把日期窗口投影到 [0, width) 的横轴上。
// 事件横向跨度为 [ (start-窗口起点)*列宽, (end+1天-窗口起点)*列宽 )，
// 即包含结束日整天；零时长点事件至少占一列宽
func ComputeLayout(win Window, width float64, events []Event, today time.Time, res Resolution) Layout {
	days := InclusiveDays(win.Start, win.End)
	if days < 1 {
		days = 1
	}
	col := width / float64(days)

	layout := Layout{
		Start:        FormatDate(win.Start),
		End:          FormatDate(win.End),
		Days:         days,
		Width:        width,
		ColumnWidth:  col,
		HeaderHeight: HeaderHeight,
	}

	layout.Months, layout.DayTicks = buildTicks(win, days, col, res)
	layout.Events = placeEvents(win, width, col, events)

	if WithinRange(today, win.Start, win.End) {
		layout.ShowToday = true
		layout.TodayX = float64(DaysBetween(win.Start, today))*col + col/2
	}

	return layout
}

// buildTicks 逐日扫描窗口，年月变化时开启新的月份区段，
// 最后一个区段的宽度以窗口右边缘收尾
func buildTicks(win Window, days int, col float64, res Resolution) ([]MonthSegment, []DayTick) {
	var months []MonthSegment
	var ticks []DayTick

	width := col * float64(days)
	curYear, curMonth := 0, time.Month(0)

	for i := 0; i < days; i++ {
		d := win.Start.AddDate(0, 0, i)
		x := float64(i) * col

		if d.Year() != curYear || d.Month() != curMonth {
			if len(months) > 0 {
				months[len(months)-1].Width = x - months[len(months)-1].X
			}
			months = append(months, MonthSegment{
				Label: fmt.Sprintf("%d月", int(d.Month())),
				X:     x,
			})
			curYear, curMonth = d.Year(), d.Month()
		}

		switch res {
		case ResolutionDaily:
			ticks = append(ticks, DayTick{
				Date:  FormatDate(d),
				Label: strconv.Itoa(d.Day()),
				X:     x,
			})
		case ResolutionYearly:
			if d.Day() == 1 {
				ticks = append(ticks, DayTick{
					Date:  FormatDate(d),
					Label: strconv.Itoa(d.Day()),
					X:     x,
				})
			}
		}
	}

	if len(months) > 0 {
		months[len(months)-1].Width = width - months[len(months)-1].X
	}

	return months, ticks
}

// placeEvents 计算每个事件的几何位置。日期无法解析或与窗口无交集的事件跳过
func placeEvents(win Window, width, col float64, events []Event) []EventBox {
	boxes := make([]EventBox, 0, len(events))
	scheduleRow := 0

	for _, ev := range events {
		start, err := ParseDate(ev.StartDate)
		if err != nil {
			continue
		}
		end := start
		if t, err := ParseDate(ev.EndDate); err == nil {
			end = t
		}

		x := float64(DaysBetween(win.Start, start)) * col
		endX := float64(DaysBetween(win.Start, end)+1) * col

		// 点事件最少占一列宽
		if endX-x < col {
			endX = x + col
		}

		if endX <= 0 || x >= width {
			continue
		}
		if x < 0 {
			x = 0
		}
		if endX > width {
			endX = width
		}

		switch ev.Type {
		case EventTypeSchedule:
			boxes = append(boxes, EventBox{
				Event:  ev,
				X:      x,
				Width:  endX - x,
				Y:      HeaderHeight + float64(scheduleRow)*(EventHeight+EventMargin),
				Height: EventHeight,
				Row:    scheduleRow,
			})
			scheduleRow++
		case EventTypeExam, EventTypeMockExam:
			// 瞬时事件画成通高竖线，不参与堆叠
			boxes = append(boxes, EventBox{
				Event:  ev,
				X:      x,
				Width:  endX - x,
				Y:      HeaderHeight,
				Marker: true,
			})
		}
	}

	return boxes
}
