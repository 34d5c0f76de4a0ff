// Package engine 实现学习进度与时间轴的核心计算。
// 所有函数都是纯函数：不做 I/O、不读系统时钟，"今天"由调用方显式传入。
package engine

import "time"

// DateLayout 边界日期格式，同 model.DateLayout
const DateLayout = "2006-01-02"

// ParseDate 解析 yyyy-MM-dd 格式的日历日期
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate 格式化为 yyyy-MM-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate 判断字符串是否为合法日期
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// dateOnly 截断到日，统一为UTC，避免时区/夏令时影响天数计算
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween start 到 end 的有符号天数差（end 在前为负）
func DaysBetween(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours() / 24)
}

// InclusiveDays 含两端的天数。end 早于 start 时返回 0
func InclusiveDays(start, end time.Time) int {
	d := DaysBetween(start, end)
	if d < 0 {
		return 0
	}
	return d + 1
}

// WithinRange 判断 d 是否落在 [start, end]（含两端）
func WithinRange(d, start, end time.Time) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(start)) && !day.After(dateOnly(end))
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
