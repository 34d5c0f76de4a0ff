package engine

import (
	"errors"
	"time"
)

// ErrZeroWeeklyQuota 每周配额总和为0时计划无法求解，保存前必须提示用户
var ErrZeroWeeklyQuota = errors.New("每周配额总和必须大于0")

// WeekdayQuota 每周7天的刷题配额，周日=0 ... 周六=6
type WeekdayQuota [7]int

// QuotaFromSlice 由存储层的JSON数组构造配额。长度不足补0，多余忽略
func QuotaFromSlice(vals []int) WeekdayQuota {
	var q WeekdayQuota
	for i := 0; i < len(q) && i < len(vals); i++ {
		q[i] = vals[i]
	}
	return q
}

// WeeklyTotal 一周配额总和
func (q WeekdayQuota) WeeklyTotal() int {
	total := 0
	for _, v := range q {
		total += v
	}
	return total
}

// ResolveEndDate 按周配额把总题数摊到整周上，求计划结束日（含端点）。
//
// weeksNeeded = ceil(problemCount / weeklyTotal)
// endDate = startDate + weeksNeeded*7 - 1 天
//
// 最后一周即使没填满也按整周计算日历时间；不校验余量具体落在哪几个
// 星期几上，下游的进度对比依赖这个公式，不要改成按天精确分摊。
func ResolveEndDate(start time.Time, quota WeekdayQuota, problemCount int) (time.Time, error) {
	weekly := quota.WeeklyTotal()
	if weekly <= 0 {
		return time.Time{}, ErrZeroWeeklyQuota
	}

	weeks := (problemCount + weekly - 1) / weekly
	// 题数为0的教材仍然占一周，保证 endDate >= startDate
	if weeks < 1 {
		weeks = 1
	}

	return dateOnly(start).AddDate(0, 0, weeks*7-1), nil
}
