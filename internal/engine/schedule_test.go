package engine

import "testing"

func TestResolveEndDateWeeklyDistribution(t *testing.T) {
	// 每天10题、每周70题、共350题 => 5周 => 2025-05-05 结束
	start := mustDate(t, "2025-04-01")
	quota := WeekdayQuota{10, 10, 10, 10, 10, 10, 10}

	end, err := ResolveEndDate(start, quota, 350)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := FormatDate(end); got != "2025-05-05" {
		t.Fatalf("end date = %s, want 2025-05-05", got)
	}
}

func TestResolveEndDateCeilingPolicy(t *testing.T) {
	start := mustDate(t, "2025-04-01")

	cases := []struct {
		quota    WeekdayQuota
		problems int
	}{
		{WeekdayQuota{10, 10, 10, 10, 10, 10, 10}, 350},
		{WeekdayQuota{0, 5, 5, 5, 5, 5, 0}, 100},
		{WeekdayQuota{1, 0, 0, 0, 0, 0, 0}, 13},
		{WeekdayQuota{3, 0, 7, 0, 2, 0, 1}, 1},
		{WeekdayQuota{20, 20, 20, 20, 20, 0, 0}, 999},
	}

	for _, c := range cases {
		end, err := ResolveEndDate(start, c.quota, c.problems)
		if err != nil {
			t.Fatalf("resolve(%v, %d): %v", c.quota, c.problems, err)
		}

		duration := InclusiveDays(start, end)
		if duration%7 != 0 {
			t.Fatalf("duration %d is not whole weeks for quota %v problems %d", duration, c.quota, c.problems)
		}

		weekly := c.quota.WeeklyTotal()
		wantWeeks := (c.problems + weekly - 1) / weekly
		if duration/7 != wantWeeks {
			t.Fatalf("weeks = %d, want ceil(%d/%d) = %d", duration/7, c.problems, weekly, wantWeeks)
		}
	}
}

func TestResolveEndDateZeroQuotaFails(t *testing.T) {
	start := mustDate(t, "2025-04-01")

	_, err := ResolveEndDate(start, WeekdayQuota{}, 100)
	if err != ErrZeroWeeklyQuota {
		t.Fatalf("zero quota should fail with ErrZeroWeeklyQuota, got %v", err)
	}
}

func TestResolveEndDateZeroProblems(t *testing.T) {
	// 题数为0仍然占一个整周，保证 end >= start
	start := mustDate(t, "2025-04-01")

	end, err := ResolveEndDate(start, WeekdayQuota{5, 5, 5, 5, 5, 0, 0}, 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := InclusiveDays(start, end); got != 7 {
		t.Fatalf("duration = %d days, want 7", got)
	}
}

func TestQuotaFromSlice(t *testing.T) {
	q := QuotaFromSlice([]int{1, 2, 3})
	if q != (WeekdayQuota{1, 2, 3, 0, 0, 0, 0}) {
		t.Fatalf("short slice should pad with zeros, got %v", q)
	}

	q = QuotaFromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if q != (WeekdayQuota{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("long slice should truncate, got %v", q)
	}

	if q.WeeklyTotal() != 28 {
		t.Fatalf("WeeklyTotal = %d, want 28", q.WeeklyTotal())
	}
}
