package engine

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-04-01", "2025-04-01", 1},
		{"2025-04-01", "2025-04-07", 7},
		{"2025-04-01", "2025-05-05", 35},
		{"2025-02-01", "2025-03-01", 29},
		{"2024-02-01", "2024-03-01", 30}, // 闰年
		{"2025-04-10", "2025-04-01", 0},  // 终点早于起点
	}
	for _, c := range cases {
		got := InclusiveDays(mustDate(t, c.start), mustDate(t, c.end))
		if got != c.want {
			t.Fatalf("InclusiveDays(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestDaysBetweenSigned(t *testing.T) {
	if got := DaysBetween(mustDate(t, "2025-04-05"), mustDate(t, "2025-04-01")); got != -4 {
		t.Fatalf("DaysBetween backwards = %d, want -4", got)
	}
	if got := DaysBetween(mustDate(t, "2025-04-01"), mustDate(t, "2025-04-05")); got != 4 {
		t.Fatalf("DaysBetween forwards = %d, want 4", got)
	}
}

func TestWithinRange(t *testing.T) {
	start := mustDate(t, "2025-04-01")
	end := mustDate(t, "2025-04-30")

	if !WithinRange(mustDate(t, "2025-04-01"), start, end) {
		t.Fatalf("start boundary should be within range")
	}
	if !WithinRange(mustDate(t, "2025-04-30"), start, end) {
		t.Fatalf("end boundary should be within range")
	}
	if WithinRange(mustDate(t, "2025-05-01"), start, end) {
		t.Fatalf("day after end should be outside range")
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2025-04-01") {
		t.Fatalf("2025-04-01 should be valid")
	}
	for _, s := range []string{"", "not-a-date", "2025-13-01", "2025/04/01"} {
		if IsValidDate(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
