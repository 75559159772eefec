package opday

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 11, 29, hour, min, 0, 0, time.Local)
}

func TestDate_EarlyMorningBelongsToPreviousDay(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{"midnight", at(0, 0), "2025-11-28"},
		{"before boundary", at(5, 59), "2025-11-28"},
		{"exactly boundary", at(6, 0), "2025-11-29"},
		{"morning", at(9, 0), "2025-11-29"},
		{"just before midnight", at(23, 59), "2025-11-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.time); got != tt.want {
				t.Errorf("Date(%v) = %q, want %q", tt.time, got, tt.want)
			}
		})
	}
}

func TestDate_MonthBoundary(t *testing.T) {
	// 01:00 on the 1st is still the last day of the previous month.
	firstOfMonth := time.Date(2025, 12, 1, 1, 0, 0, 0, time.Local)
	if got := Date(firstOfMonth); got != "2025-11-30" {
		t.Errorf("Date = %q, want 2025-11-30", got)
	}
}

func TestHour_ThirtyHourClock(t *testing.T) {
	tests := []struct {
		hour int
		want int
	}{
		{0, 24},
		{2, 26},
		{5, 29},
		{6, 6},
		{23, 23},
	}

	for _, tt := range tests {
		if got := Hour(at(tt.hour, 0)); got != tt.want {
			t.Errorf("Hour(%02d:00) = %d, want %d", tt.hour, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		time time.Time
		want string
	}{
		{at(9, 0), "9:00"},
		{at(18, 5), "18:05"},
		{at(2, 0), "26:00"},
		{at(0, 7), "24:07"},
	}

	for _, tt := range tests {
		if got := Clock(tt.time); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.time, got, tt.want)
		}
	}
}

func TestDateTime_RollsDateLabelWithHour(t *testing.T) {
	// 02:30 on Nov 29 renders as 26:30 on Nov 28.
	got := DateTime(at(2, 30))
	want := "2025/11/28 26:30"
	if got != want {
		t.Errorf("DateTime = %q, want %q", got, want)
	}

	got = DateTime(at(9, 5))
	want = "2025/11/29 9:05"
	if got != want {
		t.Errorf("DateTime = %q, want %q", got, want)
	}
}

func TestMinutes_TruncatesSeconds(t *testing.T) {
	start := time.Date(2025, 11, 29, 9, 0, 0, 0, time.Local)
	end := time.Date(2025, 11, 29, 18, 0, 29, 0, time.Local)

	if got := Minutes(start, end); got != 540 {
		t.Errorf("Minutes = %d, want 540", got)
	}

	end = time.Date(2025, 11, 29, 18, 29, 59, 0, time.Local)
	if got := Minutes(start, end); got != 569 {
		t.Errorf("Minutes = %d, want 569", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{540, "9h0m"},
		{569, "9h29m"},
		{0, "0h0m"},
		{59, "0h59m"},
		{61, "1h1m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
