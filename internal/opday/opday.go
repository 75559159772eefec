// Package opday implements the operational-day time policy: the business
// day runs on a 30-hour clock that rolls over at 06:00, so 00:00–05:59
// belong to the previous calendar date and display as hours 24–29.
package opday

import (
	"fmt"
	"time"
)

// BoundaryHour is the wall-clock hour at which a new operational day
// starts. Exactly this hour belongs to the new day.
const BoundaryHour = 6

// Date returns the operational date of t as YYYY-MM-DD.
func Date(t time.Time) string {
	return DisplayDate(t).Format("2006-01-02")
}

// DisplayDate returns t shifted to the calendar date its operational day
// is labeled with. The time-of-day fields of the result are not meaningful.
func DisplayDate(t time.Time) time.Time {
	if t.Hour() < BoundaryHour {
		return t.AddDate(0, 0, -1)
	}
	return t
}

// Hour returns the display hour of t: 24–29 for the early morning, the
// wall-clock hour otherwise.
func Hour(t time.Time) int {
	h := t.Hour()
	if h < BoundaryHour {
		h += 24
	}
	return h
}

// Clock formats the time of day of t as H:MM on the 30-hour clock,
// e.g. "9:00" or "26:05". The hour is not zero-padded; this is the wire
// format the record sink stores.
func Clock(t time.Time) string {
	return fmt.Sprintf("%d:%02d", Hour(t), t.Minute())
}

// DateTime formats t as "YYYY/MM/DD H:MM" using the operational date
// label and the 30-hour display hour.
func DateTime(t time.Time) string {
	d := DisplayDate(t)
	return fmt.Sprintf("%04d/%02d/%02d %d:%02d", d.Year(), int(d.Month()), d.Day(), Hour(t), t.Minute())
}

// Minutes returns the whole minutes elapsed from start to end, truncated,
// never rounded: 9h00m29s of work is 540 minutes, not 541.
func Minutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

// FormatDuration renders a minute count as "9h0m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
