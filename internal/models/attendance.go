package models

import "time"

type AttendanceStatus string

const (
	StatusNotClockedIn AttendanceStatus = "not_clocked_in"
	StatusClockedIn    AttendanceStatus = "clocked_in"
	StatusClockedOut   AttendanceStatus = "clocked_out"
)

// AttendanceRecord is the live record for a single operational day.
// Rolling into a new operational day replaces it with a fresh record;
// the old one survives only in the history log.
type AttendanceRecord struct {
	Date         string           `json:"date"` // YYYY-MM-DD, operational date
	ClockInTime  *time.Time       `json:"clock_in_time,omitempty"`
	ClockOutTime *time.Time       `json:"clock_out_time,omitempty"`
	WorkDuration *int             `json:"work_duration,omitempty"` // minutes
	Status       AttendanceStatus `json:"status"`
}

// HistoryEntry is one append-only log entry, created on every punch or
// task-completion report.
type HistoryEntry struct {
	ID           string     `json:"id"`   // "<unix ms>_<event type>"
	Date         string     `json:"date"` // YYYY-MM-DD, operational date
	UserName     string     `json:"user_name"`
	EventType    EventType  `json:"event_type"`
	Timestamp    time.Time  `json:"timestamp"`
	ClockInTime  *time.Time `json:"clock_in_time,omitempty"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	WorkDuration *int       `json:"work_duration,omitempty"`
	Synced       bool       `json:"synced"`
}
