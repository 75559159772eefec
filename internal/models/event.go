package models

import "time"

// EventType is the closed set of domain events. Sinks switch over it
// exhaustively; an unknown value is a delivery error, not a silent skip.
type EventType string

const (
	EventClockIn       EventType = "clock_in"
	EventClockOut      EventType = "clock_out"
	EventTaskCompleted EventType = "task_completed"
)

// Event is one domain event plus everything a sink needs to render it.
// ClockInTime and WorkDuration are only set for clock-out events; AppURL
// only for task-completion events.
type Event struct {
	Type         EventType  `json:"event_type"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	Timestamp    time.Time  `json:"timestamp"`
	ClockInTime  *time.Time `json:"clock_in_time,omitempty"`
	WorkDuration *int       `json:"work_duration,omitempty"`
	AppURL       string     `json:"app_url,omitempty"`
}

// PendingNotification is one queued unit of retry work: the whole event,
// not per-sink granularity. A retried event may therefore reach a sink
// that already accepted it once.
type PendingNotification struct {
	ID        string    `json:"id"` // "<unix ms>_pending"
	Type      string    `json:"type"`
	Payload   Event     `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingTypeNotification is the only queue item type currently produced.
const PendingTypeNotification = "notification"
