package models

import "time"

// UserProfile is the singleton identity for this device. It is created on
// first setup and removed only by a full reset.
type UserProfile struct {
	UserID        string    `json:"user_id"`
	DeviceID      string    `json:"device_id"`
	UserName      string    `json:"user_name"`
	IsInitialized bool      `json:"is_initialized"`
	CreatedAt     time.Time `json:"created_at"`
	AppVersion    string    `json:"app_version"`
}

// TaskCompletion records that the trainee reported their task as done.
type TaskCompletion struct {
	IsCompleted bool      `json:"is_completed"`
	CompletedAt time.Time `json:"completed_at"`
	ReportedURL string    `json:"reported_url"`
}
