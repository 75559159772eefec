package storage

import "github.com/julianstephens/punchlit/internal/models"

// Provider persists the device-local state. Each value is read and
// written whole under its own key; there are no partial-field updates.
// Getters return the zero value (not an error) when a key has never been
// written, so callers can treat "absent" and "fresh" uniformly.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Profile
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Today's attendance record
	GetTodayRecord() (models.AttendanceRecord, error)
	SaveTodayRecord(models.AttendanceRecord) error

	// History log (bounded retention enforced by the caller on append)
	GetHistory() ([]models.HistoryEntry, error)
	SaveHistory([]models.HistoryEntry) error

	// Pending notification queue
	GetPendingQueue() ([]models.PendingNotification, error)
	SavePendingQueue([]models.PendingNotification) error

	// Task completion flag
	GetTaskCompletion() (models.TaskCompletion, error)
	SaveTaskCompletion(models.TaskCompletion) error

	// Reset removes every persisted key, including the profile.
	Reset() error

	// Utils
	GetConfigPath() string
}

// Settings holds the delivery endpoints and identity defaults. The zero
// value means the matching sink is not configured and is skipped.
type Settings struct {
	SheetURL      string `json:"sheet_url"`
	ChatURL       string `json:"chat_url"`
	ChatToken     string `json:"chat_token"`
	ChatRecipient string `json:"chat_recipient"`
	AppURL        string `json:"app_url"`
}
