package constants

const (
	// AppVersion is stamped into new user profiles.
	AppVersion = "v0.1.0"

	// DefaultUserID is used until an administrator assigns a trainee id.
	DefaultUserID = "user01"

	// MaxNameLen bounds the trainee name (runes, after trimming).
	MaxNameLen = 50

	// HistoryRetentionDays is the rolling window kept in the history log.
	// An entry exactly this old is still retained.
	HistoryRetentionDays = 30
)
