package app

import (
	"fmt"
	"time"

	"github.com/julianstephens/punchlit/internal/constants"
	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/opday"
)

// appendHistory writes one log entry and prunes anything older than the
// retention window in the same save.
func (a *App) appendHistory(eventType models.EventType, userName string, rec models.AttendanceRecord, now time.Time) error {
	entries, err := a.store.GetHistory()
	if err != nil {
		return err
	}

	entries = append(entries, models.HistoryEntry{
		ID:           fmt.Sprintf("%d_%s", now.UnixMilli(), eventType),
		Date:         opday.Date(now),
		UserName:     userName,
		EventType:    eventType,
		Timestamp:    now,
		ClockInTime:  rec.ClockInTime,
		ClockOutTime: rec.ClockOutTime,
		WorkDuration: rec.WorkDuration,
	})

	return a.store.SaveHistory(pruneHistory(entries, now))
}

// pruneHistory keeps entries whose operational date falls within the
// retention window. The comparison is on the YYYY-MM-DD strings, so an
// entry exactly HistoryRetentionDays old is retained and one a day older
// is dropped, regardless of time of day.
func pruneHistory(entries []models.HistoryEntry, now time.Time) []models.HistoryEntry {
	cutoff := opday.Date(now.AddDate(0, 0, -constants.HistoryRetentionDays))

	kept := make([]models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date >= cutoff {
			kept = append(kept, entry)
		}
	}
	return kept
}
