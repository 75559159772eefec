// Package attendance holds the clock-in/clock-out state machine for a
// single operational day: not_clocked_in → clocked_in → clocked_out,
// with clocked_out terminal until the day rolls over.
package attendance

import (
	"errors"
	"time"

	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/opday"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
	ErrNotClockedIn      = errors.New("not clocked in yet")
)

// NewRecord returns a fresh record for the operational day containing now.
func NewRecord(now time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		Date:   opday.Date(now),
		Status: models.StatusNotClockedIn,
	}
}

// Rollover replaces rec with a fresh record when its date no longer
// matches the operational day of now. The previous record is discarded
// from the live slot regardless of its status; history keeps the log.
func Rollover(rec models.AttendanceRecord, now time.Time) (models.AttendanceRecord, bool) {
	if rec.Date == opday.Date(now) {
		return rec, false
	}
	return NewRecord(now), true
}

// ClockIn records the start of the work day. Valid only from
// not_clocked_in; any other state returns the record unchanged.
func ClockIn(rec models.AttendanceRecord, now time.Time) (models.AttendanceRecord, error) {
	switch rec.Status {
	case models.StatusClockedIn:
		return rec, ErrAlreadyClockedIn
	case models.StatusClockedOut:
		return rec, ErrAlreadyClockedOut
	}

	t := now
	rec.ClockInTime = &t
	rec.Status = models.StatusClockedIn
	return rec, nil
}

// ClockOut records the end of the work day and computes the worked
// duration in whole minutes. Valid only from clocked_in.
func ClockOut(rec models.AttendanceRecord, now time.Time) (models.AttendanceRecord, error) {
	if rec.Status != models.StatusClockedIn || rec.ClockInTime == nil {
		return rec, ErrNotClockedIn
	}

	t := now
	duration := opday.Minutes(*rec.ClockInTime, now)
	rec.ClockOutTime = &t
	rec.WorkDuration = &duration
	rec.Status = models.StatusClockedOut
	return rec, nil
}

// WorkedMinutes returns the minutes worked so far: the final duration
// once clocked out, the running total while clocked in, zero otherwise.
func WorkedMinutes(rec models.AttendanceRecord, now time.Time) int {
	switch rec.Status {
	case models.StatusClockedOut:
		if rec.WorkDuration != nil {
			return *rec.WorkDuration
		}
	case models.StatusClockedIn:
		if rec.ClockInTime != nil {
			return opday.Minutes(*rec.ClockInTime, now)
		}
	}
	return 0
}
