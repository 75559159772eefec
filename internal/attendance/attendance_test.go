package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/punchlit/internal/models"
)

var (
	nineAM = time.Date(2025, 11, 29, 9, 0, 0, 0, time.Local)
	sixPM  = time.Date(2025, 11, 29, 18, 0, 0, 0, time.Local)
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord(nineAM)

	if rec.Date != "2025-11-29" {
		t.Errorf("Date = %q, want 2025-11-29", rec.Date)
	}
	if rec.Status != models.StatusNotClockedIn {
		t.Errorf("Status = %q, want %q", rec.Status, models.StatusNotClockedIn)
	}
	if rec.ClockInTime != nil || rec.ClockOutTime != nil || rec.WorkDuration != nil {
		t.Error("expected all timestamps and duration to be nil")
	}
}

func TestNewRecord_EarlyMorningUsesPreviousOperationalDay(t *testing.T) {
	twoAM := time.Date(2025, 11, 29, 2, 0, 0, 0, time.Local)
	rec := NewRecord(twoAM)
	if rec.Date != "2025-11-28" {
		t.Errorf("Date = %q, want 2025-11-28", rec.Date)
	}
}

func TestClockIn(t *testing.T) {
	rec := NewRecord(nineAM)

	rec, err := ClockIn(rec, nineAM)
	if err != nil {
		t.Fatalf("ClockIn failed: %v", err)
	}

	if rec.Status != models.StatusClockedIn {
		t.Errorf("Status = %q, want %q", rec.Status, models.StatusClockedIn)
	}
	if rec.ClockInTime == nil || !rec.ClockInTime.Equal(nineAM) {
		t.Errorf("ClockInTime = %v, want %v", rec.ClockInTime, nineAM)
	}
}

func TestClockIn_RejectedWhenAlreadyClockedIn(t *testing.T) {
	rec := NewRecord(nineAM)
	rec, _ = ClockIn(rec, nineAM)

	later := nineAM.Add(time.Hour)
	got, err := ClockIn(rec, later)
	if !errors.Is(err, ErrAlreadyClockedIn) {
		t.Fatalf("err = %v, want ErrAlreadyClockedIn", err)
	}
	// State and timestamp must be untouched.
	if !got.ClockInTime.Equal(nineAM) {
		t.Errorf("ClockInTime changed to %v", got.ClockInTime)
	}
	if got.Status != models.StatusClockedIn {
		t.Errorf("Status changed to %q", got.Status)
	}
}

func TestClockIn_RejectedAfterClockOut(t *testing.T) {
	rec := NewRecord(nineAM)
	rec, _ = ClockIn(rec, nineAM)
	rec, _ = ClockOut(rec, sixPM)

	_, err := ClockIn(rec, sixPM.Add(time.Hour))
	if !errors.Is(err, ErrAlreadyClockedOut) {
		t.Fatalf("err = %v, want ErrAlreadyClockedOut", err)
	}
}

func TestClockOut(t *testing.T) {
	rec := NewRecord(nineAM)
	rec, _ = ClockIn(rec, nineAM)

	rec, err := ClockOut(rec, sixPM)
	if err != nil {
		t.Fatalf("ClockOut failed: %v", err)
	}

	if rec.Status != models.StatusClockedOut {
		t.Errorf("Status = %q, want %q", rec.Status, models.StatusClockedOut)
	}
	if rec.ClockOutTime == nil || !rec.ClockOutTime.Equal(sixPM) {
		t.Errorf("ClockOutTime = %v, want %v", rec.ClockOutTime, sixPM)
	}
	if rec.WorkDuration == nil || *rec.WorkDuration != 540 {
		t.Errorf("WorkDuration = %v, want 540", rec.WorkDuration)
	}
}

func TestClockOut_TruncatesPartialMinutes(t *testing.T) {
	rec := NewRecord(nineAM)
	rec, _ = ClockIn(rec, nineAM)

	// 9h0m29s rounds down to 540 whole minutes.
	rec, err := ClockOut(rec, sixPM.Add(29*time.Second))
	if err != nil {
		t.Fatalf("ClockOut failed: %v", err)
	}
	if *rec.WorkDuration != 540 {
		t.Errorf("WorkDuration = %d, want 540", *rec.WorkDuration)
	}
}

func TestClockOut_RejectedWhenNotClockedIn(t *testing.T) {
	rec := NewRecord(nineAM)

	got, err := ClockOut(rec, sixPM)
	if !errors.Is(err, ErrNotClockedIn) {
		t.Fatalf("err = %v, want ErrNotClockedIn", err)
	}
	if got.Status != models.StatusNotClockedIn || got.ClockOutTime != nil {
		t.Error("record mutated by rejected clock-out")
	}
}

func TestRollover(t *testing.T) {
	rec := NewRecord(nineAM)
	rec, _ = ClockIn(rec, nineAM)
	rec, _ = ClockOut(rec, sixPM)

	// Same operational day: no rollover, even at 02:00 the next calendar day.
	twoAM := time.Date(2025, 11, 30, 2, 0, 0, 0, time.Local)
	got, rolled := Rollover(rec, twoAM)
	if rolled {
		t.Error("unexpected rollover within the same operational day")
	}
	if got.Status != models.StatusClockedOut {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusClockedOut)
	}

	// Next operational day: fresh record, clocked-out data discarded.
	nextMorning := time.Date(2025, 11, 30, 8, 0, 0, 0, time.Local)
	got, rolled = Rollover(rec, nextMorning)
	if !rolled {
		t.Fatal("expected rollover into the next operational day")
	}
	if got.Date != "2025-11-30" {
		t.Errorf("Date = %q, want 2025-11-30", got.Date)
	}
	if got.Status != models.StatusNotClockedIn {
		t.Errorf("Status = %q, want %q", got.Status, models.StatusNotClockedIn)
	}
	if got.ClockInTime != nil || got.ClockOutTime != nil || got.WorkDuration != nil {
		t.Error("rolled-over record should have no timestamps")
	}
}

func TestWorkedMinutes(t *testing.T) {
	rec := NewRecord(nineAM)
	if got := WorkedMinutes(rec, sixPM); got != 0 {
		t.Errorf("WorkedMinutes before clock-in = %d, want 0", got)
	}

	rec, _ = ClockIn(rec, nineAM)
	if got := WorkedMinutes(rec, nineAM.Add(90*time.Minute)); got != 90 {
		t.Errorf("running WorkedMinutes = %d, want 90", got)
	}

	rec, _ = ClockOut(rec, sixPM)
	// After clock-out the stored duration wins over the wall clock.
	if got := WorkedMinutes(rec, sixPM.Add(3*time.Hour)); got != 540 {
		t.Errorf("final WorkedMinutes = %d, want 540", got)
	}
}
