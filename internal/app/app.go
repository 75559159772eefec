// Package app owns the application state: one controller instance holds
// the store, the dispatcher and the clock, and every user action flows
// through it. There are no package-level mutable globals.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/julianstephens/punchlit/internal/attendance"
	"github.com/julianstephens/punchlit/internal/constants"
	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/notify"
	"github.com/julianstephens/punchlit/internal/storage"
	"github.com/julianstephens/punchlit/internal/syncer"
)

var (
	ErrInvalidName    = errors.New("name must be 1 to 50 characters")
	ErrNotInitialized = errors.New("no profile yet, run 'punchlit init' first")
	ErrNoAppURL       = errors.New("no app URL configured, set one with 'punchlit config --app-url'")
)

// App is the single controller instance for a running punchlit process.
type App struct {
	store      storage.Provider
	dispatcher *notify.Dispatcher
	syncer     *syncer.Syncer

	// Now is the clock used for every timestamp; tests substitute a
	// fixed one.
	Now func() time.Time
}

func New(store storage.Provider, dispatcher *notify.Dispatcher) *App {
	return &App{
		store:      store,
		dispatcher: dispatcher,
		syncer:     syncer.New(store, dispatcher),
		Now:        time.Now,
	}
}

// ActionResult is what a punch or report leaves behind: the persisted
// state, the per-sink delivery outcomes, and whether the event had to be
// queued for retry.
type ActionResult struct {
	Record  models.AttendanceRecord
	Results []notify.Result
	Queued  bool
}

// Setup creates the device profile on first run.
func (a *App) Setup(name string) (models.UserProfile, error) {
	name, err := validName(name)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile := models.UserProfile{
		UserID:        constants.DefaultUserID,
		DeviceID:      uuid.NewString(),
		UserName:      name,
		IsInitialized: true,
		CreatedAt:     a.Now(),
		AppVersion:    constants.AppVersion,
	}
	if err := a.store.SaveProfile(profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// Rename changes the trainee name on the existing profile.
func (a *App) Rename(name string) (models.UserProfile, error) {
	name, err := validName(name)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile, err := a.Profile()
	if err != nil {
		return models.UserProfile{}, err
	}

	profile.UserName = name
	if err := a.store.SaveProfile(profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// Profile returns the device profile, or ErrNotInitialized.
func (a *App) Profile() (models.UserProfile, error) {
	profile, err := a.store.GetProfile()
	if err != nil {
		return models.UserProfile{}, err
	}
	if !profile.IsInitialized {
		return models.UserProfile{}, ErrNotInitialized
	}
	return profile, nil
}

// Today returns the live attendance record for the current operational
// day, rolling the stored record over if its date is stale. A rollover
// discards the old record from the live slot no matter what state it
// reached; the history log is the durable trail.
func (a *App) Today() (models.AttendanceRecord, error) {
	now := a.Now()

	rec, err := a.store.GetTodayRecord()
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	if rec.Date == "" {
		rec = attendance.NewRecord(now)
		if err := a.store.SaveTodayRecord(rec); err != nil {
			return models.AttendanceRecord{}, err
		}
		return rec, nil
	}

	if rolled, changed := attendance.Rollover(rec, now); changed {
		if err := a.store.SaveTodayRecord(rolled); err != nil {
			return models.AttendanceRecord{}, err
		}
		return rolled, nil
	}

	return rec, nil
}

// ClockIn records the start of the work day, logs it to history and
// dispatches the event to the sinks. Delivery failure queues the event;
// it never fails the punch itself.
func (a *App) ClockIn(ctx context.Context) (ActionResult, error) {
	profile, err := a.Profile()
	if err != nil {
		return ActionResult{}, err
	}

	rec, err := a.Today()
	if err != nil {
		return ActionResult{}, err
	}

	now := a.Now()
	rec, err = attendance.ClockIn(rec, now)
	if err != nil {
		return ActionResult{Record: rec}, err
	}
	if err := a.store.SaveTodayRecord(rec); err != nil {
		return ActionResult{}, err
	}

	if err := a.appendHistory(models.EventClockIn, profile.UserName, rec, now); err != nil {
		return ActionResult{}, err
	}

	results, queued, err := a.deliver(ctx, models.Event{
		Type:      models.EventClockIn,
		UserID:    profile.UserID,
		UserName:  profile.UserName,
		Timestamp: now,
	})
	if err != nil {
		return ActionResult{}, err
	}

	return ActionResult{Record: rec, Results: results, Queued: queued}, nil
}

// ClockOut records the end of the work day with the computed duration.
func (a *App) ClockOut(ctx context.Context) (ActionResult, error) {
	profile, err := a.Profile()
	if err != nil {
		return ActionResult{}, err
	}

	rec, err := a.Today()
	if err != nil {
		return ActionResult{}, err
	}

	now := a.Now()
	rec, err = attendance.ClockOut(rec, now)
	if err != nil {
		return ActionResult{Record: rec}, err
	}
	if err := a.store.SaveTodayRecord(rec); err != nil {
		return ActionResult{}, err
	}

	if err := a.appendHistory(models.EventClockOut, profile.UserName, rec, now); err != nil {
		return ActionResult{}, err
	}

	results, queued, err := a.deliver(ctx, models.Event{
		Type:         models.EventClockOut,
		UserID:       profile.UserID,
		UserName:     profile.UserName,
		Timestamp:    now,
		ClockInTime:  rec.ClockInTime,
		WorkDuration: rec.WorkDuration,
	})
	if err != nil {
		return ActionResult{}, err
	}

	return ActionResult{Record: rec, Results: results, Queued: queued}, nil
}

// CompleteTask reports the trainee's task as done, pointing the
// administrator at appURL. The caller is responsible for confirming the
// report with the user before invoking this; no network activity happens
// before that gate.
func (a *App) CompleteTask(ctx context.Context, appURL string) (models.TaskCompletion, ActionResult, error) {
	profile, err := a.Profile()
	if err != nil {
		return models.TaskCompletion{}, ActionResult{}, err
	}

	if appURL == "" {
		settings, err := a.store.GetSettings()
		if err != nil {
			return models.TaskCompletion{}, ActionResult{}, err
		}
		appURL = settings.AppURL
	}
	if appURL == "" {
		return models.TaskCompletion{}, ActionResult{}, ErrNoAppURL
	}

	now := a.Now()
	completion := models.TaskCompletion{
		IsCompleted: true,
		CompletedAt: now,
		ReportedURL: appURL,
	}
	if err := a.store.SaveTaskCompletion(completion); err != nil {
		return models.TaskCompletion{}, ActionResult{}, err
	}

	if err := a.appendHistory(models.EventTaskCompleted, profile.UserName, models.AttendanceRecord{}, now); err != nil {
		return models.TaskCompletion{}, ActionResult{}, err
	}

	results, queued, err := a.deliver(ctx, models.Event{
		Type:      models.EventTaskCompleted,
		UserID:    profile.UserID,
		UserName:  profile.UserName,
		Timestamp: now,
		AppURL:    appURL,
	})
	if err != nil {
		return models.TaskCompletion{}, ActionResult{}, err
	}

	return completion, ActionResult{Results: results, Queued: queued}, nil
}

// Sync drains the pending queue through the dispatcher. See
// syncer.Drain for the clear-after-one-pass policy.
func (a *App) Sync(ctx context.Context) (processed, failed int, err error) {
	return a.syncer.Drain(ctx)
}

// SyncIfOnline drains the queue when there is something to send and the
// record endpoint is reachable. Offline is not an error; the queue just
// keeps waiting.
func (a *App) SyncIfOnline(ctx context.Context) (processed, failed int, err error) {
	pending, err := a.syncer.Pending()
	if err != nil || pending == 0 {
		return 0, 0, err
	}

	settings, err := a.store.GetSettings()
	if err != nil {
		return 0, 0, err
	}
	if !syncer.Online(ctx, settings.SheetURL) {
		return 0, 0, nil
	}

	return a.syncer.Drain(ctx)
}

// Pending returns the pending-queue length.
func (a *App) Pending() (int, error) {
	return a.syncer.Pending()
}

// History returns the retained history entries, oldest first.
func (a *App) History() ([]models.HistoryEntry, error) {
	return a.store.GetHistory()
}

// TaskCompletion returns the stored completion flag.
func (a *App) TaskCompletion() (models.TaskCompletion, error) {
	return a.store.GetTaskCompletion()
}

// Settings returns the stored sink configuration.
func (a *App) Settings() (storage.Settings, error) {
	return a.store.GetSettings()
}

// SaveSettings replaces the stored sink configuration.
func (a *App) SaveSettings(settings storage.Settings) error {
	return a.store.SaveSettings(settings)
}

// Reset wipes every persisted key. The caller confirms first and takes a
// backup; this is not recoverable from inside the app.
func (a *App) Reset() error {
	return a.store.Reset()
}

// deliver dispatches the event to all sinks and queues the whole event
// when any sink attempt failed.
func (a *App) deliver(ctx context.Context, ev models.Event) ([]notify.Result, bool, error) {
	results := a.dispatcher.Dispatch(ctx, ev)
	if !notify.AnyFailed(results) {
		return results, false, nil
	}

	queue, err := a.store.GetPendingQueue()
	if err != nil {
		return results, false, err
	}
	queue = append(queue, models.PendingNotification{
		ID:        fmt.Sprintf("%d_pending", a.Now().UnixMilli()),
		Type:      models.PendingTypeNotification,
		Payload:   ev,
		CreatedAt: a.Now(),
	})
	if err := a.store.SavePendingQueue(queue); err != nil {
		return results, false, err
	}

	return results, true, nil
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > constants.MaxNameLen {
		return "", ErrInvalidName
	}
	return name, nil
}
