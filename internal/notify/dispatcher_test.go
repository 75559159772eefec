package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/julianstephens/punchlit/internal/models"
)

type stubSink struct {
	name  string
	err   error
	calls atomic.Int32
}

func (s *stubSink) Name() string { return s.name }

func (s *stubSink) Send(ctx context.Context, ev models.Event) error {
	s.calls.Add(1)
	return s.err
}

func clockInEvent() models.Event {
	return models.Event{
		Type:      models.EventClockIn,
		UserID:    "user01",
		UserName:  "Alice",
		Timestamp: time.Date(2025, 11, 29, 9, 0, 0, 0, time.Local),
	}
}

func TestDispatch_AllSinksAttempted(t *testing.T) {
	sheet := &stubSink{name: "sheet"}
	chat := &stubSink{name: "chat"}
	d := NewDispatcher(sheet, chat)

	results := d.Dispatch(context.Background(), clockInEvent())

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if sheet.calls.Load() != 1 || chat.calls.Load() != 1 {
		t.Errorf("calls = %d/%d, want 1/1", sheet.calls.Load(), chat.calls.Load())
	}
	if AnyFailed(results) {
		t.Error("unexpected failure")
	}
}

func TestDispatch_ReportsPerSinkResults(t *testing.T) {
	boom := errors.New("boom")
	sheet := &stubSink{name: "sheet", err: boom}
	chat := &stubSink{name: "chat"}
	d := NewDispatcher(sheet, chat)

	results := d.Dispatch(context.Background(), clockInEvent())

	if !AnyFailed(results) {
		t.Fatal("expected a failed result")
	}
	if results[0].Sink != "sheet" || !errors.Is(results[0].Err, boom) {
		t.Errorf("sheet result = %+v", results[0])
	}
	if results[1].Sink != "chat" || results[1].Err != nil {
		t.Errorf("chat result = %+v", results[1])
	}
}

func TestDispatch_FailureDoesNotSkipOtherSinks(t *testing.T) {
	// Attempts are independent: the chat sink is still hit when the sheet
	// sink fails.
	sheet := &stubSink{name: "sheet", err: errors.New("offline")}
	chat := &stubSink{name: "chat"}
	d := NewDispatcher(sheet, chat)

	d.Dispatch(context.Background(), clockInEvent())

	if chat.calls.Load() != 1 {
		t.Errorf("chat calls = %d, want 1", chat.calls.Load())
	}
}

func TestDispatch_NoSinks(t *testing.T) {
	d := NewDispatcher()
	results := d.Dispatch(context.Background(), clockInEvent())
	if len(results) != 0 || AnyFailed(results) {
		t.Errorf("results = %+v, want none", results)
	}
}
