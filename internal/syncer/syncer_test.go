package syncer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/notify"
	"github.com/julianstephens/punchlit/internal/storage"
)

type recordingSink struct {
	mu   sync.Mutex
	err  error
	sent []models.Event
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Send(ctx context.Context, ev models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, ev)
	return s.err
}

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "punchlit.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func queueItems(names ...string) []models.PendingNotification {
	items := make([]models.PendingNotification, 0, len(names))
	for i, name := range names {
		items = append(items, models.PendingNotification{
			ID:   name,
			Type: models.PendingTypeNotification,
			Payload: models.Event{
				Type:      models.EventClockIn,
				UserName:  name,
				Timestamp: time.Date(2025, 11, 29, 9+i, 0, 0, 0, time.Local),
			},
			CreatedAt: time.Now(),
		})
	}
	return items
}

func TestDrain_SendsInInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	if err := store.SavePendingQueue(queueItems("first", "second", "third")); err != nil {
		t.Fatalf("SavePendingQueue failed: %v", err)
	}

	sink := &recordingSink{}
	s := New(store, notify.NewDispatcher(sink))

	processed, failed, err := s.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if processed != 3 || failed != 0 {
		t.Errorf("processed/failed = %d/%d, want 3/0", processed, failed)
	}

	if len(sink.sent) != 3 {
		t.Fatalf("sent %d events, want 3", len(sink.sent))
	}
	for i, want := range []string{"first", "second", "third"} {
		if sink.sent[i].UserName != want {
			t.Errorf("sent[%d] = %q, want %q", i, sink.sent[i].UserName, want)
		}
	}

	queue, _ := store.GetPendingQueue()
	if len(queue) != 0 {
		t.Errorf("queue has %d items after drain, want 0", len(queue))
	}
}

func TestDrain_ClearsQueueEvenWhenRedispatchFails(t *testing.T) {
	store := newTestStore(t)
	if err := store.SavePendingQueue(queueItems("first", "second")); err != nil {
		t.Fatalf("SavePendingQueue failed: %v", err)
	}

	sink := &recordingSink{err: errors.New("still offline")}
	s := New(store, notify.NewDispatcher(sink))

	processed, failed, err := s.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if processed != 2 || failed != 2 {
		t.Errorf("processed/failed = %d/%d, want 2/2", processed, failed)
	}

	// One pass, then the queue is gone: failed items are dropped, not
	// re-queued.
	queue, _ := store.GetPendingQueue()
	if len(queue) != 0 {
		t.Errorf("queue has %d items after failed drain, want 0", len(queue))
	}
}

func TestDrain_EmptyQueueIsANoOp(t *testing.T) {
	store := newTestStore(t)
	sink := &recordingSink{}
	s := New(store, notify.NewDispatcher(sink))

	processed, failed, err := s.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if processed != 0 || failed != 0 || len(sink.sent) != 0 {
		t.Errorf("expected no-op, got processed=%d failed=%d sent=%d", processed, failed, len(sink.sent))
	}
}

func TestPending(t *testing.T) {
	store := newTestStore(t)
	if err := store.SavePendingQueue(queueItems("one")); err != nil {
		t.Fatalf("SavePendingQueue failed: %v", err)
	}

	s := New(store, notify.NewDispatcher())
	n, err := s.Pending()
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Pending = %d, want 1", n)
	}
}

func TestOnline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	if !Online(context.Background(), server.URL) {
		t.Error("expected running server to be online")
	}

	if Online(context.Background(), "") {
		t.Error("empty endpoint should count as offline")
	}
	if Online(context.Background(), "not a url") {
		t.Error("unparsable endpoint should count as offline")
	}
}
