// Package syncer drains the pending-notification queue through the
// dispatcher once connectivity is back.
package syncer

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/julianstephens/punchlit/internal/notify"
	"github.com/julianstephens/punchlit/internal/storage"
)

// probeTimeout bounds the connectivity check.
const probeTimeout = 3 * time.Second

type Syncer struct {
	store      storage.Provider
	dispatcher *notify.Dispatcher
}

func New(store storage.Provider, dispatcher *notify.Dispatcher) *Syncer {
	return &Syncer{
		store:      store,
		dispatcher: dispatcher,
	}
}

// Drain re-dispatches every queued item in insertion order, one at a
// time, then clears the whole queue — including items whose re-dispatch
// failed. Delivery is best-effort with a single retry pass; an item that
// fails again is dropped for good rather than re-queued.
func (s *Syncer) Drain(ctx context.Context) (processed, failed int, err error) {
	queue, err := s.store.GetPendingQueue()
	if err != nil {
		return 0, 0, err
	}
	if len(queue) == 0 {
		return 0, 0, nil
	}

	for _, item := range queue {
		results := s.dispatcher.Dispatch(ctx, item.Payload)
		processed++
		if notify.AnyFailed(results) {
			failed++
		}
	}

	if err := s.store.SavePendingQueue(nil); err != nil {
		return processed, failed, err
	}

	return processed, failed, nil
}

// Pending returns the number of queued items.
func (s *Syncer) Pending() (int, error) {
	queue, err := s.store.GetPendingQueue()
	if err != nil {
		return 0, err
	}
	return len(queue), nil
}

// Online reports whether the host of endpoint accepts a TCP connection.
// An empty or unparsable endpoint counts as offline.
func Online(ctx context.Context, endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return false
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "http":
			host = net.JoinHostPort(u.Hostname(), "80")
		default:
			host = net.JoinHostPort(u.Hostname(), "443")
		}
	}

	dialCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", host)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
