// Package notify delivers domain events to the configured external sinks:
// the spreadsheet-backed record endpoint and the chat push channel.
package notify

import (
	"context"
	"sync"

	"github.com/julianstephens/punchlit/internal/models"
)

// Sink is one external delivery target for a domain event.
type Sink interface {
	Name() string
	Send(ctx context.Context, ev models.Event) error
}

// Result is the outcome of one sink attempt within a dispatch.
type Result struct {
	Sink string
	Err  error
}

// Dispatcher fans one event out to every configured sink in parallel and
// joins the attempts. Delivery is best-effort: the caller queues the whole
// event for retry when any sink fails. Sinks that did succeed are not
// tracked, so a retried event can reach a sink twice; that duplication is
// the documented delivery policy, not an accident of control flow.
type Dispatcher struct {
	sinks []Sink
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks}
}

// Sinks returns the number of configured sinks.
func (d *Dispatcher) Sinks() int {
	return len(d.sinks)
}

// Dispatch attempts delivery to all sinks concurrently and returns one
// result per sink, in sink order.
func (d *Dispatcher) Dispatch(ctx context.Context, ev models.Event) []Result {
	results := make([]Result, len(d.sinks))

	var wg sync.WaitGroup
	for i, sink := range d.sinks {
		wg.Add(1)
		go func(i int, sink Sink) {
			defer wg.Done()
			results[i] = Result{
				Sink: sink.Name(),
				Err:  sink.Send(ctx, ev),
			}
		}(i, sink)
	}
	wg.Wait()

	return results
}

// AnyFailed reports whether at least one sink attempt failed.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
