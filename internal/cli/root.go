package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/punchlit/internal/app"
	"github.com/julianstephens/punchlit/internal/notify"
	"github.com/julianstephens/punchlit/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// App loads the store and wires an application controller with the sinks
// the settings configure. Sinks without an endpoint are skipped; a fully
// unconfigured install still punches locally.
func (c *Context) App() (*app.App, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}

	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return app.New(c.Store, notify.NewDispatcher(buildSinks(settings)...)), nil
}

func buildSinks(settings storage.Settings) []notify.Sink {
	var sinks []notify.Sink
	if settings.SheetURL != "" {
		sinks = append(sinks, notify.NewSheetSink(settings.SheetURL))
	}
	if settings.ChatURL != "" {
		sinks = append(sinks, notify.NewChatSink(settings.ChatURL, settings.ChatToken, settings.ChatRecipient))
	}
	return sinks
}

// reportDelivery prints the per-sink outcome of an action. Local state is
// already saved at this point; delivery problems are notes, not failures.
func reportDelivery(res app.ActionResult) {
	if !res.Queued {
		return
	}
	for _, r := range res.Results {
		if r.Err != nil {
			fmt.Printf("Note: %s delivery failed: %v\n", r.Sink, r.Err)
		}
	}
	fmt.Println("The event was queued and will be retried on the next sync.")
}

// drainBeforeAction flushes the pending queue when the device looks
// online, so queued punches arrive before the new one.
func drainBeforeAction(ctx context.Context, a *app.App) {
	processed, failed, err := a.SyncIfOnline(ctx)
	if err != nil || processed == 0 {
		return
	}
	if failed > 0 {
		fmt.Printf("Retried %d queued notification(s), %d failed and were dropped.\n", processed, failed)
		return
	}
	fmt.Printf("Sent %d queued notification(s).\n", processed)
}
