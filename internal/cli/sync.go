package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/punchlit/internal/syncer"
)

type SyncCmd struct {
	Force bool `help:"Drain the queue without probing connectivity first."`
}

func (c *SyncCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	pending, err := a.Pending()
	if err != nil {
		return err
	}
	if pending == 0 {
		fmt.Println("Nothing queued.")
		return nil
	}

	bg := context.Background()

	if !c.Force {
		settings, err := a.Settings()
		if err != nil {
			return err
		}
		if settings.SheetURL != "" && !syncer.Online(bg, settings.SheetURL) {
			fmt.Printf("Offline; %d notification(s) still queued.\n", pending)
			return nil
		}
	}

	processed, failed, err := a.Sync(bg)
	if err != nil {
		return err
	}

	if failed > 0 {
		fmt.Printf("Retried %d notification(s), %d failed and were dropped.\n", processed, failed)
	} else {
		fmt.Printf("Sent %d queued notification(s).\n", processed)
	}
	return nil
}
