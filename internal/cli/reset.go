package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/punchlit/internal/backup"
)

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *Context) error {
	var confirmed bool
	if err := huh.NewConfirm().
		Title("Really reset all data?").
		Description("Profile, today's record, history and the pending queue will be wiped.").
		Value(&confirmed).
		Run(); err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Canceled.")
		return nil
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	// Snapshot the store first; the reset itself is not recoverable.
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("refusing to reset without a backup: %w", err)
	}
	fmt.Printf("Backup written to %s\n", backupPath)

	if err := a.Reset(); err != nil {
		return err
	}

	fmt.Println("All data reset. Run 'punchlit init' to start over.")
	return nil
}
