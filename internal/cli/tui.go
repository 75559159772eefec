package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/punchlit/internal/backup"
	"github.com/julianstephens/punchlit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	// Snapshot the store on startup; a long-lived session is the most
	// likely place to lose a day of punches to a crash.
	if _, err := backup.NewManager(ctx.Store.GetConfigPath()).CreateBackup(); err != nil {
		fmt.Printf("Warning: automatic backup failed: %v\n", err)
	}

	p := tea.NewProgram(tui.NewModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
