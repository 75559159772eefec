package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/punchlit/internal/cli"
	"github.com/julianstephens/punchlit/internal/constants"
	"github.com/julianstephens/punchlit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/punchlit/punchlit.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize punchlit storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive punch clock." default:"1"`
	In      cli.InCmd      `cmd:"" help:"Clock in."`
	Out     cli.OutCmd     `cmd:"" help:"Clock out."`
	Report  cli.ReportCmd  `cmd:"" help:"Report the task as complete."`
	Status  cli.StatusCmd  `cmd:"" help:"Show today's attendance."`
	History cli.HistoryCmd `cmd:"" help:"Show the punch history."`
	Sync    cli.SyncCmd    `cmd:"" help:"Retry queued notifications."`
	Name    cli.NameCmd    `cmd:"" help:"Change the trainee name."`
	Setup   cli.ConfigCmd  `cmd:"" name:"config" help:"Show or update sink settings."`
	Reset   cli.ResetCmd   `cmd:"" help:"Wipe all data."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("punchlit"),
		kong.Description("Attendance punch clock for trainees / offline-first notifier"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.AppVersion},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if len(CLI.Config) > 5 && CLI.Config[len(CLI.Config)-5:] == ".json" {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
