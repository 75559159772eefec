package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/punchlit/internal/backup"
	"github.com/julianstephens/punchlit/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: profile initialized
	if err := checkProfile(ctx); err != nil {
		fmt.Printf("⚠ Profile: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Profile: OK\n")
	}

	// Check 3: sinks configured (warning only)
	if err := checkSinks(ctx); err != nil {
		fmt.Printf("⚠ Sinks configured: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Sinks configured: OK\n")
	}

	// Check 4: pending queue (warning only)
	if err := checkPendingQueue(ctx); err != nil {
		fmt.Printf("⚠ Pending queue: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Pending queue: OK\n")
	}

	// Check 5: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 6: no competing punchlit process (warning only; the store is
	// last-write-wins under concurrent instances)
	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 7: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkProfile(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if !profile.IsInitialized {
		return fmt.Errorf("no profile yet, run 'punchlit init'")
	}
	return nil
}

func checkSinks(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	var missing []string
	if settings.SheetURL == "" {
		missing = append(missing, "sheet URL")
	}
	if settings.ChatURL == "" {
		missing = append(missing, "chat URL")
	}
	if len(missing) == 2 {
		return fmt.Errorf("no sinks configured; punches stay local (set with 'punchlit config')")
	}
	if len(missing) > 0 {
		return fmt.Errorf("not configured: %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkPendingQueue(ctx *Context) error {
	queue, err := ctx.Store.GetPendingQueue()
	if err != nil {
		return fmt.Errorf("failed to get pending queue: %w", err)
	}
	if len(queue) > 0 {
		return fmt.Errorf("%d notification(s) queued, run 'punchlit sync' when back online", len(queue))
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found")
	}

	return nil
}

func checkSingleInstance() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	for _, p := range processes {
		if p.Pid() != self && p.Executable() == name {
			return fmt.Errorf("another %s process is running (pid %d); the store is last-write-wins", name, p.Pid())
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Check if timezone is set
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
