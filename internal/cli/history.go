package cli

import (
	"fmt"

	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/opday"
)

type HistoryCmd struct{}

func (c *HistoryCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	entries, err := a.History()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	for _, entry := range entries {
		detail := ""
		switch entry.EventType {
		case models.EventClockIn:
			detail = "clock-in"
		case models.EventClockOut:
			detail = "clock-out"
			if entry.WorkDuration != nil {
				detail = fmt.Sprintf("clock-out, worked %s", opday.FormatDuration(*entry.WorkDuration))
			}
		case models.EventTaskCompleted:
			detail = "task completed"
		}

		fmt.Printf("%s  %5s  %-30s %s\n", entry.Date, opday.Clock(entry.Timestamp), detail, entry.UserName)
	}

	return nil
}
