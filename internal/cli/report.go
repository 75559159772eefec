package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/punchlit/internal/opday"
)

type ReportCmd struct {
	URL string `help:"App URL to report (defaults to the configured app URL)."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	// The confirmation gate comes before any network activity: the report
	// sends the app URL to the administrator.
	var confirmed bool
	if err := huh.NewConfirm().
		Title("Send the task completion report?").
		Description("Your app URL will be sent to the administrator.").
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

	bg := context.Background()
	drainBeforeAction(bg, a)

	completion, res, err := a.CompleteTask(bg, c.URL)
	if err != nil {
		return err
	}

	fmt.Printf("Task completion reported at %s.\n", opday.DateTime(completion.CompletedAt))
	reportDelivery(res)
	return nil
}
