package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/punchlit/internal/opday"
)

type InCmd struct{}

func (c *InCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	bg := context.Background()
	drainBeforeAction(bg, a)

	res, err := a.ClockIn(bg)
	if err != nil {
		return err
	}

	fmt.Printf("Clocked in at %s.\n", opday.Clock(*res.Record.ClockInTime))
	reportDelivery(res)
	return nil
}

type OutCmd struct{}

func (c *OutCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	bg := context.Background()
	drainBeforeAction(bg, a)

	res, err := a.ClockOut(bg)
	if err != nil {
		return err
	}

	fmt.Printf("Clocked out at %s. Worked %s, good job!\n",
		opday.Clock(*res.Record.ClockOutTime),
		opday.FormatDuration(*res.Record.WorkDuration))
	reportDelivery(res)
	return nil
}
