package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type InitCmd struct {
	Name string `arg:"" optional:"" help:"Trainee name (prompted when omitted)."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		if err := huh.NewInput().
			Title("What is your name?").
			Value(&name).
			Run(); err != nil {
			return err
		}
	}

	a, err := ctx.App()
	if err != nil {
		return err
	}

	profile, err := a.Setup(name)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized punchlit storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Welcome, %s!\n", profile.UserName)
	return nil
}
