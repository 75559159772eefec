package cli

import "fmt"

type NameCmd struct {
	Name string `arg:"" help:"New trainee name."`
}

func (c *NameCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	profile, err := a.Rename(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Name updated to %s.\n", profile.UserName)
	return nil
}
