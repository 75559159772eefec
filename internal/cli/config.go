package cli

import "fmt"

type ConfigCmd struct {
	SheetURL      *string `help:"Spreadsheet record endpoint URL."`
	ChatURL       *string `help:"Chat push endpoint URL."`
	ChatToken     *string `help:"Chat API bearer token."`
	ChatRecipient *string `help:"Chat recipient (user or group id)."`
	AppURL        *string `help:"App URL reported on task completion."`
}

func (c *ConfigCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	settings, err := a.Settings()
	if err != nil {
		return err
	}

	changed := false
	for _, update := range []struct {
		value *string
		field *string
	}{
		{c.SheetURL, &settings.SheetURL},
		{c.ChatURL, &settings.ChatURL},
		{c.ChatToken, &settings.ChatToken},
		{c.ChatRecipient, &settings.ChatRecipient},
		{c.AppURL, &settings.AppURL},
	} {
		if update.value != nil {
			*update.field = *update.value
			changed = true
		}
	}

	if changed {
		if err := a.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Println("Settings updated.")
		return nil
	}

	fmt.Printf("Sheet URL:      %s\n", orUnset(settings.SheetURL))
	fmt.Printf("Chat URL:       %s\n", orUnset(settings.ChatURL))
	fmt.Printf("Chat token:     %s\n", orUnset(maskSecret(settings.ChatToken)))
	fmt.Printf("Chat recipient: %s\n", orUnset(settings.ChatRecipient))
	fmt.Printf("App URL:        %s\n", orUnset(settings.AppURL))
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[:4] + "..."
}
