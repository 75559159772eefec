package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/punchlit/internal/attendance"
	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/opday"
)

var (
	badgeIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	badgeWorkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	badgeDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	profile, err := a.Profile()
	if err != nil {
		return err
	}

	rec, err := a.Today()
	if err != nil {
		return err
	}

	now := a.Now()
	display := opday.DisplayDate(now)
	fmt.Printf("%s — %s (%s)\n\n", profile.UserName, rec.Date, display.Weekday().String()[:3])

	fmt.Println(statusBadge(rec.Status))
	fmt.Printf("%s %s\n", labelStyle.Render("Clock-in"), clockOrDashes(rec.ClockInTime))
	fmt.Printf("%s %s\n", labelStyle.Render("Clock-out"), clockOrDashes(rec.ClockOutTime))

	worked := attendance.WorkedMinutes(rec, now)
	if rec.Status == models.StatusNotClockedIn {
		fmt.Printf("%s --\n", labelStyle.Render("Worked"))
	} else {
		fmt.Printf("%s %s\n", labelStyle.Render("Worked"), opday.FormatDuration(worked))
	}

	if pending, err := a.Pending(); err == nil && pending > 0 {
		fmt.Printf("\n%d notification(s) queued, run 'punchlit sync' when back online.\n", pending)
	}

	return nil
}

func statusBadge(status models.AttendanceStatus) string {
	switch status {
	case models.StatusClockedIn:
		return badgeWorkingStyle.Render("● Working")
	case models.StatusClockedOut:
		return badgeDoneStyle.Render("● Clocked out")
	default:
		return badgeIdleStyle.Render("○ Not clocked in")
	}
}

func clockOrDashes(t *time.Time) string {
	if t == nil {
		return "--:--"
	}
	return opday.Clock(*t)
}
