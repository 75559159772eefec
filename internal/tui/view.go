package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/punchlit/internal/attendance"
	"github.com/julianstephens/punchlit/internal/models"
	"github.com/julianstephens/punchlit/internal/opday"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("punchlit"),
		"  ",
		dateStyle.Render(fmt.Sprintf("%s (%s)", opday.Date(m.now), opday.DisplayDate(m.now).Weekday().String()[:3])),
	)

	lines := []string{
		header,
		"",
		clockStyle.Render(bigClock(m.now)),
		"",
		m.viewBadge(),
		fmt.Sprintf("%s %s", labelStyle.Render("Clock-in"), clockOrDashes(m.record.ClockInTime)),
		fmt.Sprintf("%s %s", labelStyle.Render("Clock-out"), clockOrDashes(m.record.ClockOutTime)),
		fmt.Sprintf("%s %s", labelStyle.Render("Worked"), m.viewWorked()),
	}

	if m.pending > 0 {
		lines = append(lines, "", dateStyle.Render(fmt.Sprintf("%d notification(s) queued, press s to sync.", m.pending)))
	}
	if m.err != nil {
		lines = append(lines, "", errStyle.Render(m.err.Error()))
	} else if m.info != "" {
		lines = append(lines, "", infoStyle.Render(m.info))
	}

	lines = append(lines, "", m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewBadge() string {
	switch m.record.Status {
	case models.StatusClockedIn:
		return badgeWorkingStyle.Render("● Working")
	case models.StatusClockedOut:
		return badgeDoneStyle.Render("● Clocked out")
	default:
		return badgeIdleStyle.Render("○ Not clocked in")
	}
}

func (m Model) viewWorked() string {
	if m.record.Status == models.StatusNotClockedIn {
		return "--"
	}
	return opday.FormatDuration(attendance.WorkedMinutes(m.record, m.now))
}

// bigClock renders the live display clock. Unlike the wire format, the
// hour is zero-padded and seconds are shown.
func bigClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", opday.Hour(t), t.Minute(), t.Second())
}

func clockOrDashes(t *time.Time) string {
	if t == nil {
		return "--:--"
	}
	return opday.Clock(*t)
}
