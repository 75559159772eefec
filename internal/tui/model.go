// Package tui is the interactive punch clock: a single live screen with
// the running operational-day clock, today's record and one-key punches.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/punchlit/internal/app"
	"github.com/julianstephens/punchlit/internal/models"
)

type tickMsg time.Time

// punchMsg carries the outcome of a clock-in or clock-out back into the
// update loop.
type punchMsg struct {
	verb   string
	result app.ActionResult
	err    error
}

type syncMsg struct {
	processed int
	failed    int
	err       error
}

type Model struct {
	app      *app.App
	keys     KeyMap
	help     help.Model
	profile  models.UserProfile
	record   models.AttendanceRecord
	pending  int
	now      time.Time
	info     string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(a *app.App) Model {
	m := Model{
		app:  a,
		keys: DefaultKeyMap(),
		help: help.New(),
		now:  a.Now(),
	}

	profile, err := a.Profile()
	if err != nil {
		m.err = err
		return m
	}
	m.profile = profile

	if rec, err := a.Today(); err != nil {
		m.err = err
	} else {
		m.record = rec
	}
	if pending, err := a.Pending(); err == nil {
		m.pending = pending
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) clockInCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.ClockIn(context.Background())
		return punchMsg{verb: "Clocked in", result: result, err: err}
	}
}

func (m Model) clockOutCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.ClockOut(context.Background())
		return punchMsg{verb: "Clocked out", result: result, err: err}
	}
}

func (m Model) syncCmd() tea.Cmd {
	return func() tea.Msg {
		processed, failed, err := m.app.Sync(context.Background())
		return syncMsg{processed: processed, failed: failed, err: err}
	}
}
