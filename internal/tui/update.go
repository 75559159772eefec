package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/punchlit/internal/opday"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.now = m.app.Now()
		// Today rolls the record over when the tick crosses the
		// 06:00 boundary.
		if rec, err := m.app.Today(); err == nil {
			m.record = rec
		}
		return m, tickCmd()

	case punchMsg:
		if msg.err != nil {
			m.err = msg.err
			m.info = ""
			return m, nil
		}
		m.err = nil
		m.record = msg.result.Record
		m.info = fmt.Sprintf("%s at %s.", msg.verb, opday.Clock(m.app.Now()))
		if msg.result.Queued {
			m.info += " Delivery failed, notification queued."
		}
		if pending, err := m.app.Pending(); err == nil {
			m.pending = pending
		}
		return m, nil

	case syncMsg:
		if msg.err != nil {
			m.err = msg.err
			m.info = ""
			return m, nil
		}
		m.err = nil
		if msg.failed > 0 {
			m.info = fmt.Sprintf("Retried %d, %d failed and were dropped.", msg.processed, msg.failed)
		} else if msg.processed > 0 {
			m.info = fmt.Sprintf("Sent %d queued notification(s).", msg.processed)
		} else {
			m.info = "Nothing queued."
		}
		if pending, err := m.app.Pending(); err == nil {
			m.pending = pending
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.ClockIn):
			return m, m.clockInCmd()
		case key.Matches(msg, m.keys.ClockOut):
			return m, m.clockOutCmd()
		case key.Matches(msg, m.keys.Sync):
			return m, m.syncCmd()
		}
	}

	return m, nil
}
