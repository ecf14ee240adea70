// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Impassword.
// This file, tui.go, holds the model: the password display, the strength
// meter and the options list, all driven by a core.Session.
package tui // import "github.com/toeirei/impassword/internal/tui"

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/impassword/internal/core"
	"github.com/toeirei/impassword/internal/generator"
	"github.com/toeirei/impassword/internal/logging"
	"github.com/toeirei/impassword/internal/model"
)

// How long notifications and the copied marker stay on screen.
const (
	statusTimeout = 3 * time.Second
	copiedTimeout = 2 * time.Second
)

// optionRow is a line of the options list.
type optionRow int

const (
	rowLength optionRow = iota
	rowUppercase
	rowLowercase
	rowNumbers
	rowSymbols
	rowExcludeAmbiguous
	rowCount
)

// rowCategory maps the category rows to their category.
var rowCategory = map[optionRow]model.Category{
	rowUppercase: model.Uppercase,
	rowLowercase: model.Lowercase,
	rowNumbers:   model.Numbers,
	rowSymbols:   model.Symbols,
}

// clearStatusMsg hides the notification with the given sequence number.
type clearStatusMsg struct{ seq int }

// copiedResetMsg hides the copied marker set by copy number n.
type copiedResetMsg struct{ n int }

// Model is the top-level Bubble Tea model.
type Model struct {
	session *core.Session
	status  *statusLine
	keys    KeyMap
	help    help.Model

	cursor    optionRow
	copied    bool
	copyCount int
	width     int
	height    int
}

// New builds a model around a fresh session.
func New(opts model.Options, rng generator.RandomSource, clip core.Clipboard) Model {
	status := &statusLine{}
	return Model{
		session: core.NewSession(opts, rng, status, clip),
		status:  status,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// Session exposes the underlying session.
func (m Model) Session() *core.Session { return m.session }

// Init is the first function that will be called by the Bubble Tea runtime.
func (m Model) Init() tea.Cmd {
	return m.statusTimeoutCmd()
}

// Update handles key presses and window size changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		m.status.clear(msg.seq)
		return m, nil

	case copiedResetMsg:
		if msg.n == m.copyCount {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + rowCount - 1) % rowCount
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rowCount
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		return m.adjustLength(-1)

	case key.Matches(msg, m.keys.Increase):
		return m.adjustLength(1)

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleRow()

	case key.Matches(msg, m.keys.Regenerate):
		m.copied = false
		m.session.Regenerate()
		return m, m.statusTimeoutCmd()

	case key.Matches(msg, m.keys.Copy):
		if err := m.session.Copy(); err != nil {
			logging.Debugf("copy failed: %v", err)
			return m, m.statusTimeoutCmd()
		}
		m.copied = true
		m.copyCount++
		n := m.copyCount
		return m, tea.Batch(m.statusTimeoutCmd(), tea.Tick(copiedTimeout, func(time.Time) tea.Msg {
			return copiedResetMsg{n: n}
		}))
	}
	return m, nil
}

// adjustLength moves the requested length by delta within the UI range.
// It only acts on the length row.
func (m Model) adjustLength(delta int) (tea.Model, tea.Cmd) {
	if m.cursor != rowLength {
		return m, nil
	}
	cur := m.session.Options().Length
	next := min(max(cur+delta, core.MinLength), core.MaxLength)
	if next == cur {
		return m, nil
	}
	m.copied = false
	m.session.SetLength(next)
	return m, m.statusTimeoutCmd()
}

// toggleRow flips the option under the cursor.
func (m Model) toggleRow() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case rowLength:
		return m, nil
	case rowExcludeAmbiguous:
		m.session.SetExcludeAmbiguous(!m.session.Options().ExcludeAmbiguous)
	default:
		m.session.Toggle(rowCategory[m.cursor])
	}
	m.copied = false
	return m, m.statusTimeoutCmd()
}

// statusTimeoutCmd schedules clearing of the current notification, if any.
func (m Model) statusTimeoutCmd() tea.Cmd {
	text, _, seq := m.status.get()
	if text == "" {
		return nil
	}
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// Run starts the interactive TUI and blocks until the user quits.
func Run(opts model.Options, rng generator.RandomSource, clip core.Clipboard) error {
	p := tea.NewProgram(New(opts, rng, clip), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
