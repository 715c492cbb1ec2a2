// Package tui is the interactive habit tracker day view.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/tracker"
)

type sessionState int

const (
	stateViewing sessionState = iota
	stateEditingNotes
)

// saveResultMsg carries the outcome of an async log save.
type saveResultMsg struct {
	log *models.HabitLog
	err error
}

// Model is the bubbletea model for the tracker day view.
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker

	state    sessionState
	keys     KeyMap
	help     help.Model
	cursor   int
	form     *huh.Form
	notes    string
	status   string
	errMsg   string
	expired  bool
	quitting bool
	width    int
	height   int
}

// NewModel creates the day view over an already-loaded tracker.
func NewModel(ctx context.Context, tr *tracker.Tracker) Model {
	return Model{
		ctx:     ctx,
		tracker: tr,
		state:   stateViewing,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// SessionExpired reports whether the view quit because of a 401.
func (m Model) SessionExpired() bool {
	return m.expired
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.SetLevel, m.keys.Save, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay},
		{m.keys.SetLevel, m.keys.Notes, m.keys.Save},
		{m.keys.Help, m.keys.Quit},
	}
}

// selectedEntry returns the tracker entry under the cursor, or nil.
func (m Model) selectedEntry() *models.TrackerEntry {
	entries := m.tracker.Entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	return &entries[m.cursor]
}

// shiftDate moves the selected date by the given number of days.
func (m *Model) shiftDate(days int) {
	current, err := time.Parse(constants.DateFormat, m.tracker.SelectedDate())
	if err != nil {
		return
	}
	next := current.AddDate(0, 0, days).Format(constants.DateFormat)
	if err := m.tracker.SelectDate(next); err == nil {
		m.status = ""
		m.errMsg = ""
	}
}

// saveCmd submits the selected tracker's draft.
func (m Model) saveCmd(trackerID int) tea.Cmd {
	ctx, tr := m.ctx, m.tracker
	return func() tea.Msg {
		saved, err := tr.SaveLog(ctx, trackerID)
		return saveResultMsg{log: saved, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case saveResultMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				// Session gone; the stored token has already been cleared and
				// the in-progress notes were discarded with the drafts.
				m.expired = true
				m.quitting = true
				return m, tea.Quit
			}
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Saved."
		return m, nil
	}

	if m.state == stateEditingNotes {
		return m.updateNotesForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tracker.Entries())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.PrevDay):
			m.shiftDate(-1)

		case key.Matches(msg, m.keys.NextDay):
			m.shiftDate(1)

		case key.Matches(msg, m.keys.SetLevel):
			if entry := m.selectedEntry(); entry != nil {
				level := int(msg.String()[0] - '0')
				if err := m.tracker.SetCompletionLevel(entry.ID, level); err != nil {
					m.errMsg = err.Error()
				} else {
					m.errMsg = ""
					m.status = ""
				}
			}

		case key.Matches(msg, m.keys.Notes):
			if entry := m.selectedEntry(); entry != nil {
				if !m.tracker.CanEdit() {
					m.errMsg = tracker.ErrReadOnlyDate.Error()
					return m, nil
				}
				m.notes = m.tracker.Draft(entry.ID).Notes
				m.form = newNotesForm(&m.notes)
				m.state = stateEditingNotes
				return m, m.form.Init()
			}

		case key.Matches(msg, m.keys.Save):
			if entry := m.selectedEntry(); entry != nil {
				if !m.tracker.CanEdit() {
					m.errMsg = tracker.ErrReadOnlyDate.Error()
					return m, nil
				}
				m.status = "Saving..."
				return m, m.saveCmd(entry.ID)
			}
		}
	}

	return m, nil
}

// updateNotesForm drives the embedded huh form while notes are being edited.
func (m Model) updateNotesForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateViewing
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if entry := m.selectedEntry(); entry != nil {
			if err := m.tracker.SetNotes(entry.ID, m.notes); err != nil {
				m.errMsg = err.Error()
			}
		}
		m.state = stateViewing
	case huh.StateAborted:
		m.state = stateViewing
	}

	return m, cmd
}

// newNotesForm builds the one-field notes form.
func newNotesForm(notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes for today").
				CharLimit(500).
				Value(notes),
		),
	)
}
