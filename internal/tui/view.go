package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateEditingNotes {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	date := m.tracker.SelectedDate()
	header := fmt.Sprintf("Habits — %s", date)
	if m.tracker.CanEdit() {
		header += " (today)"
	}
	b.WriteString(headerStyle.Render(header) + "\n")
	if !m.tracker.CanEdit() {
		b.WriteString(readOnlyStyle.Render("Past day: view only") + "\n")
	}
	b.WriteString("\n")

	entries := m.tracker.Entries()
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("No habits to track yet.") + "\n")
	}

	for i, entry := range entries {
		line := m.renderEntry(entry, date)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + m.renderDailyProgress(date) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		b.String(),
		m.help.View(m),
	)

	return docStyle.Render(ui)
}

// renderEntry formats one habit row: completion level, name, score bar,
// streak.
func (m Model) renderEntry(entry models.TrackerEntry, date string) string {
	level := 0
	today := m.tracker.Today()
	if date == today {
		level = m.tracker.Draft(entry.ID).CompletionLevel
	} else if logEntry := m.tracker.LogFor(date, entry.ID); logEntry != nil {
		level = logEntry.CompletionLevel
	}

	meter := strings.Repeat("●", level) + strings.Repeat("○", constants.MaxCompletionLevel-level)

	line := fmt.Sprintf("%s  %s", meter, entry.Habit.Text)
	if entry.TargetScore > 0 {
		line += dimStyle.Render(fmt.Sprintf("  [%d/%d]", entry.CurrentScore, entry.TargetScore))
	}
	if entry.Streak != nil && entry.Streak.CurrentStreak > 0 {
		line += dimStyle.Render(fmt.Sprintf("  🔥%d", entry.Streak.CurrentStreak))
	}
	return line
}

// renderDailyProgress shows the share of habits logged above zero for the
// date.
func (m Model) renderDailyProgress(date string) string {
	progress := m.tracker.DailyProgress(date)
	const width = 20
	filled := int(progress * width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("Daily progress %s %3.0f%%", bar, progress*100)
}
