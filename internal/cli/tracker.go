package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerdlab/refluxtrack/internal/session"
	"github.com/gerdlab/refluxtrack/internal/tracker"
	"github.com/gerdlab/refluxtrack/internal/tui"
)

type TrackerCmd struct {
	Today   TrackerTodayCmd   `cmd:"" default:"1" help:"Interactive day view."`
	Log     TrackerLogCmd     `cmd:"" help:"Log a habit for today without the TUI."`
	History TrackerHistoryCmd `cmd:"" help:"Show recent days for all habits."`
}

type TrackerTodayCmd struct{}

func (c *TrackerTodayCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	tr := tracker.New(appCtx.API)
	if err := tr.Load(ctx); err != nil {
		return err
	}

	model, err := tea.NewProgram(tui.NewModel(ctx, tr), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := model.(tui.Model); ok && m.SessionExpired() {
		return ErrLoginRequired
	}
	return nil
}

type TrackerLogCmd struct {
	Tracker int    `arg:"" help:"Tracker id (see 'refluxtrack tracker history')."`
	Level   int    `arg:"" help:"Completion level, 0-3."`
	Notes   string `help:"Optional note for today."`
}

func (c *TrackerLogCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	tr := tracker.New(appCtx.API)
	if err := tr.Load(ctx); err != nil {
		return err
	}

	if err := tr.SetCompletionLevel(c.Tracker, c.Level); err != nil {
		return err
	}
	if c.Notes != "" {
		if err := tr.SetNotes(c.Tracker, c.Notes); err != nil {
			return err
		}
	}

	saved, err := tr.SaveLog(ctx, c.Tracker)
	if err != nil {
		return err
	}

	fmt.Printf("Logged level %d for %s.\n", saved.CompletionLevel, saved.Date)
	if saved.Streak != nil && saved.Streak.CurrentStreak > 0 {
		fmt.Printf("Streak: %d day(s).\n", saved.Streak.CurrentStreak)
	}
	return nil
}

type TrackerHistoryCmd struct {
	Days int `help:"Number of days to show." default:"7"`
}

func (c *TrackerHistoryCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	tr := tracker.New(appCtx.API)
	if err := tr.Load(ctx); err != nil {
		return err
	}

	entries := tr.Entries()
	if len(entries) == 0 {
		fmt.Println("No habits to track yet.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%3d  %s", entry.ID, entry.Habit.Text)
		if entry.Streak != nil && entry.Streak.CurrentStreak > 0 {
			fmt.Printf("  (streak: %d)", entry.Streak.CurrentStreak)
		}
		fmt.Println()

		for _, date := range tr.RecentDates(c.Days) {
			level := "-"
			notes := ""
			if logEntry := tr.LogFor(date, entry.ID); logEntry != nil {
				level = fmt.Sprintf("%d", logEntry.CompletionLevel)
				notes = logEntry.Notes
			}
			fmt.Printf("     %s  %s", date, level)
			if notes != "" {
				fmt.Printf("  %s", notes)
			}
			fmt.Println()
		}
	}

	return nil
}
