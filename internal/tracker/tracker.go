// Package tracker owns the habit tracker data flow: loading trackers and
// their recent history, the date-indexed log view, today-only editing, and
// the save/merge cycle.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/validation"
)

var (
	// ErrReadOnlyDate is returned for mutations on any date other than
	// today; past days are view-only.
	ErrReadOnlyDate = errors.New("logs can only be created or edited for the current day")
	// ErrUnknownTracker is returned when a tracker id is not loaded.
	ErrUnknownTracker = errors.New("unknown tracker")
)

// API is the slice of the REST client the tracker needs.
type API interface {
	Trackers(ctx context.Context) ([]models.TrackerEntry, error)
	HabitHistory(ctx context.Context, habitID, days int) ([]models.HabitLog, error)
	SubmitHabitLog(ctx context.Context, upsert models.HabitLogUpsert) (*models.HabitLog, error)
}

// Draft is the in-progress log for today, local-only until saved.
type Draft struct {
	CompletionLevel int
	Notes           string
}

// Tracker holds the loaded entries and the two-level date → tracker → log
// index used for calendar rendering.
type Tracker struct {
	api API

	// Now is injectable so "today" is deterministic in tests.
	Now func() time.Time

	entries      []models.TrackerEntry
	logs         map[string]map[int]*models.HabitLog
	drafts       map[int]Draft
	selectedDate string
}

// New creates a Tracker with today selected.
func New(api API) *Tracker {
	t := &Tracker{
		api:    api,
		Now:    time.Now,
		logs:   make(map[string]map[int]*models.HabitLog),
		drafts: make(map[int]Draft),
	}
	t.selectedDate = t.Today()
	return t
}

// Today returns the current day as computed at call time.
func (t *Tracker) Today() string {
	return t.Now().Format(constants.DateFormat)
}

// Load fetches the tracker list, then each habit's recent history. A single
// habit's history failure is logged and skipped; it never aborts the loop.
func (t *Tracker) Load(ctx context.Context) error {
	entries, err := t.api.Trackers(ctx)
	if err != nil {
		return err
	}
	t.entries = entries
	t.logs = make(map[string]map[int]*models.HabitLog)

	for _, entry := range entries {
		history, err := t.api.HabitHistory(ctx, entry.Habit.ID, constants.HistoryWindowDays)
		if err != nil {
			logger.Warn("Failed to load habit history", "habit_id", entry.Habit.ID, "error", err)
			continue
		}
		for i := range history {
			t.mergeLog(&history[i])
		}
	}

	return nil
}

// mergeLog indexes one log by date and tracker id.
func (t *Tracker) mergeLog(logEntry *models.HabitLog) {
	byTracker, ok := t.logs[logEntry.Date]
	if !ok {
		byTracker = make(map[int]*models.HabitLog)
		t.logs[logEntry.Date] = byTracker
	}
	byTracker[logEntry.TrackerID] = logEntry
}

// Entries returns the loaded tracker entries.
func (t *Tracker) Entries() []models.TrackerEntry {
	return t.entries
}

// RecentDates returns the last n days ending today, newest first.
func (t *Tracker) RecentDates(n int) []string {
	now := t.Now()
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, now.AddDate(0, 0, -i).Format(constants.DateFormat))
	}
	return dates
}

// LogFor returns the indexed log for a date and tracker, or nil.
func (t *Tracker) LogFor(date string, trackerID int) *models.HabitLog {
	if byTracker, ok := t.logs[date]; ok {
		return byTracker[trackerID]
	}
	return nil
}

// SelectDate changes the viewing context.
func (t *Tracker) SelectDate(date string) error {
	if err := validation.ValidateDate(date); err != nil {
		return err
	}
	t.selectedDate = date
	return nil
}

// SelectedDate returns the current viewing date.
func (t *Tracker) SelectedDate() string {
	return t.selectedDate
}

// CanEdit reports whether the selected date accepts mutations, i.e. it
// equals today as computed now.
func (t *Tracker) CanEdit() bool {
	return t.selectedDate == t.Today()
}

// Draft returns the in-progress log for a tracker, seeded from today's saved
// log when one exists.
func (t *Tracker) Draft(trackerID int) Draft {
	if draft, ok := t.drafts[trackerID]; ok {
		return draft
	}
	if saved := t.LogFor(t.Today(), trackerID); saved != nil {
		return Draft{CompletionLevel: saved.CompletionLevel, Notes: saved.Notes}
	}
	return Draft{}
}

// SetCompletionLevel updates the draft level. Rejected outside today.
func (t *Tracker) SetCompletionLevel(trackerID, level int) error {
	if !t.CanEdit() {
		return ErrReadOnlyDate
	}
	if err := validation.ValidateCompletionLevel(level); err != nil {
		return err
	}
	draft := t.Draft(trackerID)
	draft.CompletionLevel = level
	t.drafts[trackerID] = draft
	return nil
}

// SetNotes updates the draft notes. Rejected outside today.
func (t *Tracker) SetNotes(trackerID int, notes string) error {
	if !t.CanEdit() {
		return ErrReadOnlyDate
	}
	draft := t.Draft(trackerID)
	draft.Notes = notes
	t.drafts[trackerID] = draft
	return nil
}

// SaveLog submits the draft as an upsert for today. On success the returned
// log is merged into the index and the tracker's streak is bumped in place
// when the server-recalculated streak exceeds the known value. On failure no
// local state changes; the caller decides how to surface the error (a 401
// has already invalidated the stored session, so drafts are discarded too).
func (t *Tracker) SaveLog(ctx context.Context, trackerID int) (*models.HabitLog, error) {
	if !t.CanEdit() {
		return nil, ErrReadOnlyDate
	}

	entry := t.entryByID(trackerID)
	if entry == nil {
		return nil, ErrUnknownTracker
	}

	draft := t.Draft(trackerID)
	upsert := models.HabitLogUpsert{
		TrackerID: trackerID,
		// The backend's upsert path wants the habit id as well; it is always
		// taken from the tracker's nested habit, nowhere else.
		HabitID:         entry.Habit.ID,
		Date:            t.Today(),
		CompletionLevel: draft.CompletionLevel,
		Notes:           draft.Notes,
	}

	saved, err := t.api.SubmitHabitLog(ctx, upsert)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			t.drafts = make(map[int]Draft)
		}
		return nil, err
	}

	t.mergeLog(saved)
	delete(t.drafts, trackerID)

	if saved.Streak != nil {
		known := 0
		if entry.Streak != nil {
			known = entry.Streak.CurrentStreak
		}
		if saved.Streak.CurrentStreak > known {
			entry.Streak = saved.Streak
		}
	}

	return saved, nil
}

// entryByID returns a pointer into entries so streaks can be updated in
// place.
func (t *Tracker) entryByID(trackerID int) *models.TrackerEntry {
	for i := range t.entries {
		if t.entries[i].ID == trackerID {
			return &t.entries[i]
		}
	}
	return nil
}

// DailyProgress is the share of habits with a completion level above zero on
// the given date. 0/0 is defined as 0.
func (t *Tracker) DailyProgress(date string) float64 {
	if len(t.entries) == 0 {
		return 0
	}
	completed := 0
	for _, entry := range t.entries {
		if logEntry := t.LogFor(date, entry.ID); logEntry != nil && logEntry.CompletionLevel > 0 {
			completed++
		}
	}
	return float64(completed) / float64(len(t.entries))
}
