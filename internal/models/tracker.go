package models

// TrackerEntry is a per-user, per-habit adherence record.
type TrackerEntry struct {
	ID           int     `json:"id"`
	Habit        Habit   `json:"habit"`
	CurrentScore int     `json:"current_score"`
	TargetScore  int     `json:"target_score"`
	Streak       *Streak `json:"streak,omitempty"`
}

// Habit is the trackable habit definition.
type Habit struct {
	ID          int    `json:"id"`
	HabitType   string `json:"habit_type"`
	Text        string `json:"text"`
	Description string `json:"description"`
}

// Streak is server-maintained streak metadata.
type Streak struct {
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	LastLogDate   string `json:"last_log_date"`
}

// HabitLog is one day's completion record for a habit.
type HabitLog struct {
	ID              int     `json:"id"`
	TrackerID       int     `json:"tracker_id"`
	HabitID         int     `json:"habit_id"`
	Date            string  `json:"date"` // YYYY-MM-DD
	CompletionLevel int     `json:"completion_level"`
	Notes           string  `json:"notes,omitempty"`
	Streak          *Streak `json:"streak,omitempty"`
}

// HabitLogUpsert is the log submit payload. The backend's upsert path wants
// both tracker and habit ids; see the tracker package for the single place
// that fills them.
type HabitLogUpsert struct {
	TrackerID       int    `json:"tracker_id"`
	HabitID         int    `json:"habit_id"`
	Date            string `json:"date"`
	CompletionLevel int    `json:"completion_level"`
	Notes           string `json:"notes,omitempty"`
}
