package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// Trackers lists the user's habit trackers.
func (c *Client) Trackers(ctx context.Context) ([]models.TrackerEntry, error) {
	var entries []models.TrackerEntry
	if err := c.do(ctx, http.MethodGet, "/api/habits/", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// HabitHistory fetches recent logs for one habit, bounded to the given
// number of days.
func (c *Client) HabitHistory(ctx context.Context, habitID, days int) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	path := fmt.Sprintf("/api/habits/%d/history/?days=%d", habitID, days)
	if err := c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// SubmitHabitLog upserts one day's log, keyed by tracker and date.
func (c *Client) SubmitHabitLog(ctx context.Context, upsert models.HabitLogUpsert) (*models.HabitLog, error) {
	var logEntry models.HabitLog
	if err := c.do(ctx, http.MethodPost, "/api/habits/log/", upsert, &logEntry); err != nil {
		return nil, err
	}
	return &logEntry, nil
}
