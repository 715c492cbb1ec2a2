package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// Questionnaire fetches a questionnaire definition by id.
func (c *Client) Questionnaire(ctx context.Context, id int) (*models.Questionnaire, error) {
	var q models.Questionnaire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/questionnaires/%d/", id), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SubmitQuestionnaire submits answers for a questionnaire.
func (c *Client) SubmitQuestionnaire(ctx context.Context, id int, sub models.QuestionnaireSubmission) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/questionnaires/%d/submit/", id), sub, nil)
}

// HabitQuestionnaire fetches the habit-preference questionnaire.
func (c *Client) HabitQuestionnaire(ctx context.Context) (*models.Questionnaire, error) {
	var q models.Questionnaire
	if err := c.do(ctx, http.MethodGet, "/api/questionnaires/habits/", nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// SubmitHabitQuestionnaire submits the habit-preference answers.
func (c *Client) SubmitHabitQuestionnaire(ctx context.Context, sub models.QuestionnaireSubmission) error {
	return c.do(ctx, http.MethodPost, "/api/questionnaires/habits/submit/", sub, nil)
}
