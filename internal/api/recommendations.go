package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// Recommendations lists the current user's recommendations.
func (c *Client) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.do(ctx, http.MethodGet, "/api/recommendations/", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// RegenerateRecommendations asks the server to rebuild the recommendation
// list. Best-effort during onboarding finalization.
func (c *Client) RegenerateRecommendations(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/recommendations/regenerate/", nil, nil)
}

// SetRecommendationRead toggles a recommendation's read state.
func (c *Client) SetRecommendationRead(ctx context.Context, id int, read bool) error {
	payload := struct {
		IsRead bool `json:"is_read"`
	}{IsRead: read}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/recommendations/%d/", id), payload, nil)
}
