package api

import (
	"context"
	"net/http"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/me/", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateMe patches the current user's profile.
func (c *Client) UpdateMe(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodPatch, "/api/profiles/me/", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Phenotype fetches the server-computed classification result.
func (c *Client) Phenotype(ctx context.Context) (*models.PhenotypeResult, error) {
	var result models.PhenotypeResult
	if err := c.do(ctx, http.MethodGet, "/api/profiles/phenotype/", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateTests replaces the diagnostic test facts.
func (c *Client) UpdateTests(ctx context.Context, tests models.DiagnosticTests) error {
	return c.do(ctx, http.MethodPut, "/api/profiles/tests/update/", tests, nil)
}

// CompleteOnboarding marks onboarding complete server-side. Also used as the
// forced-completion escape hatch.
func (c *Client) CompleteOnboarding(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/profiles/complete-onboarding/", nil, nil)
}
