package api

import (
	"context"
	"net/http"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// MyProgram fetches the current user's generated program.
func (c *Client) MyProgram(ctx context.Context) (*models.Program, error) {
	var p models.Program
	if err := c.do(ctx, http.MethodGet, "/api/programs/my-program/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GenerateProgram asks the server to (re)generate the program document.
func (c *Client) GenerateProgram(ctx context.Context) (*models.Program, error) {
	var p models.Program
	if err := c.do(ctx, http.MethodPost, "/api/programs/generate/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
