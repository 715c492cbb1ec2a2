package cli

import (
	"context"
	"errors"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/config"
	"github.com/gerdlab/refluxtrack/internal/session"
	"github.com/gerdlab/refluxtrack/internal/store"
)

var (
	// ErrLoginRequired is surfaced whenever a gated command runs without a
	// stored session.
	ErrLoginRequired = errors.New("no active session; run 'refluxtrack login' first")
	// ErrOnboardingDone is surfaced when an onboarding command runs for a
	// user whose onboarding is already complete.
	ErrOnboardingDone = errors.New("onboarding is already complete; run 'refluxtrack tracker' instead")
)

// Context is the shared dependency bundle handed to every command.
type Context struct {
	Config *config.Config
	Store  store.Store
	API    *api.Client
}

// Guard runs the session guard for one command entry. It is the first thing
// every gated command does.
func (c *Context) Guard(ctx context.Context, screen session.Screen) error {
	switch session.New(c.Store, c.API).Check(ctx, screen) {
	case session.RedirectLogin:
		return ErrLoginRequired
	case session.RedirectHome:
		return ErrOnboardingDone
	}
	return nil
}
