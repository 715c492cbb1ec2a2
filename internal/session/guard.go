// Package session gates every authenticated flow. Token presence in the
// store is the sole client-side signal of "logged in"; the guard additionally
// bounces finished users out of onboarding screens.
package session

import (
	"context"
	"errors"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/store"
)

// Decision is the guard's verdict for a screen entry.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

// Screen classifies what is being entered, since only onboarding screens get
// the completion redirect.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenOnboarding
)

// ProfileFetcher is the slice of the API client the guard needs.
type ProfileFetcher interface {
	Me(ctx context.Context) (*models.Profile, error)
}

// Guard checks session state before a gated flow runs.
type Guard struct {
	store    store.Store
	profiles ProfileFetcher
}

// New creates a Guard.
func New(st store.Store, profiles ProfileFetcher) *Guard {
	return &Guard{store: st, profiles: profiles}
}

// Check runs the guard for one screen entry. The token read happens before
// any other effect; an absent token always redirects to login. A failing
// profile check is swallowed (logged only) and the screen is allowed, which
// favors availability over strict enforcement.
func (g *Guard) Check(ctx context.Context, screen Screen) Decision {
	token, err := g.store.Get(constants.KeyAuthToken)
	if err != nil || token == "" {
		return RedirectLogin
	}

	if screen != ScreenOnboarding {
		return Allow
	}

	profile, err := g.profiles.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return RedirectLogin
		}
		logger.Warn("Profile check failed during guard, allowing screen", "error", err)
		return Allow
	}

	if profile.OnboardingComplete {
		return RedirectHome
	}

	return Allow
}
