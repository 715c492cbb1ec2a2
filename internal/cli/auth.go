package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/session"
	"github.com/gerdlab/refluxtrack/internal/store"
	"github.com/gerdlab/refluxtrack/internal/validation"
)

type LoginCmd struct {
	Username string `arg:"" optional:"" help:"Account username."`
}

func (c *LoginCmd) Run(appCtx *Context) error {
	username := c.Username
	var password string

	var fields []huh.Field
	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Validate(validation.RequireName).
			Value(&username))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	resp, err := appCtx.API.Login(context.Background(), models.Credentials{
		Username: strings.TrimSpace(username),
		Password: password,
	})
	if err != nil {
		return err
	}

	if err := saveSession(appCtx.Store, resp); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s.\n", resp.Username)
	return nil
}

type RegisterCmd struct{}

func (c *RegisterCmd) Run(appCtx *Context) error {
	var username, email, password string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Username").
			Validate(validation.RequireName).
			Value(&username),
		huh.NewInput().
			Title("Email").
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return fmt.Errorf("enter a valid email address")
				}
				return nil
			}).
			Value(&email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validation.ValidatePassword).
			Value(&password),
	))
	if err := form.Run(); err != nil {
		return err
	}

	resp, err := appCtx.API.Register(context.Background(), models.Registration{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return err
	}

	if err := saveSession(appCtx.Store, resp); err != nil {
		return err
	}

	fmt.Printf("Account created. Logged in as %s.\n", resp.Username)
	fmt.Println("Run 'refluxtrack onboarding' to set up your program.")
	return nil
}

type LogoutCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *LogoutCmd) Run(appCtx *Context) error {
	if !c.Force {
		confirmed := false
		if err := huh.NewConfirm().
			Title("Log out and discard the local session?").
			Value(&confirmed).
			Run(); err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	username, _ := appCtx.Store.Get(constants.KeyUsername)
	for _, key := range []string{
		constants.KeyAuthToken,
		constants.KeyUsername,
		constants.KeyDisplayName,
		store.CheckpointKey(username),
	} {
		if err := appCtx.Store.Delete(key); err != nil && err != store.ErrNotFound {
			logger.Warn("Failed to clear store key on logout", "key", key, "error", err)
		}
	}

	fmt.Println("Logged out.")
	return nil
}

type PasswdCmd struct{}

func (c *PasswdCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	var oldPassword, newPassword string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Current password").
			EchoMode(huh.EchoModePassword).
			Value(&oldPassword),
		huh.NewInput().
			Title("New password").
			EchoMode(huh.EchoModePassword).
			Validate(validation.ValidatePassword).
			Value(&newPassword),
	))
	if err := form.Run(); err != nil {
		return err
	}

	err := appCtx.API.ChangePassword(ctx, models.PasswordChange{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return ErrLoginRequired
		}
		return err
	}

	fmt.Println("Password changed.")
	return nil
}

// saveSession persists the token and user identity, and mints the device id
// on first login.
func saveSession(st store.Store, resp *models.TokenResponse) error {
	if err := st.Set(constants.KeyAuthToken, resp.Token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	if resp.Username != "" {
		if err := st.Set(constants.KeyUsername, resp.Username); err != nil {
			logger.Warn("Failed to store username", "error", err)
		}
	}
	if resp.Name != "" {
		if err := st.Set(constants.KeyDisplayName, resp.Name); err != nil {
			logger.Warn("Failed to store display name", "error", err)
		}
	}
	if _, err := st.Get(constants.KeyDeviceID); err == store.ErrNotFound {
		if err := st.Set(constants.KeyDeviceID, uuid.New().String()); err != nil {
			logger.Warn("Failed to store device id", "error", err)
		}
	}
	return nil
}
