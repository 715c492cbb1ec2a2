package cli

import (
	"fmt"

	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/store"
)

type NotificationsCmd struct {
	State string `arg:"" optional:"" enum:",on,off" help:"Turn reminders on or off. Omit to show the current setting."`
}

func (c *NotificationsCmd) Run(appCtx *Context) error {
	if c.State == "" {
		current, err := appCtx.Store.Get(constants.KeyNotificationsEnabled)
		if err == store.ErrNotFound {
			current = "off"
		} else if err != nil {
			return err
		}
		fmt.Printf("Notifications: %s\n", current)
		return nil
	}

	if err := appCtx.Store.Set(constants.KeyNotificationsEnabled, c.State); err != nil {
		return err
	}
	fmt.Printf("Notifications turned %s.\n", c.State)
	return nil
}
