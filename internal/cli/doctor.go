package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/store"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(appCtx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config directory writable
	if err := checkConfigDir(appCtx); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK (%s)\n", appCtx.Config.Dir)
	}

	// Check 2: credential store backend
	switch st := appCtx.Store.(type) {
	case *store.SQLiteStore:
		fmt.Printf("⚠ Credential store: WARNING\n")
		fmt.Printf("   System keyring unavailable; using file store at %s\n", st.Path())
	default:
		fmt.Printf("✓ Credential store: OK (system keyring)\n")
	}

	// Check 3: session token present (warning only)
	hasToken := false
	if _, err := appCtx.Store.Get(constants.KeyAuthToken); err != nil {
		fmt.Printf("⚠ Session token: WARNING\n")
		fmt.Printf("   No stored session; run 'refluxtrack login'\n")
	} else {
		fmt.Printf("✓ Session token: OK\n")
		hasToken = true
	}

	// Check 4: server reachable
	if err := checkServerReachable(appCtx); err != nil {
		fmt.Printf("❌ Server reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Server reachable: OK (%s)\n", appCtx.Config.ServerURL)
	}

	// Check 5: duplicate processes
	if count, err := countOwnProcesses(); err != nil {
		fmt.Printf("⊘ Duplicate processes: SKIPPED (%v)\n", err)
	} else if count > 1 {
		fmt.Printf("⚠ Duplicate processes: WARNING\n")
		fmt.Printf("   %d %s processes running; concurrent edits may clobber each other\n", count, constants.AppName)
	} else {
		fmt.Printf("✓ Duplicate processes: OK\n")
	}

	// Check 6: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	if hasToken {
		if enabled, err := appCtx.Store.Get(constants.KeyNotificationsEnabled); err == nil {
			fmt.Printf("\nNotifications enabled: %s\n", enabled)
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfigDir(appCtx *Context) error {
	if err := os.MkdirAll(appCtx.Config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	probe, err := os.CreateTemp(appCtx.Config.Dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("config directory is not writable: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// checkServerReachable probes the profile endpoint. A rejection with any
// status still proves the server answered; only transport failures count.
func checkServerReachable(appCtx *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := appCtx.API.Me(ctx)
	if err == nil {
		return nil
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return nil
	}
	return err
}

func countOwnProcesses() (int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}
	count := 0
	for _, p := range processes {
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			count++
		}
	}
	return count, nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
