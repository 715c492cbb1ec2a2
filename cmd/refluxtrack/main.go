package main

import (
	"time"

	"github.com/alecthomas/kong"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/cli"
	"github.com/gerdlab/refluxtrack/internal/config"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/errors"
	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory path." type:"path" default:"~/.config/refluxtrack"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Login      cli.LoginCmd      `cmd:"" help:"Log in to your account."`
	Register   cli.RegisterCmd   `cmd:"" help:"Create a new account."`
	Logout     cli.LogoutCmd     `cmd:"" help:"Log out and clear the local session."`
	Passwd     cli.PasswdCmd     `cmd:"" help:"Change your password."`
	Onboarding cli.OnboardingCmd `cmd:"" help:"Run or resume the onboarding flow."`
	Phenotype  cli.PhenotypeCmd  `cmd:"" help:"Show your reflux phenotype."`
	Program    cli.ProgramCmd    `cmd:"" help:"Show your personal program."`
	Recs       cli.RecsCmd       `cmd:"" help:"List and read recommendations."`
	Tracker    cli.TrackerCmd    `cmd:"" help:"Track your daily habits." default:"withargs"`

	Notifications cli.NotificationsCmd `cmd:"" help:"Show or change the reminder preference."`
	Doctor        cli.DoctorCmd        `cmd:"" help:"Run diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Reflux habit and symptom tracking companion"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.Dir}); err != nil {
		errors.Fatal(err)
	}

	st, err := store.Open(cfg.Dir)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Store:  st,
		API:    api.New(cfg.ServerURL, time.Duration(cfg.RequestTimeout)*time.Second, st),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
