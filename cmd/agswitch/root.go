package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agtools/agswitch/internal/account"
	"github.com/agtools/agswitch/internal/config"
	"github.com/agtools/agswitch/internal/logging"
	"github.com/agtools/agswitch/internal/paths"
	"github.com/agtools/agswitch/internal/platform"
	"github.com/agtools/agswitch/internal/process"
)

// app bundles the wired components behind the commands.
type app struct {
	cfg        *config.Config
	provider   *paths.OSProvider
	strategy   platform.Strategy
	engine     *account.Engine
	locator    *process.Locator
	terminator *process.Terminator
	launcher   *process.Launcher
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	root := &cobra.Command{
		Use:           "agswitch",
		Short:         "Back up, restore and switch Antigravity accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	load := func() (*app, error) {
		return loadApp(configPath, debug)
	}

	root.AddCommand(
		newStatusCommand(load),
		newCloseCommand(load),
		newStartCommand(load),
		newBackupCommand(load),
		newRestoreCommand(load),
		newCurrentCommand(load),
		newListCommand(load),
		newVersionCommand(),
	)

	return root
}

func loadApp(configPath string, debug bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetDebug(debug || cfg.Logging.Debug)

	strategy := platform.ForGOOS(runtime.GOOS)
	provider := paths.New(cfg.App.DatabasePath, cfg.App.ExecutablePath)
	locator := process.NewLocator(strategy, nil)

	return &app{
		cfg:        cfg,
		provider:   provider,
		strategy:   strategy,
		engine:     account.NewEngine(cfg.Backup.Keys, provider),
		locator:    locator,
		terminator: process.NewTerminator(locator, strategy),
		launcher:   process.NewLauncher(strategy, provider),
	}, nil
}

// closeOptions maps config to terminator options.
func (a *app) closeOptions() process.Options {
	opts := process.DefaultOptions()
	opts.Timeout = a.cfg.Close.GetTimeout()
	opts.PollInterval = a.cfg.Close.GetPollInterval()
	opts.ForceKill = a.cfg.Close.ForceKillEnabled()
	return opts
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("agswitch %s\n", version)
			fmt.Printf("Build Time: %s\n", buildTime)
			fmt.Printf("Git Commit: %s\n", gitCommit)
		},
	}
}
