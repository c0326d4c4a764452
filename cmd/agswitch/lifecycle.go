package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCommand(load func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether Antigravity is running and who is signed in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}

			if a.locator.IsRunning() {
				fmt.Println("Antigravity is running")
				if procs, err := a.locator.FindAll(); err == nil {
					for _, p := range procs {
						fmt.Printf("  %s  %s\n", p, p.Exe)
					}
				}
			} else {
				fmt.Println("Antigravity is not running")
			}

			if email, ok := a.engine.CurrentAccount(); ok {
				fmt.Printf("Signed-in account: %s\n", email)
			}
			return nil
		},
	}
}

func newCloseCommand(load func() (*app, error)) *cobra.Command {
	var (
		timeout     time.Duration
		noForceKill bool
	)

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Gracefully close all Antigravity processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}

			opts := a.closeOptions()
			if cmd.Flags().Changed("timeout") {
				opts.Timeout = timeout
			}
			if noForceKill {
				opts.ForceKill = false
			}

			report := a.terminator.Close(opts)
			if !report.Success {
				return fmt.Errorf("failed to close Antigravity")
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for processes to exit")
	cmd.Flags().BoolVar(&noForceKill, "no-force-kill", false, "never escalate to a forced kill")

	return cmd
}

func newStartCommand(load func() (*app, error)) *cobra.Command {
	var noURI bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start Antigravity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			if !a.launcher.Start(!noURI) {
				return fmt.Errorf("failed to start Antigravity")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noURI, "no-uri", false, "skip the URI launch and use the executable path first")

	return cmd
}
