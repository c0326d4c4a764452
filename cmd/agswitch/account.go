package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agtools/agswitch/internal/account"
	"github.com/agtools/agswitch/internal/logging"
)

func newBackupCommand(load func() (*app, error)) *cobra.Command {
	var (
		email string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the signed-in account to a snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}

			if a.locator.IsRunning() {
				logging.Warning("Antigravity is running; close it first for a consistent backup")
			}

			if email == "" {
				current, ok := a.engine.CurrentAccount()
				if !ok {
					return fmt.Errorf("no signed-in account found, pass --email")
				}
				email = current
			}

			if out == "" {
				out, err = account.DefaultBackupPath(a.cfg.Backup.Dir, email)
				if err != nil {
					return fmt.Errorf("failed to prepare backup directory: %w", err)
				}
			}

			if !a.engine.Backup(email, out) {
				return fmt.Errorf("backup failed")
			}
			fmt.Printf("Backed up %s to %s\n", email, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email recorded in the snapshot (default: signed-in account)")
	cmd.Flags().StringVar(&out, "out", "", "snapshot file path (default: generated under the backup dir)")

	return cmd
}

func newRestoreCommand(load func() (*app, error)) *cobra.Command {
	var restart bool

	cmd := &cobra.Command{
		Use:   "restore <snapshot>",
		Short: "Close Antigravity and restore a snapshot into its databases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}

			// The app holds the database while running; close it first.
			if report := a.terminator.Close(a.closeOptions()); !report.Success {
				return fmt.Errorf("could not close Antigravity, restore aborted")
			}

			if !a.engine.Restore(args[0]) {
				return fmt.Errorf("restore failed")
			}
			fmt.Printf("Restored %s\n", args[0])

			if restart {
				if !a.launcher.Start(true) {
					return fmt.Errorf("restore succeeded but Antigravity could not be started")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&restart, "restart", false, "start Antigravity again after the restore")

	return cmd
}

func newCurrentCommand(load func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the signed-in account email",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}

			email, ok := a.engine.CurrentAccount()
			if !ok {
				return fmt.Errorf("no signed-in account found")
			}
			fmt.Println(email)
			return nil
		},
	}
}

func newListCommand(load func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots in the backup directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}

			backups, err := account.ListBackups(a.cfg.Backup.Dir)
			if err != nil {
				return fmt.Errorf("failed to list backups: %w", err)
			}
			if len(backups) == 0 {
				fmt.Println("No backups found")
				return nil
			}
			for _, b := range backups {
				fmt.Printf("%s\t%s\t%s\n", b.Email, b.Time, b.Path)
			}
			return nil
		},
	}
}
