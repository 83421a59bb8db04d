package main

import (
	"strconv"

	"github.com/mcdev12/hackteams/go/internal/dbconfig"
	"github.com/mcdev12/hackteams/go/internal/migrate"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the Postgres schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := migrate.New(dbconfig.NewConfigFromEnv().DSN())
		if err != nil {
			return err
		}
		return runner.Up(cmd.Context())
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := migrate.New(dbconfig.NewConfigFromEnv().DSN())
		if err != nil {
			return err
		}
		return runner.Status(cmd.Context())
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [version]",
	Short: "Roll back to version (default: the previous one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := int64(-1)
		if len(args) == 1 {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			target = v
		}
		runner, err := migrate.New(dbconfig.NewConfigFromEnv().DSN())
		if err != nil {
			return err
		}
		return runner.Down(cmd.Context(), target)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
