package main

import (
	"github.com/mcdev12/hackteams/go/internal/config"
	"github.com/mcdev12/hackteams/go/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hackteams",
	Short: "Hackathon team membership service",
	Long: `hackteams runs the team registry and join request API.

Configuration is read from hackteams.yaml (or --config) and HACKTEAMS_*
environment variables. Postgres settings use DB_HOST, DB_PORT, DB_USER,
DB_PASSWORD, DB_NAME and DB_SSLMODE.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.Log.Level, cfg.Log.Console, "hackteams")
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./hackteams.yaml)")
}
