package cmd

import (
	"fmt"
	"os"

	"github.com/AGTechathon/Agriminds/configs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "agriminds",
	Short: "Agriminds marketplace API",
	Long: `Agriminds connects farmers, buyers, admins and field agents.

Run without a subcommand to start the HTTP server.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, json, toml)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and opens the migrated database.
func bootstrap() (*configs.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := configs.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := configs.NewLogger(cfg.Env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}
	db, err := configs.ConnectionDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := configs.SetupDatabase(db); err != nil {
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, log, db, nil
}
