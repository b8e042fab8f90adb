package cmd

import (
	"github.com/AGTechathon/Agriminds/configs"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, _, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()
		log.Info("schema up to date")
		return nil
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin account from ADMIN_EMAIL / ADMIN_PASSWORD",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()
		return configs.SeedAdmin(db, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedAdminCmd)
}
