package main

import (
	"github.com/spf13/cobra"
	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(*cobra.Command, []string) error {
		database, err := db.Connect(config.LoadDBConfig(), config.LoadAppConfig(), zlog)
		if err != nil {
			return err
		}
		if err := db.Migrate(database); err != nil {
			return err
		}
		zlog.Info("migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
