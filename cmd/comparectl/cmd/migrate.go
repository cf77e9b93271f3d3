package cmd

import (
	"compare-audius-be/internal/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		models := model.All()
		if err := db.AutoMigrate(models...); err != nil {
			return err
		}

		color.Green("Migrated %d tables", len(models))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
