package cmd

import (
	"compare-audius-be/internal/model"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	seedFile    string
	seedMigrate bool
	seedCheck   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with a YAML fixture",
	Long: `Load platforms, features and comparisons from a YAML fixture.

Existing catalog rows are deleted first and every seeded record is
published. The fixture is validated before anything is written.

Examples:
  comparectl seed
  comparectl seed --file data/seed.yaml --migrate
  comparectl seed --check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}
		if err := fixture.Validate(); err != nil {
			return err
		}
		if seedCheck {
			color.Green("%s is valid", seedFile)
			return nil
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		if seedMigrate {
			if err := db.AutoMigrate(model.All()...); err != nil {
				return err
			}
		}

		color.Yellow("Seeding from %s...", seedFile)
		summary, err := seed.Apply(cmd.Context(), unitofwork.NewRepositoryFactory(db), fixture)
		if err != nil {
			return err
		}

		color.Green("  inserted %d platforms", summary.Platforms)
		color.Green("  inserted %d features", summary.Features)
		color.Green("  inserted %d comparisons", summary.Comparisons)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "data/seed.yaml", "fixture path")
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "run migrations before seeding")
	seedCmd.Flags().BoolVar(&seedCheck, "check", false, "validate the fixture without touching the database")
	rootCmd.AddCommand(seedCmd)
}
