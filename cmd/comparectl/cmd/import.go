package cmd

import (
	"os"

	"compare-audius-be/internal/model"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	importOut     string
	importApply   bool
	importMigrate bool
)

var importCmd = &cobra.Command{
	Use:   "import <csv-dir>",
	Short: "Convert the legacy CSV export into a seed fixture",
	Long: `Read the Platforms, Features and Comparisons CSV files exported from the
old CMS and turn them into a YAML fixture that "comparectl seed" accepts.

The fixture is validated before it is written. With --apply it is also
seeded straight into the database.

Examples:
  comparectl import webflow-csv-data --out data/seed.yaml
  comparectl import webflow-csv-data --apply --migrate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := seed.FromCSVDir(args[0])
		if err != nil {
			return err
		}
		if err := fixture.Validate(); err != nil {
			return err
		}

		if importOut == "" && !importApply {
			return fixture.Write(cmd.OutOrStdout())
		}
		if importOut != "" {
			file, err := os.Create(importOut)
			if err != nil {
				return err
			}
			if err := fixture.Write(file); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			color.Green("Wrote %s", importOut)
		}
		if !importApply {
			return nil
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		if importMigrate {
			if err := db.AutoMigrate(model.All()...); err != nil {
				return err
			}
		}

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
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "write the fixture here instead of stdout")
	importCmd.Flags().BoolVar(&importApply, "apply", false, "seed the converted fixture into the database")
	importCmd.Flags().BoolVar(&importMigrate, "migrate", false, "run migrations before applying")
	rootCmd.AddCommand(importCmd)
}
