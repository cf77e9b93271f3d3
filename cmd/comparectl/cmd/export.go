package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/internal/service"
	"compare-audius-be/pkg/admin/dashboard"
	"compare-audius-be/pkg/admin/feature"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export <llms|llms-full|sitemap|robots|xlsx>",
	Short:     "Write a public export to a file or stdout",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"llms", "llms-full", "sitemap", "robots", "xlsx"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "xlsx" && exportOut == "" {
			return fmt.Errorf("xlsx needs --out")
		}

		db, err := openDB()
		if err != nil {
			return err
		}

		log := cliLogger()
		defer log.Sync()
		catalog := service.NewCatalogService(
			unitofwork.NewRepositoryFactory(db),
			log,
			feature.NewManager(),
			dashboard.NewAggregator(log),
		)
		exports := service.NewExportService(catalog, cfg.Site, time.Minute, log)

		data, err := render(cmd.Context(), exports, args[0])
		if err != nil {
			return err
		}

		if exportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return err
		}
		color.Green("Wrote %s (%d bytes)", exportOut, len(data))
		return nil
	},
}

func render(ctx context.Context, exports service.IExportService, kind string) ([]byte, error) {
	switch kind {
	case "llms":
		s, err := exports.LlmsTxt(ctx)
		return []byte(s), err
	case "llms-full":
		s, err := exports.LlmsFullTxt(ctx)
		return []byte(s), err
	case "sitemap":
		return exports.Sitemap(ctx)
	case "robots":
		return []byte(exports.Robots()), nil
	case "xlsx":
		return exports.ComparisonWorkbook(ctx)
	}
	return nil, fmt.Errorf("unknown export %q", kind)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout when empty)")
	rootCmd.AddCommand(exportCmd)
}
