package cmd

import (
	"fmt"
	"os"

	"compare-audius-be/internal/config"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/pkg/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "comparectl",
	Short: "Maintenance tasks for the comparison catalog",
	Long: `comparectl migrates the catalog schema, loads seed fixtures and writes
exports without starting the HTTP server.

Database settings come from the same environment as the server
(DB_DRIVER, DB_CONNECTION_STRING, optionally via .env).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log SQL statements")
}

func openDB() (*gorm.DB, error) {
	if cfg.Database.Connection == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
	}
	gcfg := database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	}
	if verbose {
		gcfg.LogLevel = gormlogger.Info
	}
	return database.NewGormDB(gcfg)
}

// cliLogger is silent unless --verbose, so stdout carries only command output
func cliLogger() *logger.ZapLogger {
	if verbose {
		return logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	}
	return logger.NewNopLogger()
}
