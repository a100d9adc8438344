package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/narekn7/yerevan-pricing/internal/config"
	"github.com/narekn7/yerevan-pricing/internal/database"
	"github.com/narekn7/yerevan-pricing/internal/etl"
	"github.com/narekn7/yerevan-pricing/pkg/logger"
)

var loadDataDir string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Seed the database from the CSV snapshots",
	Long: `Loads every dimension and fact table from the CSV snapshots.
Inserts use conflict-skip semantics, so re-running against a populated
database leaves existing rows untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad()
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadDataDir, "data-dir", "", "Directory with the CSV snapshots (default: DATA_DIR)")
	rootCmd.AddCommand(loadCmd)
}

func runLoad() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	dataDir := cfg.Model.DataDir
	if loadDataDir != "" {
		dataDir = loadDataDir
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.Database.ConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.ApplySchema(ctx, pool); err != nil {
		return err
	}

	log.Info("loading snapshots", "data_dir", dataDir)

	loader := etl.NewLoader(pool, dataDir, log)
	if err := loader.LoadAll(ctx); err != nil {
		return err
	}

	log.Info("load complete")
	return nil
}
