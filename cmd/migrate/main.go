package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"invoicedesk/internal/config"
	"invoicedesk/internal/logger"
)

var sourcePath string

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply or roll back the invoicedesk database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrate(func(m *migrate.Migrate) error {
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration up failed: %w", err)
			}
			log := logger.WithComponent("migrate")
			log.Info().Msg("migrations applied")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrate(func(m *migrate.Migrate) error {
			if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration down failed: %w", err)
			}
			log := logger.WithComponent("migrate")
			log.Info().Msg("migrations reverted")
			return nil
		})
	},
}

var stepsCmd = &cobra.Command{
	Use:     "steps N",
	Short:   "Apply N migrations, or revert them when N is negative",
	Example: "  migrate steps 1\n  migrate steps -- -1",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid steps argument: %w", err)
		}
		return withMigrate(func(m *migrate.Migrate) error {
			if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration steps failed: %w", err)
			}
			log := logger.WithComponent("migrate")
			log.Info().Int("steps", n).Msg("migration steps applied")
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrate(func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "version: none")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %v\n", version, dirty)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourcePath, "path", "db/migrations", "directory holding the migration files")
	rootCmd.AddCommand(upCmd, downCmd, stepsCmd, versionCmd)
}

func withMigrate(fn func(m *migrate.Migrate) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	m, err := migrate.New("file://"+sourcePath, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	return fn(m)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
