package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"roadtrip-career/internal/config"
	"roadtrip-career/internal/database"
	"roadtrip-career/internal/database/migration"
	dbpostgres "roadtrip-career/internal/database/postgres"
	"roadtrip-career/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *CLI) connect(ctx context.Context) (database.DB, error) {
	cfg, err := config.Load(c.cfgFile)
	if err != nil && !config.IsMissingRequired(err) {
		return nil, err
	}
	if !cfg.Database.Configured() {
		return nil, fmt.Errorf("%w: set DB_HOST, DB_PORT, DB_NAME and DB_USER", dbpostgres.ErrNotConfigured)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return dbpostgres.Connect(connectCtx, cfg.Database)
}

func (c *CLI) migrateCommand() *cobra.Command {
	var (
		dir    string
		status bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := c.logger()
			defer func() { _ = log.Sync() }()

			db, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			runner := migration.Runner{Dir: dir}
			if status {
				return c.printMigrationStatus(cmd, runner, db)
			}

			applied, err := runner.Run(cmd.Context(), db.SQLDB())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			for _, m := range applied {
				log.Info("migration applied", zap.Int64("version", m.Version), zap.String("name", m.Name))
			}
			log.Info("migrations up to date", zap.Int("applied", len(applied)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "list migrations and their state without applying")
	cmd.Flags().StringVar(&dir, "dir", "", "directory holding V<n>__name.sql files (default: migrations next to the binary)")
	return cmd
}

func (c *CLI) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := c.logger()
			defer func() { _ = log.Sync() }()

			db, err := c.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			r := seeder.Runner{Seeders: seeder.Defaults(c.catalog), Logger: log}
			if err := r.Run(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("seed finished", zap.String("demo_email", seeder.DemoEmail))
			return nil
		},
	}
}

func (c *CLI) printMigrationStatus(cmd *cobra.Command, runner migration.Runner, db database.DB) error {
	states, err := runner.Status(cmd.Context(), db.SQLDB())
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}

	t := newTable(cmd.OutOrStdout(), "VERSION", "NAME", "STATE", "APPLIED AT")
	for _, st := range states {
		state, at := "pending", "-"
		if st.Applied {
			state, at = "applied", st.AppliedAt.Format(time.RFC3339)
		}
		t.row(strconv.FormatInt(st.Version, 10), st.Name, state, at)
	}
	return t.flush()
}
