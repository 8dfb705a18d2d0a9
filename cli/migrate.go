package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telartis/picqer-ontime/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the audit log table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cfg.Database.Enabled() {
				return errors.New("DB_HOST is not set, the audit database is disabled")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "🚀 Running audit database migrations...")
			db, err := database.InitDB(cfg.Database)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "✅ Migration completed successfully!")
			return nil
		},
	}
}
