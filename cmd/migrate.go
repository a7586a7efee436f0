package cmd

import (
	"database/sql"

	"news-forum-api/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSQLDB(migrations.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSQLDB(migrations.Down)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	RootCmd.AddCommand(migrateCmd)
}

func withSQLDB(fn func(*sql.DB, *zap.Logger) error) error {
	_, logger, db, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return fn(sqlDB, logger)
}
