package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wakatimer/internal/database"
)

var (
	runMigrations = database.RunMigrations
	rollbackAll   = database.RollbackAll
)

func migrateCmd() *cobra.Command {
	var dbURL string
	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back the auth_events schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				dbURL = os.Getenv("DATABASE_URL")
			}
			if dbURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}
			switch args[0] {
			case "up":
				if err := runMigrations(dbURL); err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
			case "down":
				if err := rollbackAll(dbURL); err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
			default:
				return fmt.Errorf("unknown direction %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: ok\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&dbURL, "database-url", "", "Postgres URL (default $DATABASE_URL)")
	return cmd
}
