package cmd

import (
	"fmt"
	"io"

	"backoffice/internal/adapters/out/postgres"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCommand(envFile *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cmd.Context(), *envFile)
			if err != nil {
				return err
			}

			db, err := OpenDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			return migrate(cmd.OutOrStdout(), db, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only report which tables exist")

	return cmd
}

// migrate prints one line per table, marking tables that are about to be created.
func migrate(out io.Writer, db *gorm.DB, dryRun bool) error {
	tables, err := postgres.TableNames(db)
	if err != nil {
		return err
	}

	for _, table := range tables {
		_, _ = fmt.Fprintf(out, "  %s %s\n", tableStatus(db.Migrator().HasTable(table)), table)
	}

	if dryRun {
		return nil
	}

	if err = postgres.Migrate(db); err != nil {
		_, _ = fmt.Fprintln(out, color.New(color.FgRed).Sprint("Migration failed"))
		return err
	}
	_, _ = fmt.Fprintln(out, color.New(color.FgGreen).Sprint("Schema is up to date"))
	return nil
}

func tableStatus(exists bool) string {
	if exists {
		return color.New(color.FgBlue).Sprint("EXISTS")
	}
	return color.New(color.FgGreen).Sprint("CREATE")
}
