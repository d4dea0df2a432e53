package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the backoffice CLI.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "backoffice",
		Short:         "Logistics back office: shipments, overpacks, manifests and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	root.AddCommand(newServeCommand(&envFile))
	root.AddCommand(newMigrateCommand(&envFile))

	return root
}
