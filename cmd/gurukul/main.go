package main

import (
	"os"

	"github.com/spf13/cobra"

	"gurukul/internal/interfaces/cli/migrate"
	"gurukul/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gurukul",
		Short: "Gurukul - course payments and entitlements service",
		Long:  `Gurukul serves the storefront's payment flow, entitlement grants and access evaluation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
