package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/forge/internal/cli"
	"github.com/example/forge/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "forge",
		Short:   "forge - code scaffolding for drizzle + Next.js projects",
		Version: version.String(),
		Long: `forge generates drizzle schema definitions, server actions, REST
routes, and UI pages into a host Next.js project, following the project's
own layout and database dialect.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.ModelCmd())
	rootCmd.AddCommand(cli.ActionsCmd())
	rootCmd.AddCommand(cli.APICmd())
	rootCmd.AddCommand(cli.ResourceCmd())
	rootCmd.AddCommand(cli.ScaffoldCmd())
	rootCmd.AddCommand(cli.DestroyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
