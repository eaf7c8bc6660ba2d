// Command thesisdesk is the admin CLI for the capstone thesis backend.
// It signs in against the HTTP API, caches entity collections locally,
// and exposes the management operations (listing, import, toggling,
// moderation) as subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagServer  string
	flagConfig  string
	flagVerbose bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:           "thesisdesk",
	Short:         "Admin client for the capstone thesis backend",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "base URL of the backend API")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
