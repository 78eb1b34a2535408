package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "restspec",
	Short: "Fluent HTTP requests from the command line",
	Long: `restspec sends a single HTTP request built from flags and prints
the outcome. It is the CLI face of the restspec request builder library:
headers, query and path parameters, auth and body are accumulated the same
way tests do it.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)
}
