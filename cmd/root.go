package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "Viewer and tooling for branch-per-module dev-log tutorials",
	Long: `Devlog Hub serves long-form tutorial modules (SQL, DSA, networking,
React, ...) that live as "DEV LOGS" markdown documents on per-module
branches of a remote repository. It renders them as themed HTML, links
the companion PDFs, and can export snapshots or expose the catalog to
AI agents over MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".devlog.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
