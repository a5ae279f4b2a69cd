package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/devlog-hub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize devlog configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the content source and generates a .devlog.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
