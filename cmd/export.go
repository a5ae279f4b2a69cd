package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/devlog-hub/internal/export"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [pattern]",
	Short: "Download matching modules to a local snapshot directory",
	Long:  `Fetches every known module whose identifier matches the glob pattern (all of them when omitted) and writes the markdown files plus a manifest.json to the export directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		dir := cfg.ExportDir
		if exportDir != "" {
			dir = exportDir
		}

		manifest, err := export.Run(cmd.Context(), newFetcher(cfg), export.Options{
			Dir:     dir,
			Pattern: pattern,
		}, export.NewReporter())
		if err != nil {
			return err
		}

		ok, degraded, failed := 0, 0, 0
		for _, e := range manifest.Entries {
			switch e.Status {
			case export.StatusOK:
				ok++
			case export.StatusPlaceholder:
				degraded++
			default:
				failed++
			}
		}
		fmt.Printf("Exported %d modules to %s (%d ok, %d placeholder, %d failed)\n",
			len(manifest.Entries), dir, ok, degraded, failed)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "override the configured export directory")
	rootCmd.AddCommand(exportCmd)
}
