package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/devlog-hub/internal/modules"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <module>",
	Short: "Fetch one module's markdown and print it to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mod := modules.Resolve(args[0])
		if verbose && !modules.Known(mod.ID) {
			fmt.Fprintf(os.Stderr, "unknown module %q, trying it verbatim\n", mod.ID)
		}

		state := newFetcher(cfg).Load(cmd.Context(), mod)
		if !state.Ready() {
			return errors.New(state.Err)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "source: %s\n", state.Bundle.SourceURL)
			fmt.Fprintf(os.Stderr, "pdf:    %s\n", state.Bundle.CompanionURL)
		}
		fmt.Print(state.Bundle.Markdown)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
