package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a questions file for problems",
	Long:  "Parses a local questions file (JSON or CSV) and reports what it contains. With no argument, validates the configured questions file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		path := cfg.LocalPath
		if len(args) == 1 {
			path = args[0]
		}

		loader := &source.Loader{}
		set, err := loader.LoadLocal(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		multi := 0
		for _, qs := range set {
			for _, q := range qs {
				if q.IsMulti {
					multi++
				}
			}
		}

		fmt.Printf("%s: OK\n", path)
		fmt.Printf("  %d questions, %d topics, %d multi-select\n",
			set.Len(), len(set.Topics()), multi)
		return nil
	},
}
