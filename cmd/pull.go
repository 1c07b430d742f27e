package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/source"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch questions from the remote sheet into the offline cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		if cfg.RemoteURL == "" {
			return fmt.Errorf("no remote sheet configured; set PREPDECK_SHEET_URL or pass --sheet-url")
		}

		st := openStore(cfg)
		if st == nil {
			return fmt.Errorf("question cache unavailable; nothing to pull into")
		}
		defer st.Close()

		loader := &source.Loader{}
		set, err := loader.LoadRemote(cmd.Context(), cfg.RemoteURL)
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}

		if err := st.SaveSet(cmd.Context(), set); err != nil {
			return fmt.Errorf("cache questions: %w", err)
		}

		fmt.Printf("Cached %d questions in %d topics.\n", set.Len(), len(set.Topics()))
		return nil
	},
}
