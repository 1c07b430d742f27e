package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/source"
	"github.com/prepdeck/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Terminal quiz trainer",
	Long:  "Prepdeck — a terminal quiz app for topic practice, timed tests, and mock exams, fed from a published spreadsheet or a local questions file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to a local questions file (overrides PREPDECK_QUESTIONS)")
	rootCmd.PersistentFlags().String("sheet-url", "", "Published spreadsheet export URL (overrides PREPDECK_SHEET_URL)")
	rootCmd.PersistentFlags().String("db", "", "Path to the question cache database (overrides PREPDECK_DB)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveConfig loads the environment config and layers flag overrides on top.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		cfg.LocalPath = p
	}
	if u, _ := cmd.Flags().GetString("sheet-url"); u != "" {
		cfg.RemoteURL = u
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg
}

// openStore opens the question cache. A cache failure is reported but never
// fatal; the loader simply runs without offline support.
func openStore(cfg config.Config) *store.Store {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "question cache unavailable:", err)
			return nil
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		fmt.Fprintln(os.Stderr, "question cache unavailable:", err)
		return nil
	}

	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "question cache unavailable:", err)
		return nil
	}
	return st
}

// newLoader builds the question loader over the resolved config. The store
// may be nil, which disables caching.
func newLoader(cfg config.Config, st *store.Store) *source.Loader {
	l := &source.Loader{
		RemoteURL: cfg.RemoteURL,
		LocalPath: cfg.LocalPath,
	}
	if st != nil {
		l.Cache = st
	}
	return l
}
