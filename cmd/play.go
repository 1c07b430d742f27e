package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/app"
	"github.com/prepdeck/prepdeck/internal/question"
	"github.com/prepdeck/prepdeck/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz (same as running prepdeck with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp wires the config, cache, and loader together and launches the TUI.
// Question loading itself happens on the loading screen so the UI comes up
// immediately.
func runApp(cmd *cobra.Command) error {
	cfg := resolveConfig(cmd)

	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	return app.Run(app.Options{
		Engine: quiz.NewEngine(question.Set{}),
		Loader: newLoader(cfg, st),
		Config: cfg,
	})
}
