package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List loaded topics and their question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)

		st := openStore(cfg)
		if st != nil {
			defer st.Close()
		}

		res, err := newLoader(cfg, st).Load(cmd.Context())
		if err != nil {
			return err
		}
		if res.Notice != "" {
			fmt.Println("note:", res.Notice)
		}

		for _, topic := range res.Set.Topics() {
			marker := " "
			if quiz.IsMockTopic(topic) {
				marker = "*"
			}
			fmt.Printf("%s %-32s %d\n", marker, topic, len(res.Set[topic]))
		}
		fmt.Printf("\n%d questions in %d topics (* = mock exam pool)\n",
			res.Set.Len(), len(res.Set.Topics()))
		return nil
	},
}
