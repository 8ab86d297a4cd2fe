package cli

import (
	"fmt"

	"peopled/internal/history"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "Print the transcript of a chat session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.New(history.Config{DBPath: cfg.HistoryDB})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		turns, err := store.History(args[0])
		if err != nil {
			return err
		}
		if len(turns) == 0 {
			fmt.Printf("no turns recorded for session %s\n", args[0])
			return nil
		}

		for _, t := range turns {
			fmt.Printf("[%s] > %s\n%s\n\n", t.Timestamp, t.Message, t.Response)
		}
		return nil
	},
}
