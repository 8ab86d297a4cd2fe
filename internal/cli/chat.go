package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"peopled/internal/chat"
	"peopled/internal/server"

	"github.com/spf13/cobra"
)

var chatSession string

func init() {
	chatCmd.Flags().StringVar(&chatSession, "session", "", "Session id (default: a fresh one; reuse an id to resume)")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the directory in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, cleanup, err := server.New(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go app.Directory.Watch(ctx)

		sessionID := chatSession
		if sessionID == "" {
			sessionID = chat.NewSessionID()
		}
		fmt.Printf("session: %s\n", sessionID)

		// Replay the transcript so a resumed session picks up
		// where it left off.
		turns, err := app.Chat.History(sessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: replay history: %v\n", err)
		}
		for _, t := range turns {
			fmt.Printf("> %s\n%s\n\n", t.Message, t.Response)
		}

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("> ")
		for scanner.Scan() {
			message := strings.TrimSpace(scanner.Text())
			if message == "exit" || message == "quit" {
				break
			}
			if message != "" {
				response, err := app.Chat.Process(ctx, sessionID, message)
				if err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
				} else {
					fmt.Printf("%s\n\n", response)
				}
			}
			fmt.Print("> ")
		}
		return scanner.Err()
	},
}
