package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant on the terminal",
		Long: "chat reads customer messages from stdin and prints the assistant's " +
			"replies. Type \"exit\" or press Ctrl-D to leave.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := buildAssistant(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(ctx); err != nil {
					log.Error("failed to close vector store", "error", err)
				}
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Shopping assistant ready. Type your question, or \"exit\" to quit.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprint(out, "you> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				fmt.Fprintf(out, "assistant> %s\n\n", app.router.Respond(ctx, line))
				if ctx.Err() != nil {
					return nil
				}
			}
		},
	}
}
