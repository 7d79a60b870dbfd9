package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/infra/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assistant HTTP server",
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

			srv, err := server.New(&cfg.Server, app.router, app.orders, log)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Run(ctx)
		},
	}
}
