package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aditya27268/Ecommerce-Assistant/pkg/config"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

// RootCmd builds the shopassist command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopassist",
		Short: "E-commerce customer support assistant",
		Long: "shopassist answers customer questions about orders, returns, refunds and " +
			"payments with a rule-based intent router, falling back to retrieval-augmented " +
			"generation over the store knowledge base.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(chatCmd())
	return cmd
}

// setup loads configuration from the environment and installs the process
// logger. Shared by every subcommand.
func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.LogLevel(cfg.Log.Level)
	logCfg.JSON = cfg.Log.JSON
	logger.Init(logCfg)
	log := logger.NewLogger(logCfg)
	return cfg, log, nil
}
