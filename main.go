package main

import (
	"os"

	"github.com/Aditya27268/Ecommerce-Assistant/cli"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		logger.NewLogger(nil).Error("command failed", "error", err)
		os.Exit(1)
	}
}
