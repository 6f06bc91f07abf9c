package main

import (
	"os"

	"github.com/spf13/cobra"

	"roadtrip/cmd/roadtrip/gateway"
	"roadtrip/cmd/roadtrip/setup"
	"roadtrip/cmd/roadtrip/trip"
	"roadtrip/internal/logger"
)

func main() {
	logger.Init()
	rootCmd := &cobra.Command{
		Use:   "roadtrip",
		Short: "Roadtrip is an emotion-aware trip-planning copilot",
	}

	rootCmd.AddCommand(trip.Cmd)
	rootCmd.AddCommand(gateway.Cmd)
	rootCmd.AddCommand(setup.Cmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
