package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seatwise/auctioneer"
	"github.com/seatwise/auctioneer/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "auctioneer",
	Short: "Auctioneer is a deterministic contract bridge bidding engine",
	Long:  `Auctioneer bids North-South deals against silent opponents, following a YAML bidding system with conventional hand-off sequences.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("system", "s", "kokish.yaml", "Path to the bidding system YAML file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// newLogger builds the application logger from the persistent flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	level := slog.LevelWarn
	switch name {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return logging.New(level)
}

// newEngine loads the configured bidding system.
func newEngine(cmd *cobra.Command) (*auctioneer.Engine, error) {
	path, _ := cmd.Flags().GetString("system")
	return auctioneer.New(path, auctioneer.WithLogger(newLogger(cmd)))
}
