package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the bidding system file",
	Long:  `Loads the bidding system and checks that every bid node names known criteria and conventions.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		system := engine.System()
		fmt.Printf("System %q is valid (%d openings)\n", system.Name, len(system.Openings))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
