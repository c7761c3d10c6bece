package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Urgush/jellyork/internal/fixture"
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture <dir>",
	Short: "Write a sample library for demos and testing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fixture.Generate(args[0]); err != nil {
			return fmt.Errorf("generate fixture library: %w", err)
		}
		fmt.Printf("Sample library created: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixtureCmd)
}
