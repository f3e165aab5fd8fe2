package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forestfire/internal/seed"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the tree seeding strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range seed.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
