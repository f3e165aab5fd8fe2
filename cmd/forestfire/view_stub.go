//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newViewCmd(*env) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Watch a single fire spread in a window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the viewer requires building with `-tags ebiten`")
		},
	}
}
