package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fftwgo"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Verify that a wisdom file imports cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := a.domain.ImportWisdom(path); err != nil {
				return fmt.Errorf("%s: %s: %w", path, fftwgo.KindOf(err), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, a.domain.Precision())
			return nil
		},
	}
}
