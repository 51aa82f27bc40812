package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize TEXT...",
		Short: "Print the normalized matching key of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if len(args) == 1 {
					fmt.Fprintln(out, s.normalizer.Normalize(arg))
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", arg, s.normalizer.Normalize(arg))
			}
			return nil
		},
	}
}
