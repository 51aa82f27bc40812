package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imagemap/internal/config"
	"imagemap/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [PAGE]",
		Short: "Check that the catalog, page and log directory are usable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var plan preflight.Plan
			if len(args) == 1 {
				pagePath, err := config.ExpandPath(strings.TrimSpace(args[0]))
				if err != nil {
					return fmt.Errorf("resolve page path: %w", err)
				}
				plan = preflight.Plan{PagePath: pagePath, OutputPath: pagePath}
			}

			results := preflight.RunAll(cmd.Context(), cfg, plan)
			if asJSON {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					status := "ok"
					if !r.Passed {
						status = "FAIL"
					}
					rows = append(rows, []string{r.Name, status, r.Detail})
				}
				out := cmd.OutOrStdout()
				writeRows(out, []string{"Check", "Status", "Detail"}, rows, nil)
				fmt.Fprintln(out, preflight.Summary(results))
			}
			return preflight.FirstFailure(results)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}
