package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"imagemap/internal/catalog"
	"imagemap/internal/services"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the configured catalog",
	}
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogLookupCommand(ctx))
	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries with their normalized keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			cat, stats, err := s.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, struct {
					Source  string            `json:"source"`
					Stats   catalog.LoadStats `json:"stats"`
					Entries []catalog.Entry   `json:"entries"`
				}{s.cfg.Catalog.Source, stats, cat.Entries()})
			}

			rows := make([][]string, 0, cat.Len())
			for i, entry := range cat.Entries() {
				key := entry.Key
				if key == "" {
					key = "(empty)"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), entry.OriginalName, key, entry.Target})
			}
			out := cmd.OutOrStdout()
			writeRows(out, []string{"#", "Name", "Key", "File"}, rows, []columnAlignment{alignRight})
			fmt.Fprintf(out, "%d entries (%d rows read, %d skipped)\n", stats.Entries, stats.Rows, stats.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func newCatalogLookupCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Show the entry whose normalized key equals NAME's",
		Long:  "Normalize NAME and print the first catalog entry with that key. Entries sharing a key resolve to the earliest one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			cat, _, err := s.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			key := s.normalizer.Normalize(name)
			entry, ok := cat.Lookup(key)
			if !ok {
				return services.Wrap(services.ErrNotFound, "catalog", "lookup", fmt.Sprintf("no entry with key %q", key), nil)
			}

			if asJSON {
				return writeJSON(cmd, entry)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key: %s\n", entry.Key)
			fmt.Fprintf(out, "%s -> %s\n", entry.OriginalName, entry.Target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the entry as JSON")
	return cmd
}
