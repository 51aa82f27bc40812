package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"imagemap/internal/match"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var explain bool
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "match TEXT...",
		Short: "Resolve a piece of text against the catalog",
		Long: `Join the arguments into one text and resolve it the same way apply resolves
the text around an image. --explain also lists the best fuzzy candidates.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			cat, _, err := s.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			m := s.matcher(cat)
			text := strings.Join(args, " ")
			res := m.Match(text)

			var candidates match.CandidateList
			if explain {
				candidates = m.Rank(text, top)
			}

			if asJSON {
				payload := struct {
					Text       string              `json:"text"`
					Normalized string              `json:"normalized"`
					MinScore   int                 `json:"min_score"`
					Result     match.Result        `json:"result"`
					Candidates match.CandidateList `json:"candidates,omitempty"`
				}{text, m.Normalize(text), m.MinScore(), res, candidates}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Normalized: %s\n", m.Normalize(text))
			if res.Matched() {
				fmt.Fprintf(out, "Match: %s -> %s (%s, score %d)\n", res.Entry.OriginalName, res.Target(), res.Tier, res.Score)
				if res.Ties > 0 {
					fmt.Fprintf(out, "Ties: %d (first catalog entry wins)\n", res.Ties)
				}
			} else {
				fmt.Fprintf(out, "No match (best score %d, need %d)\n", res.Score, m.MinScore())
			}
			if explain {
				rows := make([][]string, 0, len(candidates))
				for _, c := range candidates {
					rows = append(rows, []string{strconv.Itoa(c.Index + 1), c.Entry.OriginalName, c.Entry.Key, strconv.Itoa(c.Score), yesNo(c.Score >= m.MinScore())})
				}
				writeRows(out, []string{"#", "Name", "Key", "Score", "Accepted"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignRight})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "List the top fuzzy candidates")
	cmd.Flags().IntVar(&top, "top", 5, "Number of candidates shown with --explain (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
