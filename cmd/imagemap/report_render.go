package main

import (
	"fmt"
	"io"
	"strconv"

	"imagemap/internal/mapper"
)

const reportTextWidth = 48

func renderReport(w io.Writer, report *mapper.Report) {
	if report == nil {
		return
	}
	headers := []string{"#", "Element", "Status", "Tier", "Score", "Name", "Target", "Text"}
	rows := make([][]string, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		score := ""
		if o.Score > 0 {
			score = strconv.Itoa(o.Score)
		}
		target := o.Target
		if target == "" {
			target = o.Reference
		}
		rows = append(rows, []string{
			strconv.Itoa(o.Index + 1),
			o.Element,
			string(o.Status),
			o.Tier.String(),
			score,
			o.Name,
			target,
			truncateCell(o.Text, reportTextWidth),
		})
	}
	writeRows(w, headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight})
	fmt.Fprintln(w, summaryLine(report))
}

func summaryLine(report *mapper.Report) string {
	c := report.Counts
	verb := "updated"
	n := c.Updated
	if report.DryRun {
		verb = "would update"
		n = c.Matched
	}
	return fmt.Sprintf("%d of %d elements %s (%d no match, %d ineligible, %d without text, %d failed)",
		n, c.Elements, verb, c.NoMatch, c.Ineligible, c.EmptyText, c.Failed)
}
