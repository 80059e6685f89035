package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderSummary prints the totals and, when any name missed, a plain list of
// the names that need review in input order.
func RenderSummary(w io.Writer, s Summary) error {
	if err := renderTotals(w, s); err != nil {
		return err
	}
	if len(s.Review) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nNeeds review:"); err != nil {
		return err
	}
	for _, item := range s.Review {
		if _, err := fmt.Fprintf(w, "- %s: %s\n", item.Query, item.Reason); err != nil {
			return err
		}
	}
	return nil
}

// RenderReviewTable prints the totals followed by the review list as a table.
func RenderReviewTable(w io.Writer, s Summary) error {
	if err := renderTotals(w, s); err != nil {
		return err
	}
	if len(s.Review) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(s.Review))
	for _, item := range s.Review {
		rows = append(rows, []string{strconv.Itoa(item.Position), item.Query, item.Reason})
	}
	_, err := fmt.Fprintf(w, "\nNeeds review:\n%s\n", renderTable(
		[]string{"#", "Query", "Reason"},
		rows,
		[]text.Align{text.AlignRight, text.AlignLeft, text.AlignLeft},
	))
	return err
}

func renderTotals(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "Wrote %d MBIDs to %s\n", len(s.Matches), s.PrimaryPath); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Wrote debug map to %s\n", s.DetailPath)
	return err
}

func renderTable(headers []string, rows [][]string, aligns []text.Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
