// Package render prints dashboard snapshots as terminal tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"swifttrack-dashboard/internal/view"
	"swifttrack-dashboard/pkg/utils"

	"github.com/olekukonko/tablewriter"
)

// MaxCellWidth bounds free-text cells such as addresses.
const MaxCellWidth = 40

// Snapshot writes the stat cards of every list followed by the active
// list's table.
func Snapshot(w io.Writer, snap view.Snapshot) error {
	title := "SwiftTrack: " + snap.View
	if snap.ActiveTab != "" {
		title += " / " + snap.ActiveTab
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	if len(snap.Tabs) > 0 {
		fmt.Fprintf(w, "Tabs: %s\n", strings.Join(snap.Tabs, ", "))
	}
	if snap.Error != "" {
		fmt.Fprintf(w, "Last refresh failed: %s\n", utils.SanitizeCell(snap.Error))
	}
	fmt.Fprintln(w)

	for _, s := range snap.Summaries {
		if err := Summary(w, s); err != nil {
			return err
		}
	}

	filter := describeFilter(snap)
	if filter != "" {
		fmt.Fprintln(w, filter)
	}
	if err := Table(w, snap.Table); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d record(s)\n", len(snap.Table.Rows))
	return err
}

// Summary writes one list's counts as a single-row table.
func Summary(w io.Writer, s view.Summary) error {
	headers := []string{"List", "Total"}
	row := []string{s.List, strconv.Itoa(s.Total)}
	if !s.Loaded {
		row[1] = "-"
	}
	for _, c := range s.Categories {
		headers = append(headers, c.Name)
		row = append(row, strconv.Itoa(c.Count))
	}
	if s.Other > 0 {
		headers = append(headers, view.OtherCategory)
		row = append(row, strconv.Itoa(s.Other))
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	if err := table.Append(row); err != nil {
		return err
	}
	return table.Render()
}

// Table writes rows with every cell sanitized for the terminal.
func Table(w io.Writer, t view.Table) error {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = make([]string, len(r))
		for j, cell := range r {
			rows[i][j] = utils.Truncate(utils.SanitizeCell(cell), MaxCellWidth)
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header(t.Headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func describeFilter(snap view.Snapshot) string {
	var parts []string
	if snap.Category != "" {
		parts = append(parts, "category="+snap.Category)
	}
	if snap.Search != "" {
		parts = append(parts, "search="+strconv.Quote(snap.Search))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Filter: " + strings.Join(parts, " ")
}
