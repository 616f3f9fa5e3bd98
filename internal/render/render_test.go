package render

import (
	"bytes"
	"testing"

	"swifttrack-dashboard/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPrintsCardsAndRows(t *testing.T) {
	snap := view.Snapshot{
		View:      "driver",
		Tabs:      []string{"active", "pending", "completed"},
		ActiveTab: "pending",
		Summaries: []view.Summary{{
			List:       "deliveries",
			Loaded:     true,
			Total:      2,
			Categories: []view.Count{{Name: "Pending", Count: 1}, {Name: "Completed", Count: 1}},
		}},
		List:     "deliveries",
		Category: "Pending",
		Table: view.Table{
			Headers: []string{"Delivery ID", "Status"},
			Rows:    [][]string{{"DL1", "Pending"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Snapshot(&buf, snap))

	out := buf.String()
	assert.Contains(t, out, "SwiftTrack: driver / pending")
	assert.Contains(t, out, "Tabs: active, pending, completed")
	assert.Contains(t, out, "DL1")
	assert.Contains(t, out, "Filter: category=Pending")
	assert.Contains(t, out, "1 record(s)")
}

func TestTableSanitizesCells(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, view.Table{
		Headers: []string{"Address"},
		Rows:    [][]string{{"12 Main St\nFloor 3\x1b[31m"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "12 Main St Floor 3")
	assert.NotContains(t, out, "\x1b")
}

func TestSummaryShowsUnloadedList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, view.Summary{List: "vehicles"}))
	assert.Contains(t, buf.String(), "vehicles")
}
