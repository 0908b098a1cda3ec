package broadcast_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/broadcast/pkg/broadcast"
	"github.com/dmitrymomot/broadcast/pkg/roster"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	outcomes := []broadcast.Outcome{
		{
			Recipient: roster.Recipient{Name: "Ana", Email: "ana@example.com"},
			Success:   true,
			MessageID: "id-1",
			Timestamp: ts,
		},
		{
			Recipient:    roster.Recipient{Name: "Budi", Email: "budi@example.com"},
			ErrorMessage: "mailbox full",
			Timestamp:    ts.Add(time.Second),
		},
	}

	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, broadcast.WriteReport(outcomes, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + one row per outcome

	require.Equal(t, []string{"name", "email", "success", "message_id", "error", "timestamp"}, records[0])
	require.Equal(t, []string{"Ana", "ana@example.com", "true", "id-1", "", "2024-06-01T12:00:00Z"}, records[1])
	require.Equal(t, []string{"Budi", "budi@example.com", "false", "", "mailbox full", "2024-06-01T12:00:01Z"}, records[2])
}

func TestWriteReport_UnwritablePath(t *testing.T) {
	t.Parallel()

	err := broadcast.WriteReport([]broadcast.Outcome{}, filepath.Join(t.TempDir(), "missing", "report.csv"))
	require.ErrorIs(t, err, broadcast.ErrReportWrite)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	outcomes := []broadcast.Outcome{
		{Success: true},
		{Success: false},
		{Success: true},
		{Success: true},
	}

	s := broadcast.Summarize(outcomes)
	require.Equal(t, broadcast.Summary{Total: 4, Sent: 3, Failed: 1}, s)
	require.InDelta(t, 75.0, s.SuccessRate(), 0.001)

	require.Zero(t, broadcast.Summarize(nil).Total)
	require.Zero(t, broadcast.Summary{}.SuccessRate())
}
