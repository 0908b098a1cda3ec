package broadcast

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// reportRow is the delimited report schema, one row per outcome.
type reportRow struct {
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	Success   bool   `csv:"success"`
	MessageID string `csv:"message_id"`
	Error     string `csv:"error"`
	Timestamp string `csv:"timestamp"`
}

// WriteReport serializes outcomes to a CSV file at path, one data row per
// outcome plus a header row. A failure wraps ErrReportWrite and leaves the
// in-memory outcomes untouched.
func WriteReport(outcomes []Outcome, path string) error {
	rows := make([]reportRow, len(outcomes))
	for i, o := range outcomes {
		rows[i] = reportRow{
			Name:      o.Recipient.Name,
			Email:     o.Recipient.Email,
			Success:   o.Success,
			MessageID: o.MessageID,
			Error:     o.ErrorMessage,
			Timestamp: o.Timestamp.Format(time.RFC3339),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReportWrite, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("%w: %v", ErrReportWrite, err)
	}
	return nil
}
