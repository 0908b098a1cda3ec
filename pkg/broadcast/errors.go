package broadcast

import "errors"

var (
	// ErrAborted indicates the operator declined a confirmation.
	ErrAborted = errors.New("broadcast aborted by operator")

	// ErrReportWrite indicates the report file cannot be created or written.
	ErrReportWrite = errors.New("failed to write report")
)
