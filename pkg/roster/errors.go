package roster

import "errors"

var (
	// ErrOpenFile indicates the recipient file cannot be opened or parsed.
	ErrOpenFile = errors.New("failed to open recipient file")

	// ErrNoRows indicates the recipient file has no data rows.
	ErrNoRows = errors.New("recipient file has no rows")

	// ErrMissingColumns indicates the name or email column is missing.
	ErrMissingColumns = errors.New("recipient file is missing required columns")

	// ErrNoValidRecipients indicates no rows survived validation.
	ErrNoValidRecipients = errors.New("no valid recipients")

	// ErrUnknownKind indicates an unsupported recipient file kind.
	ErrUnknownKind = errors.New("unknown recipient file kind")
)
