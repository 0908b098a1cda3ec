package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no plain-text body was provided.
	ErrNoContent = errors.New("email must have a plain-text body")

	// ErrSendFailed indicates email delivery failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrUnhealthy indicates the gateway is unreachable or reports itself unhealthy.
	ErrUnhealthy = errors.New("gateway is not healthy")

	// ErrBadResponse indicates the gateway answered with a payload that does
	// not follow the success/error envelope.
	ErrBadResponse = errors.New("unrecognizable gateway response")
)
