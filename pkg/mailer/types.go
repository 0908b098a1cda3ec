package mailer

import "fmt"

// Email represents a fully-prepared, personalized email ready for sending.
// Optional fields left empty are omitted on the wire, never sent as null.
type Email struct {
	To       string // recipient address (required)
	Subject  string // subject line (required)
	Text     string // plain-text body (required)
	HTML     string // HTML body alternative
	FromName string // display name of the sender
	CC       string // carbon copy address
	BCC      string // blind carbon copy address
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
