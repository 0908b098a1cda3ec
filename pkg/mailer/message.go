package mailer

import "strings"

// Message is the operator-supplied template for a broadcast. Subject, Text,
// and HTML may contain the placeholder token, replaced per recipient by
// Personalize. The yaml tags allow loading a message from a file in
// non-interactive runs.
type Message struct {
	FromName string `yaml:"from_name"`
	Subject  string `yaml:"subject"`
	Text     string `yaml:"body"`
	HTML     string `yaml:"html_body,omitempty"`
	CC       string `yaml:"cc,omitempty"`
	BCC      string `yaml:"bcc,omitempty"`
}

// Personalize renders the message for one recipient, replacing every
// occurrence of token with the recipient's name in the subject and both
// bodies. Tokens that do not match the configured spelling stay verbatim.
func (m Message) Personalize(token, name, email string) *Email {
	return &Email{
		To:       email,
		Subject:  replaceToken(m.Subject, token, name),
		Text:     replaceToken(m.Text, token, name),
		HTML:     replaceToken(m.HTML, token, name),
		FromName: m.FromName,
		CC:       m.CC,
		BCC:      m.BCC,
	}
}

// Validate checks that the template can produce sendable emails.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Subject) == "" {
		return ErrNoSubject
	}
	if strings.TrimSpace(m.Text) == "" {
		return ErrNoContent
	}
	return nil
}

func replaceToken(s, token, name string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, name)
}
