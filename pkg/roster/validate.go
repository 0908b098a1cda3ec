package roster

import (
	"regexp"
	"strings"
)

// emailPattern is the syntactic filter applied to every row: local@domain
// with at least one dot in the domain and no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the syntactic filter.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate filters raw rows into recipients. A row survives when its trimmed
// name is non-empty, its email passes the syntactic filter, and the email has
// not been seen earlier in the list. Order is preserved among survivors.
// Bad rows are silently excluded; the second return value counts them.
func Validate(rows []Row) ([]Recipient, int) {
	seen := make(map[string]struct{}, len(rows))
	recipients := make([]Recipient, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		email := strings.TrimSpace(row.Email)
		if name == "" || !ValidEmail(email) {
			dropped++
			continue
		}

		key := strings.ToLower(email)
		if _, dup := seen[key]; dup {
			dropped++
			continue
		}
		seen[key] = struct{}{}

		recipients = append(recipients, Recipient{Name: name, Email: email})
	}

	return recipients, dropped
}
