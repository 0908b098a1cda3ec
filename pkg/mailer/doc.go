// Package mailer defines the email types and provider contracts used by the
// broadcast pipeline.
//
// The package separates message composition (a Message template personalized
// per recipient) from delivery (via providers implementing Sender), allowing
// the sending gateway to be swapped without changing the broadcast logic.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Message: operator-supplied template with a literal placeholder token
//   - Email: a fully-prepared, personalized message ready for sending
//   - Sender / HealthChecker: interfaces that delivery providers implement
//
// # Usage
//
// Personalize a template and hand the result to a provider:
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/broadcast/pkg/mailer"
//		"github.com/dmitrymomot/broadcast/pkg/mailer/appsscript"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		client := appsscript.New(appsscript.Config{
//			APIURL: "https://script.google.com/macros/s/.../exec",
//			APIKey: "secret",
//		})
//
//		msg := mailer.Message{
//			FromName: "Team",
//			Subject:  "Hello {nama}",
//			Text:     "Hi {nama}, welcome aboard!",
//		}
//
//		email := msg.Personalize("{nama}", "Ana", "ana@example.com")
//		id, err := client.Send(ctx, email)
//		if err != nil {
//			// handle error
//		}
//		_ = id
//	}
//
// # Personalization
//
// Personalization is literal string substitution: every occurrence of the
// placeholder token is replaced with the recipient's name, everything else
// passes through untouched. Tokens that do not match the configured spelling
// stay verbatim. There is no template engine and no failure mode.
//
// # Custom Providers
//
// Implement the Sender interface to target another delivery gateway:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) (string, error) {
//		// Deliver the email, return the provider's message id.
//		return "", nil
//	}
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrNoRecipient: no recipient specified
//   - ErrNoSubject: no subject provided
//   - ErrNoContent: no plain-text body provided
//   - ErrSendFailed: delivery failed (transport or gateway rejection)
//   - ErrUnhealthy: the gateway is unreachable or reports itself unhealthy
//   - ErrBadResponse: the gateway answered with an unrecognizable payload
package mailer
