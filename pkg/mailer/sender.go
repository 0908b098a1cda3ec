package mailer

import "context"

// Sender defines the minimal interface that delivery providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// The Email must have To, Subject, and Text already set.
	// Returns the provider-assigned message id, or an error if delivery fails.
	Send(ctx context.Context, email *Email) (string, error)
}

// HealthChecker reports whether the delivery gateway is operational.
// Providers that support a pre-flight check implement it alongside Sender.
type HealthChecker interface {
	// CheckHealth probes the gateway and returns its self-reported state.
	// An unreachable or unhealthy gateway yields an error wrapping ErrUnhealthy.
	CheckHealth(ctx context.Context) (*Health, error)
}
