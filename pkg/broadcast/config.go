package broadcast

import "time"

// Config holds broadcast runner configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Delay is the pause between successive sends, protecting the gateway's
	// rate tolerance. Skipped after the last recipient.
	Delay time.Duration `env:"BROADCAST_SEND_DELAY" envDefault:"1s"`

	// SkipHealthCheck lets a run proceed after a failed pre-flight check.
	SkipHealthCheck bool `env:"BROADCAST_SKIP_HEALTH_CHECK" envDefault:"false"`

	// DefaultReportPath is offered when the operator saves the report
	// without naming a file.
	DefaultReportPath string `env:"BROADCAST_REPORT_PATH" envDefault:"broadcast_results.csv"`
}
