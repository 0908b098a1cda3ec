package appsscript

import "time"

// Config holds Apps Script gateway configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIURL        string        `env:"APPS_SCRIPT_API_URL,required"`
	APIKey        string        `env:"APPS_SCRIPT_API_KEY,required"`
	SendTimeout   time.Duration `env:"APPS_SCRIPT_SEND_TIMEOUT" envDefault:"30s"`
	HealthTimeout time.Duration `env:"APPS_SCRIPT_HEALTH_TIMEOUT" envDefault:"10s"`
}
