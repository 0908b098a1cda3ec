package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	PlaceholderToken string `env:"MAILER_PLACEHOLDER_TOKEN" envDefault:"{nama}"`
	FallbackFromName string `env:"MAILER_FALLBACK_FROM_NAME" envDefault:"Broadcast System"`
}
