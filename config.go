package sendgrid

import "time"

// Config holds SendGrid client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey         string        `env:"SENDGRID_API_KEY,required"`
	SenderEmail    string        `env:"SENDGRID_FROM_EMAIL"`
	RequestTimeout time.Duration `env:"SENDGRID_REQUEST_TIMEOUT" envDefault:"0"`
}
