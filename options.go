package sendgrid

import (
	"io"
	"log/slog"
	"net/http"
)

// Option configures the transport side of a builder.
type Option func(*options)

type options struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

func defaultOptions() options {
	return options{
		httpClient: http.DefaultClient,
		baseURL:    mailSendURL,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithHTTPClient sets a custom HTTP client for the send request. This is
// useful for testing with httptest servers or injecting custom transports.
// A client shared across concurrent sends must be safe for concurrent use,
// which *http.Client is. Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithBaseURL overrides the mail-send endpoint. Intended for tests; the
// production endpoint is fixed. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithLogger sets a structured logger for dispatch diagnostics. The default
// logger discards everything, so the library stays silent unless asked.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
