package sendgrid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// mailSendURL is the only endpoint this client talks to.
const mailSendURL = "https://api.sendgrid.com/v3/mail/send"

// defaultSendTimeout bounds blocking sends when no request timeout was set.
const defaultSendTimeout = 30 * time.Second

// Email is a built, validated mail-send request bound to an API key. Its wire
// shape is fixed at Build time and no mutation is exposed. Each Send or
// SendAsync call dispatches exactly one HTTP request; calling either again
// dispatches a duplicate provider-side request.
type Email struct {
	opts    options
	apiKey  string
	payload []byte
	sendAt  *int64
	timeout time.Duration
}

// Result carries the outcome of an asynchronous send.
type Result struct {
	Message string
	Err     error
}

// Payload returns a copy of the serialized JSON request body.
func (e *Email) Payload() []byte {
	return bytes.Clone(e.payload)
}

// Send dispatches the email and blocks until the provider responds. On
// success it returns a human-readable outcome: a "scheduled" message when the
// email's send time lies in the future at call time, a plain "sent" message
// otherwise. Without an explicit request timeout, a 30 second default applies
// on top of any deadline already carried by ctx.
func (e *Email) Send(ctx context.Context) (string, error) {
	return e.send(ctx, defaultSendTimeout)
}

// SendAsync dispatches the email on its own goroutine and delivers the
// outcome on the returned buffered channel. The logic is identical to Send;
// only the suspension differs. No default timeout applies, so bound or cancel
// the call through ctx.
func (e *Email) SendAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		msg, err := e.send(ctx, 0)
		out <- Result{Message: msg, Err: err}
	}()
	return out
}

func (e *Email) send(ctx context.Context, fallbackTimeout time.Duration) (string, error) {
	timeout := e.timeout
	if timeout == 0 {
		timeout = fallbackTimeout
	}
	if timeout > 0 {
		// Applied per request via the context so a shared injected client
		// stays untouched and safe for concurrent use.
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.opts.baseURL, bytes.NewReader(e.payload))
	if err != nil {
		return "", fmt.Errorf("sendgrid: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	e.opts.log.DebugContext(ctx, "sending email", slog.Int("payload_bytes", len(e.payload)))

	resp, err := e.opts.httpClient.Do(req)
	if err != nil {
		e.opts.log.ErrorContext(ctx, "mail send request failed", slog.Any("error", err))
		return "", errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body := "Error getting response text"
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			body = string(raw)
		}
		e.opts.log.ErrorContext(ctx, "mail send rejected", slog.Int("status", resp.StatusCode))
		return "", &RequestError{StatusCode: resp.StatusCode, Body: body}
	}

	return e.outcome(time.Now()), nil
}

// outcome decides the success message at call time, not build time: the same
// Email can report "scheduled" now and "sent" after the timestamp passes.
func (e *Email) outcome(now time.Time) string {
	if e.sendAt != nil && now.Unix() < *e.sendAt {
		return fmt.Sprintf("Email successfully scheduled to be sent at %d.", *e.sendAt)
	}
	return "Email successfully sent."
}
