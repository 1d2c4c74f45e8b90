package sendgrid

import (
	"encoding/json"
	"fmt"
	"time"
)

// Builder accumulates the fields of a single transactional email and produces
// an immutable Email via Build. Create one builder per logical email; a
// builder is not safe for concurrent use.
type Builder struct {
	opts     options
	apiKey   string
	timeout  time.Duration
	email    mailEnvelope
	consumed bool
}

// New creates a builder with all required fields set. The content type starts
// at the text/plain default, and no CC list or scheduled send time is set.
// Input slices are copied, so the caller may reuse them freely.
//
// An empty toEmails list is accepted here and rejected by Build, keeping
// construction infallible and validation in one place.
func New(apiKey, fromEmail string, toEmails []string, subject, body string, opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Builder{opts: o, apiKey: apiKey}
	b.email.Personalizations[0].To = toAddresses(toEmails)
	b.email.From = emailAddress{Email: fromEmail}
	b.email.Subject = subject
	b.email.Content[0] = contentBlock{Type: string(ContentTypeText), Value: body}
	return b
}

// NewFromConfig creates a builder using the configured API key and sender
// address. A zero RequestTimeout leaves the per-mode defaults in place.
func NewFromConfig(cfg Config, toEmails []string, subject, body string, opts ...Option) *Builder {
	b := New(cfg.APIKey, cfg.SenderEmail, toEmails, subject, body, opts...)
	if cfg.RequestTimeout > 0 {
		b.SetRequestTimeout(cfg.RequestTimeout)
	}
	return b
}

// SetCCEmails sets the carbon-copy recipients. Calling it again replaces the
// previous list rather than appending to it. An empty list clears the CC
// field, which is then omitted from the payload entirely.
func (b *Builder) SetCCEmails(ccEmails []string) *Builder {
	b.email.Personalizations[0].CC = toAddresses(ccEmails)
	return b
}

// SetContentType sets the MIME type of the body. The last value set wins.
func (b *Builder) SetContentType(contentType ContentType) *Builder {
	b.email.Content[0].Type = string(contentType)
	return b
}

// SetSendAt schedules delivery for the given Unix timestamp (seconds).
// The provider queues the email instead of sending it immediately. No check
// is made here that the timestamp lies in the future.
func (b *Builder) SetSendAt(unixSeconds int64) *Builder {
	b.email.SendAt = &unixSeconds
	return b
}

// SetRequestTimeout bounds the HTTP round-trip for this request only, from
// connection start until the response body is read. Without it, Send uses a
// 30 second default and SendAsync is bounded only by its context.
func (b *Builder) SetRequestTimeout(timeout time.Duration) *Builder {
	b.timeout = timeout
	return b
}

// Build validates the required fields, serializes the request body, and
// returns the finalized Email. The first missing field is reported, checked
// in order: from address, recipients, subject, body.
//
// A successful Build consumes the builder; further Build calls return
// ErrBuilderConsumed. Go has no move semantics, so the explicit flag stands in
// for ownership transfer to prevent accidental reuse.
func (b *Builder) Build() (*Email, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if b.email.From.Email == "" {
		return nil, ErrMissingFromEmail
	}
	if len(b.email.Personalizations[0].To) == 0 {
		return nil, ErrNoRecipients
	}
	if b.email.Subject == "" {
		return nil, ErrMissingSubject
	}
	if b.email.Content[0].Value == "" {
		return nil, ErrMissingBody
	}

	payload, err := json.Marshal(b.email)
	if err != nil {
		// Unreachable with this fixed schema, but the encoder contract is
		// fallible and the failure must not be swallowed.
		return nil, fmt.Errorf("sendgrid: marshal request body: %w", err)
	}

	var sendAt *int64
	if b.email.SendAt != nil {
		ts := *b.email.SendAt
		sendAt = &ts
	}

	b.consumed = true
	return &Email{
		apiKey:  b.apiKey,
		payload: payload,
		sendAt:  sendAt,
		timeout: b.timeout,
		opts:    b.opts,
	}, nil
}
