package sendgrid

import "errors"

var (
	// ErrMissingFromEmail is returned by Build when the sender address is empty.
	ErrMissingFromEmail = errors.New("sendgrid: missing from email")

	// ErrNoRecipients is returned by Build when the to list contains no addresses.
	ErrNoRecipients = errors.New("sendgrid: email must have at least one recipient")

	// ErrMissingSubject is returned by Build when the subject is empty.
	ErrMissingSubject = errors.New("sendgrid: missing subject")

	// ErrMissingBody is returned by Build when the body is empty.
	ErrMissingBody = errors.New("sendgrid: missing body")

	// ErrBuilderConsumed is returned by Build after the builder already
	// produced an Email. Create a new builder per email instead of reusing one.
	ErrBuilderConsumed = errors.New("sendgrid: builder already consumed")

	// ErrRequestFailed is returned when the HTTP round-trip to the mail-send
	// endpoint fails or returns a non-success status. Match it with errors.Is;
	// use errors.As with *RequestError to read the provider response.
	ErrRequestFailed = errors.New("sendgrid: mail send request failed")
)

// RequestError is returned when the mail-send endpoint responds with a status
// outside the 2xx range. Body holds the provider response text verbatim, which
// is also what Error returns since SendGrid's error bodies are self-describing.
type RequestError struct {
	Body       string
	StatusCode int
}

func (e *RequestError) Error() string { return e.Body }

// Unwrap lets errors.Is(err, ErrRequestFailed) match a *RequestError.
func (e *RequestError) Unwrap() error { return ErrRequestFailed }
