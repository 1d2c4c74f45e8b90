// Package sendgrid is a thin, typed client for the SendGrid v3 mail-send API.
//
// The package covers exactly one operation: assemble a transactional email
// (sender, recipients, subject, body, optional CC list, content type, and
// scheduled send time), serialize it into the provider's JSON envelope, and
// issue a single bearer-authenticated POST. There is no retry, rate limiting,
// attachment, or template engine support.
//
// # Usage
//
// Build and send an email:
//
//	email, err := sendgrid.New(
//		os.Getenv("SENDGRID_API_KEY"),
//		"from@example.com",
//		[]string{"to@example.com"},
//		"subject of email",
//		"body of email",
//	).
//		SetCCEmails([]string{"cc@example.com"}).
//		SetContentType(sendgrid.ContentTypeHTML).
//		SetSendAt(time.Now().Add(time.Hour).Unix()).
//		Build()
//	if err != nil {
//		// handle validation error
//	}
//
//	msg, err := email.Send(ctx)
//	if err != nil {
//		// handle send error
//	}
//	fmt.Println(msg) // "Email successfully scheduled to be sent at <ts>."
//
// # Builder Lifecycle
//
// A builder constructs one email. Build validates the required fields (from
// address, at least one recipient, subject, body), fixes the wire shape, and
// consumes the builder; reusing a consumed builder returns ErrBuilderConsumed.
// The resulting Email is immutable and safe to send from any goroutine,
// though every Send call dispatches its own provider-side request.
//
// # Blocking and Asynchronous Sends
//
// Send blocks the calling goroutine until the provider responds, with a 30
// second default timeout unless SetRequestTimeout was called. SendAsync runs
// the identical request on its own goroutine and delivers a Result on a
// buffered channel, bounded only by the caller's context:
//
//	res := <-email.SendAsync(ctx)
//	if res.Err != nil {
//		// handle send error
//	}
//
// # Scheduled Sends
//
// SetSendAt instructs the provider to queue the email for later delivery.
// Whether a successful send reports "scheduled" or "sent" is decided against
// the wall clock at call time, so the same Email can report either depending
// on when it is dispatched. The timestamp only changes the returned message,
// never the payload.
//
// # Configuration
//
// Config carries env-tagged settings for environment-based setup and pairs
// with NewFromConfig:
//
//	var cfg sendgrid.Config
//	if err := env.Parse(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	builder := sendgrid.NewFromConfig(cfg, []string{"to@example.com"}, "subject", "body")
//
// # Testing
//
// Use WithBaseURL and WithHTTPClient to point the client at an httptest
// server:
//
//	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		w.WriteHeader(http.StatusAccepted)
//	}))
//	defer ts.Close()
//
//	builder := sendgrid.New(key, from, to, subject, body,
//		sendgrid.WithBaseURL(ts.URL),
//		sendgrid.WithHTTPClient(ts.Client()),
//	)
//
// # Error Handling
//
// The package provides sentinel errors for specific failure modes:
//
//   - ErrMissingFromEmail: Build called without a sender address
//   - ErrNoRecipients: Build called with an empty to list
//   - ErrMissingSubject: Build called without a subject
//   - ErrMissingBody: Build called without a body
//   - ErrBuilderConsumed: Build called on an already-consumed builder
//   - ErrRequestFailed: the HTTP round-trip failed or returned non-2xx
//
// Non-2xx responses carry the provider's response text via *RequestError:
//
//	var reqErr *sendgrid.RequestError
//	if errors.As(err, &reqErr) {
//		log.Printf("status %d: %s", reqErr.StatusCode, reqErr.Body)
//	}
package sendgrid
