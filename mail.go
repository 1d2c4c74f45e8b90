package sendgrid

// ContentType identifies the MIME type of the email's single content block.
type ContentType string

const (
	// ContentTypeText sends the body as plain text. This is the default.
	ContentTypeText ContentType = "text/plain"

	// ContentTypeHTML sends the body as HTML.
	ContentTypeHTML ContentType = "text/html"
)

// mailEnvelope is the JSON payload for POST /v3/mail/send. Struct field order
// determines the serialized field order, so keep it aligned with the provider
// schema. The provider accepts multiple personalizations and content blocks;
// this client only ever needs one of each, and the fixed-size arrays keep that
// invariant at the type level.
type mailEnvelope struct {
	Personalizations [1]personalization `json:"personalizations"`
	From             emailAddress       `json:"from"`
	Subject          string             `json:"subject"`
	Content          [1]contentBlock    `json:"content"`
	SendAt           *int64             `json:"send_at,omitempty"`
}

// personalization groups the recipients of one send.
type personalization struct {
	To []emailAddress `json:"to"`
	CC []emailAddress `json:"cc,omitempty"`
}

// emailAddress wraps a single address. No format validation happens here;
// malformed addresses surface as provider-side errors.
type emailAddress struct {
	Email string `json:"email"`
}

// contentBlock is one renderable version of the message body.
type contentBlock struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// toAddresses copies a list of plain addresses into wrapped form.
func toAddresses(emails []string) []emailAddress {
	addrs := make([]emailAddress, len(emails))
	for i, email := range emails {
		addrs[i] = emailAddress{Email: email}
	}
	return addrs
}
