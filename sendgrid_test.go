package sendgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "S", "B")

	require.Equal(t, "a@x.com", b.email.From.Email)
	require.Equal(t, []emailAddress{{Email: "b@x.com"}}, b.email.Personalizations[0].To)
	require.Nil(t, b.email.Personalizations[0].CC)
	require.Equal(t, "S", b.email.Subject)
	require.Equal(t, contentBlock{Type: "text/plain", Value: "B"}, b.email.Content[0])
	require.Nil(t, b.email.SendAt)
	require.Zero(t, b.timeout)
}

func TestBuild_PayloadShape(t *testing.T) {
	t.Parallel()

	email, err := New("K", "a@x.com", []string{"b@x.com"}, "S", "B").Build()

	require.NoError(t, err)
	// Field order is part of the wire contract, so compare bytes, not JSON trees.
	require.Equal(t,
		`{"personalizations":[{"to":[{"email":"b@x.com"}]}],"from":{"email":"a@x.com"},"subject":"S","content":[{"type":"text/plain","value":"B"}]}`,
		string(email.Payload()),
	)
}

func TestBuild_PayloadWithCC(t *testing.T) {
	t.Parallel()

	email, err := New("K", "a@x.com", []string{"b@x.com"}, "S", "B").
		SetCCEmails([]string{"c1@x.com", "c2@x.com"}).
		Build()

	require.NoError(t, err)
	require.Equal(t,
		`{"personalizations":[{"to":[{"email":"b@x.com"}],"cc":[{"email":"c1@x.com"},{"email":"c2@x.com"}]}],"from":{"email":"a@x.com"},"subject":"S","content":[{"type":"text/plain","value":"B"}]}`,
		string(email.Payload()),
	)
}

func TestBuild_PayloadWithSendAt(t *testing.T) {
	t.Parallel()

	email, err := New("K", "a@x.com", []string{"b@x.com"}, "S", "B").
		SetSendAt(1668271500).
		Build()

	require.NoError(t, err)
	require.Equal(t,
		`{"personalizations":[{"to":[{"email":"b@x.com"}]}],"from":{"email":"a@x.com"},"subject":"S","content":[{"type":"text/plain","value":"B"}],"send_at":1668271500}`,
		string(email.Payload()),
	)
}

func TestBuild_OmitsUnsetOptionalFields(t *testing.T) {
	t.Parallel()

	email, err := New("K", "a@x.com", []string{"b@x.com"}, "S", "B").Build()

	require.NoError(t, err)
	payload := string(email.Payload())
	require.NotContains(t, payload, `"cc"`)
	require.NotContains(t, payload, `"send_at"`)
	require.NotContains(t, payload, "null")
}

func TestBuild_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *Builder
		wantErr error
	}{
		{
			name:    "missing from",
			builder: New("K", "", []string{"b@x.com"}, "S", "B"),
			wantErr: ErrMissingFromEmail,
		},
		{
			name:    "empty to list",
			builder: New("K", "a@x.com", nil, "S", "B"),
			wantErr: ErrNoRecipients,
		},
		{
			name:    "missing subject",
			builder: New("K", "a@x.com", []string{"b@x.com"}, "", "B"),
			wantErr: ErrMissingSubject,
		},
		{
			name:    "missing body",
			builder: New("K", "a@x.com", []string{"b@x.com"}, "S", ""),
			wantErr: ErrMissingBody,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email, err := tt.builder.Build()

			require.Nil(t, email)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_ConsumesBuilder(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "S", "B")

	first, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := b.Build()
	require.Nil(t, second)
	require.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestBuild_FailedValidationDoesNotConsume(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "", "B")

	_, err := b.Build()
	require.ErrorIs(t, err, ErrMissingSubject)

	// The caller can fix the field and build again.
	b.email.Subject = "S"
	email, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, email)
}

func TestSetCCEmails_Replaces(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "S", "B").
		SetCCEmails([]string{"old@x.com"}).
		SetCCEmails([]string{"new@x.com"})

	require.Equal(t, []emailAddress{{Email: "new@x.com"}}, b.email.Personalizations[0].CC)
}

func TestSetContentType_LastWins(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "S", "B")

	b.SetContentType(ContentTypeHTML)
	require.Equal(t, "text/html", b.email.Content[0].Type)

	b.SetContentType(ContentTypeText)
	require.Equal(t, "text/plain", b.email.Content[0].Type)
}

func TestSetSendAt_Overwrites(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "S", "B")
	require.Nil(t, b.email.SendAt)

	b.SetSendAt(1668271500).SetSendAt(1668271600)

	require.NotNil(t, b.email.SendAt)
	require.EqualValues(t, 1668271600, *b.email.SendAt)
}

func TestSetRequestTimeout(t *testing.T) {
	t.Parallel()

	b := New("K", "a@x.com", []string{"b@x.com"}, "S", "B").
		SetRequestTimeout(10 * time.Second)

	require.Equal(t, 10*time.Second, b.timeout)
}

func TestNew_CopiesInputSlices(t *testing.T) {
	t.Parallel()

	to := []string{"b@x.com"}
	cc := []string{"c@x.com"}
	b := New("K", "a@x.com", to, "S", "B").SetCCEmails(cc)

	to[0] = "mutated@x.com"
	cc[0] = "mutated@x.com"

	require.Equal(t, "b@x.com", b.email.Personalizations[0].To[0].Email)
	require.Equal(t, "c@x.com", b.email.Personalizations[0].CC[0].Email)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:         "K",
		SenderEmail:    "a@x.com",
		RequestTimeout: 5 * time.Second,
	}

	b := NewFromConfig(cfg, []string{"b@x.com"}, "S", "B")

	require.Equal(t, "K", b.apiKey)
	require.Equal(t, "a@x.com", b.email.From.Email)
	require.Equal(t, 5*time.Second, b.timeout)
}
