package htmlbody

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_WithFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: Welcome aboard
Category: onboarding
---
# Welcome

Glad to have you.
`)

	doc, err := Parse(content)

	require.NoError(t, err)
	require.Equal(t, "Welcome aboard", doc.Subject)
	require.Equal(t, "onboarding", doc.Metadata["Category"])
	require.Equal(t, "# Welcome\n\nGlad to have you.\n", doc.Body)
}

func TestParse_NoFrontmatter(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("just a body"))

	require.NoError(t, err)
	require.Empty(t, doc.Subject)
	require.Empty(t, doc.Metadata)
	require.Equal(t, "just a body", doc.Body)
}

func TestParse_MissingClosingFence(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("---\nSubject: broken\n"))

	require.Nil(t, doc)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("---\nSubject: [unclosed\n---\nbody"))

	require.Nil(t, doc)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParse_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("---\n---\nbody"))

	require.NoError(t, err)
	require.Empty(t, doc.Subject)
	require.Equal(t, "body", doc.Body)
}

func TestParse_NonStringSubjectIgnored(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("---\nSubject: 42\n---\nbody"))

	require.NoError(t, err)
	require.Empty(t, doc.Subject)
}

func TestDocument_HTML(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("---\nSubject: Hi\n---\n# Heading\n"))
	require.NoError(t, err)

	html, err := doc.HTML()

	require.NoError(t, err)
	require.Contains(t, html, "<h1>Heading</h1>")
}
