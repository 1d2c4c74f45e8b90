package htmlbody

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	initOnce sync.Once
)

func initPipeline() {
	initOnce.Do(func() {
		md = goldmark.New(
			goldmark.WithExtensions(buttonExtension{}),
		)

		// Email-safe allowlist: structural and inline formatting tags plus
		// links. Scripts, event handlers, and javascript: URLs are stripped.
		policy = bluemonday.NewPolicy()
		policy.AllowStandardURLs()
		policy.AllowElements(
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		policy.AllowAttrs("href").OnElements("a")
		// Keeps the styling hook emitted for [!button|...] links.
		policy.AllowAttrs("class").OnElements("a")
	})
}

// Render converts markdown to sanitized HTML suitable for a text/html content
// block. Pair it with sendgrid.ContentTypeHTML.
func Render(markdown []byte) (string, error) {
	initPipeline()

	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return policy.Sanitize(buf.String()), nil
}
