package htmlbody

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a markdown email body with optional YAML frontmatter metadata.
type Document struct {
	Metadata map[string]any
	Subject  string
	Body     string
}

// fence delimits the optional frontmatter block.
var fence = []byte("---")

// Parse splits optional YAML frontmatter from a markdown document. A Subject
// key in the frontmatter is promoted to Document.Subject so callers can feed
// it straight into a builder. Content without an opening fence is returned
// whole as the body with empty metadata.
func Parse(content []byte) (*Document, error) {
	doc := &Document{Metadata: make(map[string]any)}

	if !bytes.HasPrefix(content, fence) {
		doc.Body = string(content)
		return doc, nil
	}

	rest := bytes.TrimPrefix(content, fence)
	rest = bytes.TrimLeft(rest, "\r\n")

	end := bytes.Index(rest, fence)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing fence not found", ErrInvalidFrontmatter)
	}

	meta := rest[:end]
	body := rest[end+len(fence):]
	// Drop the single newline that follows the closing fence.
	body = bytes.TrimPrefix(body, []byte("\r\n"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	if len(bytes.TrimSpace(meta)) > 0 {
		if err := yaml.Unmarshal(meta, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	if subject, ok := doc.Metadata["Subject"].(string); ok {
		doc.Subject = subject
	}

	doc.Body = string(body)
	return doc, nil
}

// HTML renders the document body through Render.
func (d *Document) HTML() (string, error) {
	return Render([]byte(d.Body))
}
