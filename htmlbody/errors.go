package htmlbody

import "errors"

var (
	// ErrInvalidFrontmatter indicates malformed YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("htmlbody: invalid frontmatter")

	// ErrRenderFailed indicates markdown conversion failed.
	ErrRenderFailed = errors.New("htmlbody: failed to render markdown")
)
