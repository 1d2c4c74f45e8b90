// Package htmlbody renders markdown email bodies into sanitized HTML content
// blocks for the sendgrid client.
//
// Markdown keeps transactional email copy readable in source control while
// the rendered output stays inside an email-safe HTML allowlist: headings,
// paragraphs, inline formatting, lists, code, blockquotes, and links. Scripts,
// event handlers, and javascript: URLs never survive sanitization.
//
// # Usage
//
// Render a markdown body and send it as HTML:
//
//	html, err := htmlbody.Render([]byte("# Welcome\n\nThanks for signing up!"))
//	if err != nil {
//		// handle error
//	}
//
//	email, err := sendgrid.New(key, from, to, "Welcome", html).
//		SetContentType(sendgrid.ContentTypeHTML).
//		Build()
//
// # Frontmatter
//
// Documents may carry YAML frontmatter; a Subject key is promoted so one file
// can define a complete email:
//
//	---
//	Subject: Welcome aboard
//	---
//
//	# Welcome
//
//	[!button|Get Started](https://example.com/start)
//
//	doc, err := htmlbody.Parse(content)
//	html, err := doc.HTML()
//	// doc.Subject == "Welcome aboard"
//
// # Buttons
//
// The [!button|Label](URL) syntax renders as an anchor with a "btn" class so
// email styles can turn call-to-action links into buttons. Both label and URL
// are HTML-escaped.
package htmlbody
