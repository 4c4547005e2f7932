// Package markdown converts curated Markdown content (the configured home
// page body) to HTML for template substitution.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// ToHTML renders a Markdown body to HTML.
func ToHTML(body []byte) (string, error) {
	md := goldmark.New()
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
