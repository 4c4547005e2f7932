// Package site renders the output tree: page template substitution, category
// and index page bodies, the search index, and static assets.
package site

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
)

//go:embed builtin/page.html builtin/assets
var builtinFS embed.FS

// Placeholder names substituted into the page template.
const (
	placeholderTitle       = "{{TITLE}}"
	placeholderBody        = "{{BODY}}"
	placeholderAssetPrefix = "{{ASSET_PREFIX}}"
	placeholderBreadcrumbs = "{{BREADCRUMBS}}"
)

// PageTemplate is the single fixed page template every output write goes
// through. Substitution is literal string replacement, never HTML escaping:
// the body slot receives markup.
type PageTemplate struct {
	raw string
}

// LoadTemplate reads page.html from the templates directory, falling back to
// the builtin template when the file does not exist.
func LoadTemplate(templatesDir string) (*PageTemplate, error) {
	path := filepath.Join(templatesDir, "page.html")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data, err = builtinFS.ReadFile("builtin/page.html")
	}
	if err != nil {
		return nil, werrors.TemplateError(err)
	}
	raw := string(data)
	if !strings.Contains(raw, placeholderBody) {
		return nil, werrors.ValidationFailed("templates/page.html", "template is missing the {{BODY}} placeholder")
	}
	return &PageTemplate{raw: raw}, nil
}

// Render substitutes the four placeholders and returns the final page markup.
func (t *PageTemplate) Render(title, bodyMarkup, assetPrefix, breadcrumbsMarkup string) string {
	out := t.raw
	out = strings.ReplaceAll(out, placeholderTitle, title)
	out = strings.ReplaceAll(out, placeholderBody, bodyMarkup)
	out = strings.ReplaceAll(out, placeholderAssetPrefix, assetPrefix)
	out = strings.ReplaceAll(out, placeholderBreadcrumbs, breadcrumbsMarkup)
	return out
}

// WritePage renders and writes one output page, creating parent directories.
func WritePage(t *PageTemplate, outputPath, title, bodyMarkup, assetPrefix, breadcrumbsMarkup string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return werrors.OutputError("mkdir", err)
	}
	markup := t.Render(title, bodyMarkup, assetPrefix, breadcrumbsMarkup)
	if err := os.WriteFile(outputPath, []byte(markup), 0o644); err != nil {
		return werrors.OutputError("write", err).WithContext("path", outputPath)
	}
	return nil
}
