package wiki

import (
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/foundation"
)

// Resolver maps article titles to their site-relative output URLs.
//
// Category listings reference members by the literal title strings found in
// source snapshots, which disagree with article headings about underscores
// versus spaces. Resolution tries the verbatim title first, then the opposite
// underscore/space variant. Unresolvable titles are reported as None and the
// renderer drops them silently.
type Resolver struct {
	byTitle map[string]string
}

// NewResolver creates a resolver over the finished title-to-URL mapping.
func NewResolver(byTitle map[string]string) *Resolver {
	return &Resolver{byTitle: byTitle}
}

// Resolve returns the output URL for the title, if one exists.
func (r *Resolver) Resolve(title string) foundation.Option[string] {
	if url, ok := r.byTitle[title]; ok {
		return foundation.Some(url)
	}
	var alt string
	if strings.Contains(title, "_") {
		alt = strings.ReplaceAll(title, "_", " ")
	} else {
		alt = strings.ReplaceAll(title, " ", "_")
	}
	if url, ok := r.byTitle[alt]; ok {
		return foundation.Some(url)
	}
	return foundation.None[string]()
}
