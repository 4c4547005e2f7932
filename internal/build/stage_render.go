package build

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/rondayan42/requiem-wiki/internal/site"
	"github.com/rondayan42/requiem-wiki/internal/util/sets"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
)

// stageRender walks the finished graph and article set and emits every index
// artifact: both renderings of each category page, the A-Z index, the
// hierarchical category index, and the search index. Output is deterministic:
// all iteration is over sorted names.
func stageRender(_ context.Context, s *State) error {
	resolver := wiki.NewResolver(s.TitleToURL)

	// Each category renders twice: under categories/ (article links climb one
	// level) and at the site root (no prefix). Both bodies must stay
	// byte-for-byte consistent modulo that prefix.
	for _, name := range s.Graph.Names() {
		node := s.Graph[name]
		filename := wiki.CategoryOutputFilename(name)
		title := "Category: " + name

		nested := site.CategoryBody(name, node, resolver, "../")
		if err := site.WritePage(s.Template, filepath.Join(s.SiteDir, site.CategoriesDir, filename), title, nested, "../", ""); err != nil {
			return err
		}
		rooted := site.CategoryBody(name, node, resolver, "")
		if err := site.WritePage(s.Template, filepath.Join(s.SiteDir, filename), title, rooted, "", ""); err != nil {
			return err
		}
	}

	s.countUnresolved(resolver)

	if err := site.WritePage(s.Template, filepath.Join(s.SiteDir, "A-Z.html"), "A–Z Index", site.AZBody(s.AZEntries), "", ""); err != nil {
		return err
	}

	indexBody := site.CategoriesIndexBody(s.Graph, s.Featured, s.Graph.Roots())
	if err := site.WritePage(s.Template, filepath.Join(s.SiteDir, "Categories.html"), "Categories", indexBody, "", ""); err != nil {
		return err
	}

	if err := site.WriteSearchIndex(s.SiteDir, s.SearchIndex); err != nil {
		return err
	}

	slog.Info("Rendered index pages",
		slog.Int("categories", len(s.Graph)),
		slog.Int("search_entries", len(s.SearchIndex)))
	return nil
}

// countUnresolved tallies member titles that resolve to no article. They are
// already absent from the rendered listings; the count only feeds the report.
func (s *State) countUnresolved(resolver *wiki.Resolver) {
	misses := sets.New[string]()
	for _, node := range s.Graph {
		for title := range node.Pages {
			if resolver.Resolve(title).IsNone() {
				misses.Add(title)
			}
		}
	}
	s.Report.Counts.UnresolvedLinks = len(misses)
	s.Recorder.IncUnresolvedLinks(len(misses))
}
