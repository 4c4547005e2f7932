package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/rondayan42/requiem-wiki/internal/htmldoc"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/site"
	"github.com/rondayan42/requiem-wiki/internal/util/sets"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
)

// stageBreadcrumbs re-renders every article that ended up with categories,
// injecting its breadcrumb strip. The body is re-extracted from the original
// snapshot rather than re-parsing the already-written page: two parses of
// pristine source beat one parse of generated output wrapped in the template.
// Articles with no categories keep their first-pass page untouched.
func stageBreadcrumbs(_ context.Context, s *State) error {
	titles := make([]string, 0, len(s.TitleToCategories))
	for title := range s.TitleToCategories {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	rewritten := 0
	for _, title := range titles {
		cats := s.TitleToCategories[title]
		if len(cats) == 0 {
			continue
		}
		url, ok := s.TitleToURL[title]
		if !ok {
			continue
		}
		srcPath, ok := s.TitleToSource[title]
		if !ok {
			continue
		}

		data, err := os.ReadFile(srcPath)
		if err != nil {
			slog.Warn("Source vanished before breadcrumb pass", logfields.Title(title), logfields.Error(err))
			continue
		}
		doc, err := htmldoc.ParseString(string(data))
		if err != nil {
			continue
		}
		article, ok := wiki.Extract(doc).Get()
		if !ok {
			continue
		}

		prefix := site.AssetPrefix(url)
		crumbs := site.BreadcrumbsMarkup(sets.SortedFold(cats), prefix)
		outPath := filepath.Join(s.SiteDir, filepath.FromSlash(url))
		if err := site.WritePage(s.Template, outPath, title, article.BodyMarkup, prefix, crumbs); err != nil {
			return err
		}
		rewritten++
	}

	slog.Info("Injected breadcrumbs", logfields.Count(rewritten))
	return nil
}
