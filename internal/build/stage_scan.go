package build

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/htmldoc"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/site"
	"github.com/rondayan42/requiem-wiki/internal/util/sets"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
)

// stageScan is pass 1: walk every source root in priority order, extract each
// usable article, write its initial page (breadcrumbs come later), and record
// its inline category signals. The first root to produce a title wins; later
// duplicates are dropped without merging.
func stageScan(_ context.Context, s *State) error {
	for _, root := range s.Roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directory entries count as absent.
				s.Report.Counts.Unreadable++
				s.Recorder.IncSkipped("unreadable", 1)
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
				return nil
			}
			s.scanFile(path)
			return nil
		})
		if err != nil {
			slog.Warn("Source root walk aborted", logfields.SourceRoot(root), logfields.Error(err))
		}
	}
	s.Recorder.IncArticles(s.Report.Counts.Articles)
	slog.Info("Scanned source roots",
		slog.Int("articles", s.Report.Counts.Articles),
		slog.Int("error_pages", s.Report.Counts.ErrorPages),
		slog.Int("duplicates", s.Report.Counts.Duplicates))
	return nil
}

// scanFile processes one candidate snapshot. Every skip is silent by design:
// the archive is full of provider error pages and half-saved documents, and
// a rebuild keeps going regardless.
func (s *State) scanFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.Report.Counts.Unreadable++
		s.Recorder.IncSkipped("unreadable", 1)
		return
	}
	doc, err := htmldoc.Parse(bytes.NewReader(data))
	if err != nil {
		s.Report.Counts.Unreadable++
		s.Recorder.IncSkipped("unreadable", 1)
		return
	}
	if wiki.IsErrorPage(doc) {
		s.Report.Counts.ErrorPages++
		s.Recorder.IncSkipped("error_page", 1)
		return
	}

	// Inline category signals live in the catlinks footer, which extraction
	// strips from the content region. Collect them first.
	inline := wiki.InlineCategories(doc)

	article, ok := wiki.Extract(doc).Get()
	if !ok {
		s.Report.Counts.NoStructure++
		s.Recorder.IncSkipped("no_structure", 1)
		slog.Debug("No recognizable article structure", logfields.File(path))
		return
	}
	title := article.Title
	if title == "" {
		s.Report.Counts.NoStructure++
		s.Recorder.IncSkipped("no_structure", 1)
		return
	}
	if s.SeenTitles.Has(title) {
		s.Report.Counts.Duplicates++
		s.Recorder.IncSkipped("duplicate", 1)
		return
	}
	s.SeenTitles.Add(title)

	safeName := wiki.ToSafeName(title)
	url := site.PageURL(safeName)
	outPath := filepath.Join(s.SiteDir, filepath.FromSlash(url))
	if err := site.WritePage(s.Template, outPath, title, article.BodyMarkup, site.AssetPrefix(url), ""); err != nil {
		slog.Warn("Failed to write article page", logfields.Title(title), logfields.Error(err))
		s.SeenTitles.Delete(title)
		return
	}

	s.TitleToURL[title] = url
	s.TitleToSource[title] = path
	s.SearchIndex = append(s.SearchIndex, site.SearchEntry{Title: title, URL: url, Content: article.PlainText})
	s.AZEntries = append(s.AZEntries, site.Entry{Title: title, URL: url})
	s.Report.Counts.Articles++

	for _, cat := range inline {
		s.Graph.AddMember(cat, title)
		s.addArticleCategory(title, cat)
	}
}

// addArticleCategory records a category in the article-category index, the
// source of breadcrumb strips. Only inline and curated signals land here;
// dedicated category pages intentionally do not (their member lists feed the
// graph, not the per-article index).
func (s *State) addArticleCategory(title, category string) {
	cats, ok := s.TitleToCategories[title]
	if !ok {
		cats = sets.New[string]()
		s.TitleToCategories[title] = cats
	}
	cats.Add(category)
}
