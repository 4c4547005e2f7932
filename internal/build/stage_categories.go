package build

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/htmldoc"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
)

// stageCategoryPages is pass 2: re-scan the source roots for dedicated
// category-listing snapshots (Category_*.html) and enrich the graph with
// their subcategory edges and member lists. Subcategory references always
// materialize a node so the graph never dangles. Member titles recorded here
// deliberately stay out of the article-category index; only the node's page
// set grows.
func stageCategoryPages(_ context.Context, s *State) error {
	for _, root := range s.Roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || !strings.HasPrefix(d.Name(), "Category_") || !strings.HasSuffix(d.Name(), ".html") {
				return nil
			}
			s.scanCategoryPage(path)
			return nil
		})
		if err != nil {
			slog.Warn("Category page walk aborted", logfields.SourceRoot(root), logfields.Error(err))
		}
	}
	slog.Info("Merged dedicated category pages", logfields.Count(len(s.Graph)))
	return nil
}

func (s *State) scanCategoryPage(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	doc, err := htmldoc.ParseString(string(data))
	if err != nil {
		return
	}
	if wiki.IsErrorPage(doc) || !wiki.IsCategoryPage(doc) {
		return
	}
	page, ok := wiki.ParseCategoryPage(doc).Get()
	if !ok || page.Name == "" {
		return
	}

	s.Graph.Ensure(page.Name)
	for _, sub := range page.Subcats {
		s.Graph.AddSubcategory(page.Name, sub)
	}
	for _, title := range page.Pages {
		s.Graph.AddMember(page.Name, title)
	}
}

// stageTaxonomy is pass 3: evaluate the curated title rules against every
// known article. Each matching rule files the article under its target
// category and into the article-category index; rules do not short-circuit.
func stageTaxonomy(_ context.Context, s *State) error {
	titles := make([]string, 0, len(s.TitleToURL))
	for title := range s.TitleToURL {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	matched := 0
	for _, title := range titles {
		for _, cat := range wiki.MatchCategories(s.Rules, title) {
			s.Graph.AddMember(cat, title)
			s.addArticleCategory(title, cat)
			matched++
		}
	}
	slog.Info("Applied curated taxonomy", slog.Int("rule_matches", matched))
	return nil
}

// stageCompleteGraph force-inserts the curated featured roots so the Featured
// navigation section renders even for categories with no members in this
// snapshot set.
func stageCompleteGraph(_ context.Context, s *State) error {
	for _, name := range s.Featured {
		s.Graph.Ensure(name)
	}
	s.Report.Counts.Categories = len(s.Graph)
	s.Recorder.IncCategories(len(s.Graph))
	return nil
}
