package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/markdown"
	"github.com/rondayan42/requiem-wiki/internal/site"
)

// stageHome writes the site home page plus the companion index.html one level
// above the site tree, for deployments that serve from the repository root.
// Optional configured Markdown content is rendered into both.
func stageHome(_ context.Context, s *State) error {
	blurb := s.Config.Site.Description
	if blurb == "" {
		blurb = "Rebuilt static archive. Use the search box above, or browse:"
	}

	extra := ""
	if s.Config.Site.HomeContent != "" {
		data, err := os.ReadFile(s.Config.Site.HomeContent)
		if err != nil {
			return werrors.Wrap(err, werrors.CategoryConfig, werrors.SeverityFatal, "failed to read home content file").
				WithContext("path", s.Config.Site.HomeContent)
		}
		extra, err = markdown.ToHTML(data)
		if err != nil {
			return werrors.Wrap(err, werrors.CategoryRender, werrors.SeverityFatal, "failed to render home content")
		}
	}

	title := s.Config.Site.Title
	homeBody := site.HomeBody(blurb, extra, "")
	if err := site.WritePage(s.Template, filepath.Join(s.SiteDir, "index.html"), title, homeBody, "", ""); err != nil {
		return err
	}

	// Companion page at the parent of the site tree, pointing into it.
	sitePrefix := filepath.Base(s.SiteDir) + "/"
	companionBody := site.HomeBody(blurb, extra, sitePrefix)
	companionPath := filepath.Join(filepath.Dir(s.SiteDir), "index.html")
	if err := site.WritePage(s.Template, companionPath, title, companionBody, sitePrefix, ""); err != nil {
		return err
	}

	slog.Info("Wrote home pages", logfields.Path(companionPath))
	return nil
}

// stageReport persists the build report unless disabled.
func stageReport(_ context.Context, s *State) error {
	if !s.Options.WriteReport {
		return nil
	}
	return s.Report.Write(s.SiteDir)
}
