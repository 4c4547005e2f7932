package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/site"
)

// stagePrepare tears down the previous output tree and lays out the skeleton
// of the new one: assets, the pages and categories directories, and the
// loaded page template.
func stagePrepare(_ context.Context, s *State) error {
	s.SiteDir = s.outputDir()

	if s.Config.Output.CleanOutput() {
		if err := os.RemoveAll(s.SiteDir); err != nil {
			return werrors.OutputError("clean output directory", err)
		}
	}
	if err := os.MkdirAll(s.SiteDir, 0o755); err != nil {
		return werrors.OutputError("create output directory", err)
	}
	for _, sub := range []string{site.PagesDir, site.CategoriesDir} {
		if err := os.MkdirAll(filepath.Join(s.SiteDir, sub), 0o755); err != nil {
			return werrors.OutputError("create output subdirectory", err)
		}
	}

	tpl, err := site.LoadTemplate(s.Config.Templates.Dir)
	if err != nil {
		return err
	}
	s.Template = tpl

	if err := site.CopyAssets(s.Config.Templates.Dir, s.SiteDir); err != nil {
		return err
	}

	slog.Info("Prepared output tree", logfields.Path(s.SiteDir))
	return nil
}
