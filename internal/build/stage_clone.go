package build

import (
	"context"
	"log/slog"
	"os"

	"github.com/rondayan42/requiem-wiki/internal/gitsource"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/workspace"
)

// stageClone resolves every configured source to a local root directory,
// shallow-cloning git sources into an ephemeral workspace. Root priority
// order is configuration order regardless of source kind. Local roots that
// do not exist are skipped with a warning, matching the original archive
// layout where only some mirrors were salvaged.
func stageClone(ctx context.Context, s *State) error {
	var roots []string
	var client *gitsource.Client

	for _, src := range s.Config.Sources {
		if src.Git == nil {
			if _, err := os.Stat(src.Path); err != nil {
				slog.Warn("Source root missing, skipping", logfields.SourceRoot(src.Path))
				continue
			}
			roots = append(roots, src.Path)
			continue
		}

		if client == nil {
			s.Workspace = workspace.NewManager("")
			if err := s.Workspace.Create(); err != nil {
				return err
			}
			client = gitsource.NewClient(s.Workspace.GetPath())
		}
		path, err := client.Clone(ctx, src.Git)
		if err != nil {
			return err
		}
		roots = append(roots, path)
	}

	s.Roots = roots
	slog.Info("Resolved source roots", logfields.Count(len(roots)))
	return nil
}
