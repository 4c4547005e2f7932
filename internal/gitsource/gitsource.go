// Package gitsource materializes remote snapshot repositories as local source
// roots. Archives of dead wikis commonly live in git; cloning them shallowly
// lets a build consume them like any local directory.
package gitsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rondayan42/requiem-wiki/internal/config"
	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
)

// Client clones remote source roots into a workspace directory.
type Client struct {
	workspaceDir string
}

// NewClient creates a clone client rooted at workspaceDir.
func NewClient(workspaceDir string) *Client {
	return &Client{workspaceDir: workspaceDir}
}

// Clone shallow-clones the snapshot repository and returns its local path.
// History is irrelevant to a rebuild, so depth is pinned to 1.
func (c *Client) Clone(ctx context.Context, src *config.GitSource) (string, error) {
	name := repoDirName(src.URL)
	repoPath := filepath.Join(c.workspaceDir, name)

	slog.Debug("Cloning snapshot repository", slog.String("url", src.URL), slog.String("branch", src.Branch), logfields.Path(repoPath))

	if err := os.RemoveAll(repoPath); err != nil {
		return "", werrors.WorkspaceError("remove existing clone", err)
	}

	cloneOptions := &git.CloneOptions{
		URL:   src.URL,
		Depth: 1,
	}
	if src.Branch != "" {
		cloneOptions.ReferenceName = plumbing.ReferenceName("refs/heads/" + src.Branch)
		cloneOptions.SingleBranch = true
	}

	repository, err := git.PlainCloneContext(ctx, repoPath, false, cloneOptions)
	if err != nil {
		return "", werrors.SourceCloneError(src.URL, err)
	}

	if ref, err := repository.Head(); err == nil {
		slog.Info("Snapshot repository cloned",
			slog.String("url", src.URL),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.Path(repoPath))
	} else {
		slog.Info("Snapshot repository cloned", slog.String("url", src.URL), logfields.Path(repoPath))
	}

	return repoPath, nil
}

// repoDirName derives a stable directory name from the clone URL.
func repoDirName(url string) string {
	base := strings.TrimSuffix(filepath.Base(strings.TrimSuffix(url, "/")), ".git")
	if base == "" || base == "." || base == string(filepath.Separator) {
		return fmt.Sprintf("snapshots-%x", len(url))
	}
	return base
}
