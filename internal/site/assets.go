package site

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
)

// CopyAssets populates siteDir/assets. Files from templatesDir/assets take
// precedence; when that directory is absent the embedded builtin assets are
// written instead so the site is always styled and searchable.
func CopyAssets(templatesDir, siteDir string) error {
	dst := filepath.Join(siteDir, AssetsDir)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return werrors.OutputError("mkdir assets", err)
	}

	src := filepath.Join(templatesDir, AssetsDir)
	if info, err := os.Stat(src); err == nil && info.IsDir() {
		return copyDir(src, dst)
	}
	return copyBuiltinAssets(dst)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return werrors.OutputError("walk assets", err)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return werrors.OutputError("open asset", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return werrors.OutputError("create asset", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return werrors.OutputError("copy asset", err)
	}
	return nil
}

func copyBuiltinAssets(dst string) error {
	return fs.WalkDir(builtinFS, "builtin/assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel("builtin/assets", path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
