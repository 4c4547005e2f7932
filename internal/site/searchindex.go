package site

import (
	"encoding/json"
	"os"
	"path/filepath"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
)

// SearchEntry is one search-index record, written once per article.
type SearchEntry struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// WriteSearchIndex emits the client-side search index twice: as plain JSON,
// and as a JS file assigning the same array to window.SEARCH_INDEX for
// file:// deployments where fetching local JSON is blocked.
func WriteSearchIndex(siteDir string, entries []SearchEntry) error {
	if entries == nil {
		entries = []SearchEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return werrors.Wrap(err, werrors.CategoryRender, werrors.SeverityFatal, "failed to marshal search index")
	}
	if err := os.WriteFile(filepath.Join(siteDir, "search-index.json"), data, 0o644); err != nil {
		return werrors.OutputError("write search-index.json", err)
	}
	js := append([]byte("window.SEARCH_INDEX="), data...)
	js = append(js, ';')
	if err := os.WriteFile(filepath.Join(siteDir, "search-index.js"), js, 0o644); err != nil {
		return werrors.OutputError("write search-index.js", err)
	}
	return nil
}
