package wiki

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const categoryPrefix = "Category:"

var unsafeRuns = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

// ToSafeName maps a display title to a filesystem- and URL-safe name.
// Titles are NFC-normalized first so composed and decomposed spellings of the
// same title land on the same output file. Collisions between distinct titles
// are not detected; the last writer wins on disk.
func ToSafeName(title string) string {
	safe := unsafeRuns.ReplaceAllString(norm.NFC.String(title), "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		return "page"
	}
	return safe
}

// NormalizeCategoryName strips an exact leading "Category:" namespace prefix
// and trims surrounding whitespace. Other inputs are returned trimmed.
func NormalizeCategoryName(name string) string {
	if strings.HasPrefix(name, categoryPrefix) {
		return strings.TrimSpace(name[len(categoryPrefix):])
	}
	return strings.TrimSpace(name)
}

// CategoryOutputFilename returns the output filename for a category page.
func CategoryOutputFilename(categoryName string) string {
	return ToSafeName("Category_"+categoryName) + ".html"
}
