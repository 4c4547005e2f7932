package site

import "strings"

// Output tree layout constants.
const (
	PagesDir      = "pages"
	CategoriesDir = "categories"
	AssetsDir     = "assets"
)

// PageBucket returns the pages/ subdirectory for a safe name. Articles are
// bucketed by uppercased first character so no single directory collects the
// whole archive; everything non-alphabetic shares a catch-all bucket.
func PageBucket(safeName string) string {
	if safeName == "" {
		return "0-9"
	}
	first := strings.ToUpper(safeName[:1])
	if first >= "A" && first <= "Z" {
		return first
	}
	return "0-9"
}

// PageURL returns the site-relative URL for an article's safe name.
func PageURL(safeName string) string {
	return PagesDir + "/" + PageBucket(safeName) + "/" + safeName + ".html"
}

// AssetPrefix computes the ../ chain that resolves the site root from a
// site-relative output path.
func AssetPrefix(siteRelPath string) string {
	depth := strings.Count(siteRelPath, "/")
	return strings.Repeat("../", depth)
}
