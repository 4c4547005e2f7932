package wiki

import (
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/foundation"
	"github.com/rondayan42/requiem-wiki/internal/htmldoc"
)

// CategoryPage is the parsed form of a dedicated category-listing snapshot.
type CategoryPage struct {
	Name    string   // canonical category name from the page's own heading
	Subcats []string // normalized subcategory names from the subcategories block
	Pages   []string // literal member titles from the pages block
}

// IsCategoryPage classifies a document as a category-listing page: either the
// body carries the category-namespace class marker, or the heading literally
// starts with "Category:".
func IsCategoryPage(doc *htmldoc.Document) bool {
	if body, ok := doc.SelectOne("body").Get(); ok {
		for _, cls := range body.ClassList() {
			if strings.HasPrefix(cls, "ns-14") {
				return true
			}
		}
	}
	if h1, ok := doc.SelectOne("h1.firstHeading").Get(); ok {
		return strings.HasPrefix(h1.Text(), categoryPrefix)
	}
	return false
}

// ParseCategoryPage reads a classified category page's own name, its listed
// subcategories, and its listed member titles. Pages without the canonical
// heading yield None.
func ParseCategoryPage(doc *htmldoc.Document) foundation.Option[CategoryPage] {
	h1, ok := doc.SelectOne("h1.firstHeading").Get()
	if !ok {
		return foundation.None[CategoryPage]()
	}
	page := CategoryPage{Name: NormalizeCategoryName(h1.Text())}

	if wrap, ok := doc.ByID("mw-subcategories").Get(); ok {
		for _, a := range wrap.Select(`a[title^="Category:"]`) {
			raw := a.Attr("title").UnwrapOr(a.Text())
			if name := NormalizeCategoryName(raw); name != "" {
				page.Subcats = append(page.Subcats, name)
			}
		}
	}
	if wrap, ok := doc.ByID("mw-pages").Get(); ok {
		for _, a := range wrap.Select("a[title]") {
			if title := a.Attr("title").UnwrapOr(""); title != "" {
				page.Pages = append(page.Pages, title)
			}
		}
	}
	return foundation.Some(page)
}
