package site

import (
	"html"
	"sort"
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/util/sets"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
)

// Entry is one linkable article reference used by the A-Z index.
type Entry struct {
	Title string
	URL   string
}

// CategoryBody renders the body of one category page: heading, subcategory
// links, and resolvable member-page links. Subcategory links are same-directory
// relative so the body works both under categories/ and at the site root;
// article links take pageLinkPrefix because articles always live under pages/.
// Member titles that resolve to no article are dropped, not rendered dead.
func CategoryBody(name string, node *wiki.Node, resolver *wiki.Resolver, pageLinkPrefix string) string {
	var b strings.Builder
	b.WriteString(`<div class="category"><h2>Category: ` + html.EscapeString(name) + `</h2>`)
	if len(node.Subcats) > 0 {
		b.WriteString("<h3>Subcategories</h3><ul>")
		for _, sub := range sets.SortedFold(node.Subcats) {
			href := wiki.CategoryOutputFilename(sub)
			b.WriteString(`<li><a href="` + href + `">` + html.EscapeString(sub) + `</a></li>`)
		}
		b.WriteString("</ul>")
	}
	if len(node.Pages) > 0 {
		var items []string
		for _, title := range sets.SortedFold(node.Pages) {
			url, ok := resolver.Resolve(title).Get()
			if !ok {
				continue
			}
			items = append(items, `<li><a href="`+pageLinkPrefix+url+`">`+html.EscapeString(title)+`</a></li>`)
		}
		if len(items) > 0 {
			b.WriteString("<h3>Pages</h3><ul>")
			b.WriteString(strings.Join(items, ""))
			b.WriteString("</ul>")
		}
	}
	b.WriteString("</div>")
	return b.String()
}

// AZBody renders the A-Z index: entries bucketed by uppercased first title
// character, non-alphabetic titles under a catch-all "#" bucket, buckets and
// entries in case-insensitive alphabetical order.
func AZBody(entries []Entry) string {
	buckets := make(map[string][]Entry)
	for _, e := range entries {
		key := "#"
		if e.Title != "" {
			first := strings.ToUpper(e.Title[:1])
			if first >= "A" && first <= "Z" {
				key = first
			}
		}
		buckets[key] = append(buckets[key], e)
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<div class="az">`)
	for _, k := range keys {
		items := buckets[k]
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
		b.WriteString("<h2>" + html.EscapeString(k) + "</h2><ul>")
		for _, e := range items {
			b.WriteString(`<li><a href="` + e.URL + `">` + html.EscapeString(e.Title) + `</a></li>`)
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</div>")
	return b.String()
}

// CategoriesIndexBody renders the hierarchical category index: the Featured
// section lists the curated roots in their declared order (always, even when
// empty), and every other root collapses into a recursive Legacy tree.
func CategoriesIndexBody(graph wiki.Graph, featured []string, roots []string) string {
	var b strings.Builder
	b.WriteString(`<div class="categories"><p>Browse by category and subcategory.</p>`)
	if len(featured) > 0 {
		b.WriteString("<h3>Featured</h3><ul>")
		for _, name := range featured {
			b.WriteString(categoryLink(name))
		}
		b.WriteString("</ul>")
	}
	curated := sets.New(featured...)
	var legacy []string
	for _, r := range roots {
		if !curated.Has(r) {
			legacy = append(legacy, r)
		}
	}
	if len(legacy) > 0 {
		b.WriteString("<details><summary>Legacy</summary><ul>")
		for _, r := range legacy {
			writeTree(&b, graph, r)
		}
		b.WriteString("</ul></details>")
	}
	b.WriteString("</div>")
	return b.String()
}

// writeTree renders one category and its subcategory tree recursively.
// No cycle guard: the graph is expected to be acyclic; a subcategory cycle
// would recurse without bound.
func writeTree(b *strings.Builder, graph wiki.Graph, name string) {
	b.WriteString(`<li><a href="` + CategoriesDir + `/` + wiki.CategoryOutputFilename(name) + `">` + html.EscapeString(name) + `</a>`)
	if node, ok := graph[name]; ok && len(node.Subcats) > 0 {
		b.WriteString("<ul>")
		for _, sub := range sets.SortedFold(node.Subcats) {
			writeTree(b, graph, sub)
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</li>")
}

func categoryLink(name string) string {
	return `<li><a href="` + CategoriesDir + `/` + wiki.CategoryOutputFilename(name) + `">` + html.EscapeString(name) + `</a></li>`
}

// BreadcrumbsMarkup renders the per-article category strip: up to the first
// five categories in case-insensitive alphabetical order, each linking to the
// category page through the article's site-root prefix. An empty category set
// yields no markup at all.
func BreadcrumbsMarkup(categories []string, assetPrefix string) string {
	if len(categories) == 0 {
		return ""
	}
	sorted := append([]string(nil), categories...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	parts := make([]string, 0, len(sorted))
	for _, c := range sorted {
		parts = append(parts, `<a href="`+assetPrefix+CategoriesDir+`/`+wiki.CategoryOutputFilename(c)+`">`+html.EscapeString(c)+`</a>`)
	}
	return `<div class="breadcrumbs">Categories: ` + strings.Join(parts, ` <span class="sep">|</span> `) + `</div>`
}

// HomeBody renders the home page body. linkPrefix distinguishes the site-root
// home from the repository-root companion page; extraMarkup carries optional
// rendered Markdown content configured by the archivist.
func HomeBody(blurb, extraMarkup, linkPrefix string) string {
	var b strings.Builder
	b.WriteString(`<div class="home">`)
	if blurb != "" {
		b.WriteString("<p>" + html.EscapeString(blurb) + "</p>")
	}
	if extraMarkup != "" {
		b.WriteString(extraMarkup)
	}
	b.WriteString("<ul>")
	b.WriteString(`<li><a href="` + linkPrefix + `A-Z.html">A&ndash;Z Index</a></li>`)
	b.WriteString(`<li><a href="` + linkPrefix + `Categories.html">Categories</a></li>`)
	b.WriteString("</ul></div>")
	return b.String()
}
