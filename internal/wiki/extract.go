package wiki

import (
	"path"
	"regexp"
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/foundation"
	"github.com/rondayan42/requiem-wiki/internal/htmldoc"
)

// Article is one usable wiki page extracted from a source snapshot.
type Article struct {
	Title      string // display title, unique key across all source roots
	BodyMarkup string // serialized content region after stripping and link rewrites
	PlainText  string // visible text, whitespace-joined, for the search index
}

// Hosting-provider failure signatures. Snapshots of the dead wiki contain a
// mix of Cloudflare outage pages, Free.fr 404 landing pages, and origin 5xx
// pages; none of them are articles.
var errorTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Web server is down`),
	regexp.MustCompile(`(?i)Error code\s*5\d\d`),
	regexp.MustCompile(`(?i)Erreur\s*404|404\s*Not\s*Found|Free Pages Personnelles`),
}

var cloudflareRayID = regexp.MustCompile(`(?i)Cloudflare Ray ID`)

// Elements stripped from the content region before serialization. They are
// wiki chrome, not article content.
var stripSelectors = []string{"#jump-to-nav", ".printfooter", "#catlinks", ".toc"}

// IsErrorPage reports whether the document is a hosting-provider failure page
// rather than real wiki content.
func IsErrorPage(doc *htmldoc.Document) bool {
	title := doc.TitleText()
	for _, pat := range errorTitlePatterns {
		if pat.MatchString(title) {
			return true
		}
	}
	// Cloudflare block pages carry a wrapper element or a diagnostic ray id.
	if doc.ByID("cf-wrapper").IsSome() {
		return true
	}
	return doc.ContainsText(cloudflareRayID)
}

// InlineCategories returns the normalized category names declared in the
// document's catlinks footer. Callers must collect these before Extract runs:
// extraction strips the catlinks region from the content tree.
func InlineCategories(doc *htmldoc.Document) []string {
	var cats []string
	for _, a := range doc.Select(`#catlinks a[title^="Category:"]`) {
		raw := a.Attr("title").UnwrapOr(a.Text())
		if name := NormalizeCategoryName(raw); name != "" {
			cats = append(cats, name)
		}
	}
	return cats
}

// Extract locates the article content and heading in a parsed document and
// produces an Article. It returns None for documents without a recognizable
// MediaWiki structure. Error pages are the caller's concern (IsErrorPage);
// Extract assumes real content.
//
// Extract mutates the document: chrome elements are removed and local links
// are rewritten in place before serialization.
func Extract(doc *htmldoc.Document) foundation.Option[Article] {
	content := findContent(doc)
	heading := findHeading(doc)
	if content.IsNone() || heading.IsNone() {
		return foundation.None[Article]()
	}
	region := content.Unwrap()

	for _, sel := range stripSelectors {
		for _, el := range region.Select(sel) {
			el.Remove()
		}
	}
	rewriteLocalLinks(region)

	title := heading.Unwrap().Text()
	markup, err := region.OuterHTML()
	if err != nil {
		return foundation.None[Article]()
	}

	return foundation.Some(Article{
		Title:      title,
		BodyMarkup: markup,
		PlainText:  region.VisibleText(),
	})
}

// findContent tries the MediaWiki content containers from most to least specific.
func findContent(doc *htmldoc.Document) foundation.Option[*htmldoc.Element] {
	if el := doc.SelectOne("#content #bodyContent"); el.IsSome() {
		return el
	}
	if el := doc.SelectOne("#content"); el.IsSome() {
		return el
	}
	return doc.SelectOne("#bodyContent")
}

func findHeading(doc *htmldoc.Document) foundation.Option[*htmldoc.Element] {
	if el := doc.SelectOne("h1.firstHeading"); el.IsSome() {
		return el
	}
	return doc.SelectOne("h1")
}

// rewriteLocalLinks flattens every non-external .html href to its base
// filename. Output pages are regrouped into bucketed directories, so any
// relative path inside a snapshot would dangle; the base name stays valid.
func rewriteLocalLinks(region *htmldoc.Element) {
	for _, a := range region.Select("a") {
		href, ok := a.Attr("href").Get()
		if !ok || href == "" {
			continue
		}
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			continue
		}
		if strings.HasSuffix(href, ".html") {
			a.SetAttr("href", path.Base(href))
		}
	}
}
