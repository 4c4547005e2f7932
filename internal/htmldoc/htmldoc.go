// Package htmldoc wraps the goquery/x-net HTML machinery behind the narrow
// capability set the extraction and category passes actually need: parse,
// select, read attributes, extract text, remove elements, re-serialize.
// Lookups that can miss return typed outcomes instead of nil selections.
package htmldoc

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/rondayan42/requiem-wiki/internal/foundation"
)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Element is a single element within a Document.
type Element struct {
	sel *goquery.Selection
}

// Parse reads and parses HTML markup. Parsing is permissive: malformed input
// yields a best-effort tree, the same way browsers treat salvaged snapshots.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// ParseString parses HTML markup held in memory.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// SelectOne returns the first element matching the CSS selector, if any.
func (d *Document) SelectOne(selector string) foundation.Option[*Element] {
	return firstOf(d.doc.Find(selector))
}

// Select returns every element matching the CSS selector.
func (d *Document) Select(selector string) []*Element {
	return allOf(d.doc.Find(selector))
}

// ByID returns the element carrying the given id attribute, if any.
func (d *Document) ByID(id string) foundation.Option[*Element] {
	return firstOf(d.doc.Find("#" + id))
}

// TitleText returns the trimmed text of the document <title>, or "" when absent.
func (d *Document) TitleText() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// ContainsText reports whether any text node in the document matches re.
func (d *Document) ContainsText(re *regexp.Regexp) bool {
	found := false
	for _, root := range d.doc.Selection.Nodes {
		walkText(root, func(text string) bool {
			if re.MatchString(text) {
				found = true
				return false
			}
			return true
		})
		if found {
			break
		}
	}
	return found
}

// SelectOne returns the first descendant matching the CSS selector, if any.
func (e *Element) SelectOne(selector string) foundation.Option[*Element] {
	return firstOf(e.sel.Find(selector))
}

// Select returns every descendant matching the CSS selector.
func (e *Element) Select(selector string) []*Element {
	return allOf(e.sel.Find(selector))
}

// Attr returns the value of the named attribute, if present.
func (e *Element) Attr(name string) foundation.Option[string] {
	if v, ok := e.sel.Attr(name); ok {
		return foundation.Some(v)
	}
	return foundation.None[string]()
}

// SetAttr sets the named attribute on the element.
func (e *Element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

// Text returns the element's text content, trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// VisibleText returns the element's rendered text with each text node trimmed
// and joined by single spaces, suitable for a search index.
func (e *Element) VisibleText() string {
	var parts []string
	for _, n := range e.sel.Nodes {
		walkText(n, func(text string) bool {
			if t := strings.TrimSpace(text); t != "" {
				parts = append(parts, strings.Join(strings.Fields(t), " "))
			}
			return true
		})
	}
	return strings.Join(parts, " ")
}

// Remove detaches the element from its document.
func (e *Element) Remove() {
	e.sel.Remove()
}

// OuterHTML serializes the element, tags included.
func (e *Element) OuterHTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}

// ClassList returns the element's class attribute split on whitespace.
func (e *Element) ClassList() []string {
	return strings.Fields(e.sel.AttrOr("class", ""))
}

func firstOf(sel *goquery.Selection) foundation.Option[*Element] {
	if sel.Length() == 0 {
		return foundation.None[*Element]()
	}
	return foundation.Some(&Element{sel: sel.First()})
}

func allOf(sel *goquery.Selection) []*Element {
	out := make([]*Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Element{sel: s})
	})
	return out
}

// walkText visits every text node under n, skipping script and style subtrees.
// The visitor returns false to stop the walk.
func walkText(n *html.Node, visit func(string) bool) bool {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return true
	}
	if n.Type == html.TextNode {
		return visit(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkText(c, visit) {
			return false
		}
	}
	return true
}
