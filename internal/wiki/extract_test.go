package wiki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rondayan42/requiem-wiki/internal/htmldoc"
)

func parseDoc(t *testing.T, markup string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.ParseString(markup)
	require.NoError(t, err)
	return doc
}

const articleMarkup = `<html><head><title>Long Sword - Requiem Wiki</title></head><body>
<div id="content">
<h1 class="firstHeading">Long Sword</h1>
<div id="bodyContent">
<div id="jump-to-nav">Jump to: navigation, search</div>
<p>A <a href="/wiki/Blade.html">blade</a> of <a href="https://example.org/ext.html">foreign</a> origin.</p>
<table class="toc"><tr><td>Contents</td></tr></table>
<div class="printfooter">Retrieved from ...</div>
<div id="catlinks"><a href="Category_Weapons.html" title="Category:Weapons">Weapons</a></div>
</div>
</div>
</body></html>`

func TestExtractArticle(t *testing.T) {
	doc := parseDoc(t, articleMarkup)
	article, ok := Extract(doc).Get()
	require.True(t, ok)

	require.Equal(t, "Long Sword", article.Title)

	// Chrome is stripped from the serialized body.
	require.NotContains(t, article.BodyMarkup, "jump-to-nav")
	require.NotContains(t, article.BodyMarkup, "printfooter")
	require.NotContains(t, article.BodyMarkup, "catlinks")
	require.NotContains(t, article.BodyMarkup, "toc")

	// Local links flatten to base filenames, external links stay.
	require.Contains(t, article.BodyMarkup, `href="Blade.html"`)
	require.Contains(t, article.BodyMarkup, `href="https://example.org/ext.html"`)

	require.Contains(t, article.PlainText, "blade")
	require.NotContains(t, article.PlainText, "navigation")
}

func TestInlineCategoriesCollectedBeforeExtract(t *testing.T) {
	doc := parseDoc(t, articleMarkup)
	cats := InlineCategories(doc)
	require.Equal(t, []string{"Weapons"}, cats)

	// After extraction the catlinks region is gone.
	_, ok := Extract(doc).Get()
	require.True(t, ok)
	require.Empty(t, InlineCategories(doc))
}

func TestExtractContentFallbackChain(t *testing.T) {
	// No #content wrapper; bare #bodyContent with a top-level heading.
	markup := `<html><body><h1>Elixirs</h1><div id="bodyContent"><p>Brew them.</p></div></body></html>`
	article, ok := Extract(parseDoc(t, markup)).Get()
	require.True(t, ok)
	require.Equal(t, "Elixirs", article.Title)
	require.Contains(t, article.BodyMarkup, "Brew them.")
}

func TestExtractRejectsStructurelessDocuments(t *testing.T) {
	cases := map[string]string{
		"no content region": `<html><body><h1>Orphan</h1><p>text</p></body></html>`,
		"no heading":        `<html><body><div id="bodyContent"><p>text</p></div></body></html>`,
	}
	for name, markup := range cases {
		t.Run(name, func(t *testing.T) {
			require.True(t, Extract(parseDoc(t, markup)).IsNone())
		})
	}
}

func TestIsErrorPage(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   bool
	}{
		{"origin 5xx", `<html><head><title>Error code 503</title></head><body></body></html>`, true},
		{"server down", `<html><head><title>requiem-wiki.org | Web server is down</title></head><body></body></html>`, true},
		{"french 404", `<html><head><title>Erreur 404 - Free Pages Personnelles</title></head><body></body></html>`, true},
		{"cf wrapper", `<html><head><title>Attention Required!</title></head><body><div id="cf-wrapper"></div></body></html>`, true},
		{"ray id text", `<html><body><p>Cloudflare Ray ID: 4f2a</p></body></html>`, true},
		{"real article", articleMarkup, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsErrorPage(parseDoc(t, tc.markup)))
		})
	}
}

func TestErrorDetectionIsCaseInsensitive(t *testing.T) {
	markup := `<html><head><title>WEB SERVER IS DOWN</title></head><body></body></html>`
	require.True(t, IsErrorPage(parseDoc(t, markup)))
}

func TestExtractPlainTextIsWhitespaceJoined(t *testing.T) {
	markup := `<html><body><h1>Stats</h1><div id="bodyContent"><p>a
	b</p><p>  c  </p></div></body></html>`
	article, ok := Extract(parseDoc(t, markup)).Get()
	require.True(t, ok)
	require.False(t, strings.Contains(article.PlainText, "\n"))
	require.Contains(t, article.PlainText, "a b c")
}
