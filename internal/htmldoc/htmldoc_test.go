package htmldoc

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleMarkup = `<html><head><title>  Sample Page  </title></head><body>
<div id="content" class="mw-body ltr">
  <h1 class="firstHeading">Sample</h1>
  <p>First <a href="Other.html">other</a> paragraph.</p>
  <script>var hidden = "Cloudflare Ray ID";</script>
  <ul id="list"><li>one</li><li>two</li></ul>
</div>
</body></html>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(sampleMarkup)
	require.NoError(t, err)
	return doc
}

func TestTitleText(t *testing.T) {
	doc := parseSample(t)
	require.Equal(t, "Sample Page", doc.TitleText())
}

func TestSelectOneAndByID(t *testing.T) {
	doc := parseSample(t)

	h1, ok := doc.SelectOne("h1.firstHeading").Get()
	require.True(t, ok)
	require.Equal(t, "Sample", h1.Text())

	require.True(t, doc.ByID("content").IsSome())
	require.True(t, doc.ByID("nope").IsNone())
	require.True(t, doc.SelectOne("article").IsNone())
}

func TestSelectAll(t *testing.T) {
	doc := parseSample(t)
	items := doc.Select("#list li")
	require.Len(t, items, 2)
	require.Equal(t, "one", items[0].Text())
	require.Equal(t, "two", items[1].Text())
}

func TestAttrAndSetAttr(t *testing.T) {
	doc := parseSample(t)
	a, ok := doc.SelectOne("a").Get()
	require.True(t, ok)

	require.Equal(t, "Other.html", a.Attr("href").UnwrapOr(""))
	require.True(t, a.Attr("rel").IsNone())

	a.SetAttr("href", "rewritten.html")
	require.Equal(t, "rewritten.html", a.Attr("href").UnwrapOr(""))
}

func TestClassList(t *testing.T) {
	doc := parseSample(t)
	el, ok := doc.ByID("content").Get()
	require.True(t, ok)
	require.Equal(t, []string{"mw-body", "ltr"}, el.ClassList())
}

func TestContainsTextSkipsScripts(t *testing.T) {
	doc := parseSample(t)
	// The ray-id string only occurs inside a script tag, which is not text.
	require.False(t, doc.ContainsText(regexp.MustCompile(`Cloudflare Ray ID`)))
	require.True(t, doc.ContainsText(regexp.MustCompile(`First`)))
}

func TestVisibleText(t *testing.T) {
	doc := parseSample(t)
	el, ok := doc.ByID("content").Get()
	require.True(t, ok)

	text := el.VisibleText()
	require.Contains(t, text, "First")
	require.Contains(t, text, "other")
	require.Contains(t, text, "one two")
	require.NotContains(t, text, "hidden")
}

func TestRemoveAndOuterHTML(t *testing.T) {
	doc := parseSample(t)
	list, ok := doc.ByID("list").Get()
	require.True(t, ok)
	list.Remove()

	el, ok := doc.ByID("content").Get()
	require.True(t, ok)
	markup, err := el.OuterHTML()
	require.NoError(t, err)
	require.False(t, strings.Contains(markup, "<li>"))
	require.True(t, strings.Contains(markup, "<h1"))
}
