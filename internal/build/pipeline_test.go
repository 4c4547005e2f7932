package build

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rondayan42/requiem-wiki/internal/config"
)

func articleMarkup(title, body, catlinks string) string {
	return `<html><head><title>` + title + ` - Requiem Wiki</title></head><body>
<div id="content">
  <h1 class="firstHeading">` + title + `</h1>
  <div id="bodyContent">
    <p>` + body + `</p>
    ` + catlinks + `
  </div>
</div>
</body></html>`
}

func catlinksBlock(categories ...string) string {
	var b strings.Builder
	b.WriteString(`<div id="catlinks">`)
	for _, c := range categories {
		b.WriteString(`<a href="Category_` + c + `.html" title="Category:` + c + `">` + c + `</a>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

const weaponsCategoryMarkup = `<html><head><title>Category:Weapons - Requiem Wiki</title></head>
<body class="mediawiki ns-14 ltr">
<div id="content">
  <h1 class="firstHeading">Category:Weapons</h1>
  <div id="bodyContent">
    <div id="mw-subcategories"><ul>
      <li><a href="Category_Swords.html" title="Category:Swords">Swords</a></li>
    </ul></div>
    <div id="mw-pages"><ul>
      <li><a href="Long_Sword.html" title="Long Sword">Long Sword</a></li>
    </ul></div>
  </div>
</div>
</body></html>`

const serverDownMarkup = `<html><head><title>Error code 503</title></head><body>
<div id="content"><h1 class="firstHeading">Error</h1><div id="bodyContent">down</div></div>
</body></html>`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// fixtureConfig lays out two priority-ordered source roots and returns a
// config pointing the output at <tmp>/repo/site.
func fixtureConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	tmp := t.TempDir()
	root1 := filepath.Join(tmp, "root1")
	root2 := filepath.Join(tmp, "root2")

	writeFixture(t, root1, "Long_Sword.html", articleMarkup("Long Sword", "A fine blade.", ""))
	writeFixture(t, root1, "Ruby_Ring.html", articleMarkup("Ruby Ring", "A shiny ring.", catlinksBlock("Jewelry")))
	writeFixture(t, root1, "Category_Weapons.html", weaponsCategoryMarkup)
	writeFixture(t, root1, "Error_503.html", serverDownMarkup)
	// Later root loses the duplicate-title race.
	writeFixture(t, root2, "Long_Sword.html", articleMarkup("Long Sword", "SECOND COPY", ""))

	siteDir := filepath.Join(tmp, "repo", "site")
	cfg := &config.Config{
		Sources: []config.Source{
			{Path: root1},
			{Path: root2},
		},
		Output:    config.OutputConfig{Directory: siteDir},
		Templates: config.TemplateConfig{Dir: filepath.Join(tmp, "no-such-templates")},
	}
	return cfg, siteDir
}

func readSiteFile(t *testing.T, siteDir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(siteDir, filepath.FromSlash(rel)))
	require.NoError(t, err, rel)
	return string(data)
}

func TestRunEndToEnd(t *testing.T) {
	cfg, siteDir := fixtureConfig(t)
	require.NoError(t, Run(context.Background(), cfg, Options{}))

	// First root wins the duplicate title; the later copy is dropped whole.
	sword := readSiteFile(t, siteDir, "pages/L/Long_Sword.html")
	require.Contains(t, sword, "A fine blade.")
	require.NotContains(t, sword, "SECOND COPY")

	// Long Sword is a member only via the dedicated category page, which
	// feeds the graph but not the per-article index: no breadcrumb strip.
	require.NotContains(t, sword, `class="breadcrumbs"`)

	// Ruby Ring carries an inline catlink, so its rewritten page links back
	// to the category through the two-level prefix.
	ring := readSiteFile(t, siteDir, "pages/R/Ruby_Ring.html")
	require.Contains(t, ring, `class="breadcrumbs"`)
	require.Contains(t, ring, `href="../../categories/Category_Jewelry.html"`)

	// Both renderings of the Weapons category list the resolved member.
	nested := readSiteFile(t, siteDir, "categories/Category_Weapons.html")
	require.Contains(t, nested, `href="../pages/L/Long_Sword.html"`)
	require.Contains(t, nested, `href="Category_Swords.html"`)
	rooted := readSiteFile(t, siteDir, "Category_Weapons.html")
	require.Contains(t, rooted, `href="pages/L/Long_Sword.html"`)

	// The referenced subcategory materialized even without its own snapshot.
	require.FileExists(t, filepath.Join(siteDir, "categories", "Category_Swords.html"))

	// Featured roots render in the category index even when empty here.
	catIndex := readSiteFile(t, siteDir, "Categories.html")
	require.Contains(t, catIndex, "Featured")
	require.Contains(t, catIndex, `href="categories/Category_Quests.html"`)

	// The provider error page left no trace.
	search := readSiteFile(t, siteDir, "search-index.json")
	require.Contains(t, search, `"Long Sword"`)
	require.NotContains(t, search, "Error code 503")
	js := readSiteFile(t, siteDir, "search-index.js")
	require.True(t, strings.HasPrefix(js, "window.SEARCH_INDEX="))
	require.True(t, strings.HasSuffix(js, ";"))

	az := readSiteFile(t, siteDir, "A-Z.html")
	require.Contains(t, az, `href="pages/R/Ruby_Ring.html"`)

	// Home page plus the companion one level above the site tree.
	require.FileExists(t, filepath.Join(siteDir, "index.html"))
	companion := readSiteFile(t, filepath.Dir(siteDir), "index.html")
	require.Contains(t, companion, `href="site/A-Z.html"`)

	require.FileExists(t, filepath.Join(siteDir, "assets", "style.css"))
	require.FileExists(t, filepath.Join(siteDir, "assets", "search.js"))

	// Report emission is opt-in.
	require.NoFileExists(t, filepath.Join(siteDir, "build-report.json"))
}

func TestRunWritesReport(t *testing.T) {
	cfg, siteDir := fixtureConfig(t)
	require.NoError(t, Run(context.Background(), cfg, Options{WriteReport: true}))

	report := readSiteFile(t, siteDir, "build-report.json")
	require.Contains(t, report, `"outcome": "success"`)
	require.Contains(t, report, `"articles"`)
}

// snapshotTree maps site-relative paths to file contents for tree comparison.
func snapshotTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestRunIdempotent(t *testing.T) {
	cfg, siteDir := fixtureConfig(t)
	opts := Options{}

	require.NoError(t, Run(context.Background(), cfg, opts))
	first := snapshotTree(t, siteDir)
	require.NoError(t, Run(context.Background(), cfg, opts))
	second := snapshotTree(t, siteDir)

	require.Equal(t, first, second)
}

func TestRunMissingRootSkipped(t *testing.T) {
	cfg, siteDir := fixtureConfig(t)
	cfg.Sources = append(cfg.Sources, config.Source{Path: filepath.Join(t.TempDir(), "gone")})

	require.NoError(t, Run(context.Background(), cfg, Options{}))
	require.FileExists(t, filepath.Join(siteDir, "pages", "L", "Long_Sword.html"))
}

func TestRunCanceled(t *testing.T) {
	cfg, _ := fixtureConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, cfg, Options{})
	require.Error(t, err)
}
