package wiki

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveVerbatim(t *testing.T) {
	r := NewResolver(map[string]string{"Long Sword": "pages/L/Long_Sword.html"})
	url, ok := r.Resolve("Long Sword").Get()
	require.True(t, ok)
	require.Equal(t, "pages/L/Long_Sword.html", url)
}

func TestResolveUnderscoreSpaceSymmetry(t *testing.T) {
	r := NewResolver(map[string]string{"Foo_Bar": "pages/F/Foo_Bar.html"})

	// Space variant of an underscored title resolves to the same URL.
	url, ok := r.Resolve("Foo Bar").Get()
	require.True(t, ok)
	require.Equal(t, "pages/F/Foo_Bar.html", url)

	// And the other direction.
	r2 := NewResolver(map[string]string{"Foo Bar": "pages/F/Foo_Bar.html"})
	url2, ok := r2.Resolve("Foo_Bar").Get()
	require.True(t, ok)
	require.Equal(t, url, url2)
}

func TestResolveMiss(t *testing.T) {
	r := NewResolver(map[string]string{"Foo Bar": "pages/F/Foo_Bar.html"})
	require.True(t, r.Resolve("Baz").IsNone())
}
