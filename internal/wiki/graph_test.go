package wiki

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureIsIdempotent(t *testing.T) {
	g := NewGraph()
	n1 := g.Ensure("Weapons")
	n1.Pages.Add("Long Sword")
	n2 := g.Ensure("Weapons")
	require.Same(t, n1, n2)
	require.True(t, n2.Pages.Has("Long Sword"))
}

func TestAddMemberUnionNotReplace(t *testing.T) {
	g := NewGraph()
	g.AddMember("Weapons", "Long Sword")
	g.AddMember("Weapons", "Long Sword")
	g.AddMember("Weapons", "Claw")
	require.Len(t, g["Weapons"].Pages, 2)
}

func TestAddSubcategoryCreatesChildNode(t *testing.T) {
	g := NewGraph()
	g.AddSubcategory("Equipment", "Shields")

	// No dangling references: every subcategory named by a node is a key.
	for name, node := range g {
		for sub := range node.Subcats {
			_, ok := g[sub]
			require.True(t, ok, "node %q references missing subcategory %q", name, sub)
		}
	}
	require.Contains(t, g, "Shields")
	require.Empty(t, g["Shields"].Pages)
}

func TestRoots(t *testing.T) {
	g := NewGraph()
	g.AddSubcategory("Equipment", "Shields")
	g.AddSubcategory("Equipment", "Armors")
	g.Ensure("quests") // standalone, lowercase to exercise fold sorting

	roots := g.Roots()
	require.Equal(t, []string{"Equipment", "quests"}, roots)
}

func TestRootsFallbackWhenAllAreChildren(t *testing.T) {
	g := NewGraph()
	// Mutual children: nobody is a root by the strict rule.
	g.AddSubcategory("A", "B")
	g.AddSubcategory("B", "A")

	roots := g.Roots()
	require.ElementsMatch(t, []string{"A", "B"}, roots)
}

func TestNamesSortedCaseInsensitive(t *testing.T) {
	g := NewGraph()
	g.Ensure("beta")
	g.Ensure("Alpha")
	g.Ensure("gamma")
	require.Equal(t, []string{"Alpha", "beta", "gamma"}, g.Names())
}
