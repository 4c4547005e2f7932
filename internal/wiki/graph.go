// Package wiki holds the domain core of the archive rebuild: title
// normalization, article extraction, the category graph built from three
// independent signals, and title-to-URL resolution.
package wiki

import (
	"sort"
	"strings"

	"github.com/rondayan42/requiem-wiki/internal/util/sets"
)

// Node is one category: its child categories and its member article titles.
// Both sets grow by idempotent union; repeated enrichment from any signal
// source never replaces earlier writes.
type Node struct {
	Subcats sets.Set[string]
	Pages   sets.Set[string]
}

// Graph maps canonical category names (no "Category:" prefix) to nodes.
//
// Invariant: every name in any node's Subcats set is itself a key in the
// graph, so rendering never dereferences a missing category.
type Graph map[string]*Node

// NewGraph returns an empty category graph.
func NewGraph() Graph {
	return make(Graph)
}

// Ensure returns the node for name, creating an empty one on first reference.
func (g Graph) Ensure(name string) *Node {
	if n, ok := g[name]; ok {
		return n
	}
	n := &Node{Subcats: sets.New[string](), Pages: sets.New[string]()}
	g[name] = n
	return n
}

// AddMember records a member article title under the category, creating the
// node if absent.
func (g Graph) AddMember(category, title string) {
	g.Ensure(category).Pages.Add(title)
}

// AddSubcategory records child as a subcategory of parent. Both nodes are
// created if absent, keeping the no-dangling-reference invariant without a
// separate completion step.
func (g Graph) AddSubcategory(parent, child string) {
	g.Ensure(parent).Subcats.Add(child)
	g.Ensure(child)
}

// Roots returns the categories that no other category lists as a subcategory,
// sorted case-insensitively. If every category is somebody's child (mutual
// cycles), all categories are treated as roots rather than returning nothing.
func (g Graph) Roots() []string {
	children := sets.New[string]()
	for _, node := range g {
		for sub := range node.Subcats {
			children.Add(sub)
		}
	}
	var roots []string
	for name := range g {
		if !children.Has(name) {
			roots = append(roots, name)
		}
	}
	if len(roots) == 0 {
		for name := range g {
			roots = append(roots, name)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		return strings.ToLower(roots[i]) < strings.ToLower(roots[j])
	})
	return roots
}

// Names returns every category name in the graph, sorted case-insensitively.
func (g Graph) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
