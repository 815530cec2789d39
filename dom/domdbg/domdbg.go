/*
Package domdbg implements helpers to debug styles and style caches.

Styles and caches are printed as trees:

	Style
	└── &:hover
		├── color:#ff0000ff;
		└── font-size:12px;

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"testing"

	"github.com/npillmayer/stylist/dom/style"
	"github.com/npillmayer/stylist/dom/style/stylecache"
	tp "github.com/xlab/treeprint"
)

// StyleTree returns a tree with one branch per rule of st and the properties
// of a rule as leaves.
func StyleTree(st style.Style) tp.Tree {
	tree := tp.NewWithRoot("Style")
	addRules(tree, st)
	return tree
}

// CacheTree returns a tree with one branch per materialized Style of c, in
// order of materialization, labelled with the class of the Style.
func CacheTree(c *stylecache.Cache) tp.Tree {
	stats := c.Stats()
	tree := tp.NewWithRoot(fmt.Sprintf("Cache(len=%d hits=%d misses=%d collisions=%d)",
		c.Len(), stats.Hits, stats.Misses, stats.Collisions))
	for _, e := range c.Entries() {
		branch := tree.AddMetaBranch(fmt.Sprintf("%016x", e.Fingerprint), e.Class)
		addRules(branch, e.Style.Resolve(e.Class))
	}
	return tree
}

func addRules(tree tp.Tree, st style.Style) {
	for _, r := range st.Rules() {
		branch := tree.AddBranch(r.Selector().String())
		for _, p := range r.Properties() {
			branch.AddNode(p.String())
		}
	}
}

// Fprint writes the tree of a Style to w.
func Fprint(w io.Writer, st style.Style) error {
	_, err := io.WriteString(w, StyleTree(st).String())
	return err
}

// Log is a helper for testing. It writes the tree of cache c to the test log.
func Log(t testing.TB, c *stylecache.Cache) {
	t.Helper()
	t.Logf("style cache =\n%s", CacheTree(c).String())
}
