/*
Package attrdbg implements helpers to debug attribute trees and compiled
statements.

Dumps are rendered as text trees with github.com/xlab/treeprint.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package attrdbg

import (
	"fmt"
	"io"
	"sort"
	"testing"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/statement"
	tp "github.com/xlab/treeprint"
)

// Tree renders an attribute tree, breakpoints and states in cascade order.
// Map values are expanded into sub-branches with sorted keys.
func Tree[T any](t attr.Tree[T], o attr.Order) string {
	p := tp.New()
	var bp attr.Breakpoint
	var branch tp.Tree
	for _, k := range t.Keys(o) {
		if branch == nil || k.Breakpoint != bp {
			bp = k.Breakpoint
			branch = p.AddBranch(string(bp))
		}
		v, _ := t.Get(k.Breakpoint, k.State)
		addValue(branch, string(k.State), v)
	}
	return p.String()
}

func addValue(p tp.Tree, name string, v any) {
	m, ok := attr.StringMap(v)
	if !ok {
		p.AddNode(fmt.Sprintf("%s: %v", name, v))
		return
	}
	b := p.AddBranch(name)
	for _, key := range sortedKeys(m) {
		addValue(b, key, m[key])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Cascade renders the lookup chains of state st for every breakpoint of an
// order, most specific first.
func Cascade(o attr.Order, st attr.State) string {
	p := tp.New()
	for _, bp := range o.Breakpoints {
		b := p.AddBranch(string(bp))
		for _, k := range o.Chain(attr.At(bp, st)) {
			b.AddNode(k.String())
		}
	}
	return p.String()
}

// Statements renders statements grouped by at-rule.
func Statements(stmts []statement.Statement) string {
	p := tp.New()
	var rules string
	var branch tp.Tree
	for i, s := range stmts {
		if i == 0 || s.AtRules != rules {
			rules = s.AtRules
			name := rules
			if name == "" {
				name = "(no at-rule)"
			}
			branch = p.AddBranch(name)
		}
		sel := s.Selector
		if sel == "" {
			sel = "(no selector)"
		}
		branch.AddBranch(sel).AddNode(s.Declaration)
	}
	return p.String()
}

// Dump writes a tree of an attribute value to w, prefixed by a header.
func Dump[T any](w io.Writer, header string, t attr.Tree[T], o attr.Order) {
	fmt.Fprintf(w, "%s\n%s", header, Tree(t, o))
}

// Log is a helper for testing. It logs a tree of t via tb.Log.
func Log[T any](tb testing.TB, t attr.Tree[T], o attr.Order) {
	tb.Helper()
	tb.Log("\n" + Tree(t, o))
}
