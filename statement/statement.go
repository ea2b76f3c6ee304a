/*
Package statement accumulates CSS statements and renders them.

A statement is a ruleset (selector plus declaration block), optionally wrapped
in an at-rule. Statements sharing the same at-rule and selector form one
ruleset; Group merges them, keeping the position of their first occurrence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package statement

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.statement'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.statement")
}

// Statement is a single CSS statement. An empty AtRules means no wrapping
// at-rule; an empty Selector means the declaration is emitted bare.
type Statement struct {
	AtRules     string `json:"atRules,omitempty" yaml:"atRules,omitempty"`
	Selector    string `json:"selector" yaml:"selector"`
	Declaration string `json:"declaration" yaml:"declaration"`
}

// String renders a single statement.
func (s Statement) String() string {
	var sb strings.Builder
	s.writeTo(&sb)
	return sb.String()
}

func (s Statement) writeTo(sb *strings.Builder) {
	if s.AtRules != "" {
		sb.WriteString(s.AtRules)
		sb.WriteString(" {")
	}
	if s.Selector == "" {
		sb.WriteString(s.Declaration)
	} else {
		sb.WriteString(s.Selector)
		sb.WriteString(" {")
		sb.WriteString(s.Declaration)
		sb.WriteString("}")
	}
	if s.AtRules != "" {
		sb.WriteString("}")
	}
}

type groupKey struct {
	atRules  string
	selector string
}

// Group is an ordered merge buffer of statements. Statements are merged if
// they share both at-rules and selector; the pair is compared field by
// field, so e.g. at-rules "a" with selector "b c" and at-rules "a b" with
// selector "c" stay apart. The zero value is an empty group ready to use.
// A Group is not safe for concurrent use.
type Group struct {
	index      map[groupKey]int
	statements []Statement
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add adds s to the group. If a statement with the same at-rule and
// selector is present already, the declaration of s is appended to it,
// separated by a single space.
func (g *Group) Add(s Statement) {
	if g.index == nil {
		g.index = make(map[groupKey]int)
	}
	key := groupKey{atRules: s.AtRules, selector: s.Selector}
	if i, ok := g.index[key]; ok {
		tracer().Debugf("merging declaration into ruleset %q", s.Selector)
		g.statements[i].Declaration += " " + s.Declaration
		return
	}
	g.index[key] = len(g.statements)
	g.statements = append(g.statements, s)
}

// AddAll adds statements in order.
func (g *Group) AddAll(statements ...Statement) {
	for _, s := range statements {
		g.Add(s)
	}
}

// Len returns the number of distinct rulesets.
func (g *Group) Len() int {
	return len(g.statements)
}

// Statements returns the merged statements in order of first occurrence.
// The returned slice is a copy.
func (g *Group) Statements() []Statement {
	r := make([]Statement, len(g.statements))
	copy(r, g.statements)
	return r
}

// String renders all statements, separated by a single space.
func (g *Group) String() string {
	var sb strings.Builder
	for i, s := range g.statements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s.writeTo(&sb)
	}
	return sb.String()
}
