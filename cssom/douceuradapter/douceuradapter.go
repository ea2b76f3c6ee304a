/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It parses CSS text with github.com/aymerick/douceur and flattens @media blocks,
and it embeds and extracts compiled CSS in HTML <style> elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/respstyle/cssom"
	"github.com/npillmayer/respstyle/statement"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'respstyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []Rule
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// Rules nested in at-rules are flattened.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	styles := &CSSStyles{}
	if sheet == nil {
		return styles
	}
	for _, r := range sheet.Rules {
		styles.rules = flatten(styles.rules, "", r)
	}
	return styles
}

func flatten(rules []Rule, media string, r *css.Rule) []Rule {
	if r.Kind == css.AtRule {
		if len(r.Rules) == 0 {
			tracer().Debugf("at-rule %s without nested rules ignored", r.Name)
			return rules
		}
		inner := strings.TrimSpace(r.Name + " " + strings.TrimSpace(r.Prelude))
		for _, nested := range r.Rules {
			rules = flatten(rules, inner, nested)
		}
		return rules
	}
	return append(rules, Rule{media: media, rule: r})
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceuradapter: %w", err)
	}
	return Wrap(sheet), nil
}

// FromGroup renders and parses the statements of g.
func FromGroup(g *statement.Group) (*CSSStyles, error) {
	return Parse(g.String())
}

// Verify parses the rendered statements and checks them rule by rule.
func Verify(stmts []statement.Statement) error {
	var sb strings.Builder
	for i, s := range stmts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.String())
	}
	sheet, err := Parse(sb.String())
	if err != nil {
		return err
	}
	if mm := cssom.Check(stmts, sheet); len(mm) > 0 {
		return mm[0]
	}
	return nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if o, ok := other.(*CSSStyles); ok {
		sheet.rules = append(sheet.rules, o.rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.rules = append(sheet.rules, copyRule(r))
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	for i := range sheet.rules {
		rules[i] = sheet.rules[i]
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	media string
	rule  *css.Rule
}

func copyRule(r cssom.Rule) Rule {
	cr := &css.Rule{Kind: css.QualifiedRule, Prelude: r.Selector()}
	for _, p := range r.Properties() {
		cr.Declarations = append(cr.Declarations, &css.Declaration{
			Property:  p,
			Value:     r.Value(p),
			Important: r.IsImportant(p),
		})
	}
	return Rule{media: r.Media(), rule: cr}
}

// Media returns the at-rule the rule has been nested in.
func (r Rule) Media() string {
	return r.media
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.rule.Prelude)
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// For repeated properties the last one wins.
func (r Rule) Value(key string) string {
	if d := r.find(key); d != nil {
		return d.Value
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.find(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) find(key string) *css.Declaration {
	decl := r.rule.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i]
		}
	}
	return nil
}

var _ cssom.Rule = Rule{}

// --- HTML ------------------------------------------------------------------

// StyleElement creates a <style> element containing text.
// If id is non-empty, it is set as the element's id attribute.
func StyleElement(id string, text string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     atom.Style.String(),
	}
	if id != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets, err := extractStyles(head)
	if err != nil {
		return sheets, err
	}
	more, err := extractStyles(body)
	return append(sheets, more...), err
}

func extractStyles(h *html.Node) ([]*CSSStyles, error) {
	if h == nil {
		return nil, nil
	}
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style {
			continue
		}
		var text strings.Builder
		for t := ch.FirstChild; t != nil; t = t.NextSibling {
			if t.Type == html.TextNode {
				text.WriteString(t.Data)
			}
		}
		sheet, err := Parse(text.String())
		if err != nil {
			return sheets, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
