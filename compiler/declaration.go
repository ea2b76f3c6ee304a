package compiler

import (
	"strings"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/shorthand"
)

// Mode tells a declaration function which kind of result is requested.
type Mode int

const (
	// ModeString requests a declaration block as Text.
	ModeString Mode = iota
	// ModeKeyValue requests Properties; it is used when property selectors
	// are active.
	ModeKeyValue
)

func (m Mode) String() string {
	if m == ModeKeyValue {
		return "key_value_pair"
	}
	return "string"
}

// Declaration is the result of a declaration function. It is either Text or
// Properties; nil means there is nothing to emit.
type Declaration interface {
	isDeclaration()
}

// Text is a declaration block, e.g. "color: red;".
type Text string

func (Text) isDeclaration() {}

// Property is a single property declaration.
type Property struct {
	Name  string
	Value string
}

// String renders p as "name: value;".
func (p Property) String() string {
	return p.Name + ": " + p.Value + ";"
}

// Properties is an ordered list of property declarations.
type Properties []Property

func (Properties) isDeclaration() {}

// String renders all properties, separated by a single space.
func (ps Properties) String() string {
	fragments := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.Name == "" {
			continue
		}
		fragments = append(fragments, p.String())
	}
	return strings.Join(fragments, " ")
}

// Flag returns a copy of ps with " !important" appended to the values of
// flagged properties.
func (ps Properties) Flag(imp shorthand.Importance) Properties {
	r := make(Properties, len(ps))
	for i, p := range ps {
		if imp.For(p.Name) && !strings.HasSuffix(p.Value, "!important") {
			p.Value += " !important"
		}
		r[i] = p
	}
	return r
}

// DeclarationParams are handed to a declaration function for a single
// breakpoint and state.
type DeclarationParams struct {
	Value      any                  // the explicit entry of the attribute tree
	Resolved   any                  // the merged entry after inheritance
	Attr       attr.Tree[any]       // the complete attribute tree
	Default    any                  // the merged default value after inheritance
	Important  shorthand.Importance // resolved !important flags
	Mode       Mode
	Breakpoint attr.Breakpoint
	State      attr.State
	Extras     map[string]any
}

// DeclarationFunc produces the declaration block for one breakpoint and
// state. It must be free of side effects.
type DeclarationFunc func(DeclarationParams) Declaration

// SelectorParams are handed to a selector function for each statement.
type SelectorParams struct {
	Attr       attr.Tree[any]
	Selector   string
	Breakpoint attr.Breakpoint
	State      attr.State
	// Property is the property the statement is scoped to, or empty for the
	// ungrouped declarations.
	Property string
	Extras   map[string]any
}

// SelectorFunc may rewrite the selector of a statement before it is
// accumulated.
type SelectorFunc func(SelectorParams) string

func isEmpty(d Declaration) bool {
	switch x := d.(type) {
	case Text:
		return strings.TrimSpace(string(x)) == ""
	case Properties:
		return x.String() == ""
	}
	return true
}
