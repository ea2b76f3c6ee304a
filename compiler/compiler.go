package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/breakpoint"
	"github.com/npillmayer/respstyle/selector"
	"github.com/npillmayer/respstyle/shorthand"
	"github.com/npillmayer/respstyle/statement"
	"go.uber.org/multierr"
)

// Errors for violated input contracts.
var (
	ErrNoDeclarationFunc = errors.New("compiler: no declaration function")
	ErrUnknownBreakpoint = errors.New("compiler: unknown breakpoint")
	ErrUnknownState      = errors.New("compiler: unknown state")
)

// Args are the inputs of a compilation.
type Args struct {
	Attr     attr.Tree[any] // attribute values per breakpoint and state
	Defaults attr.Tree[any] // default attribute values, optional

	Selectors   attr.Tree[string] // selector per breakpoint and state
	Declaration DeclarationFunc   // required
	Selector    SelectorFunc      // optional selector post-processor

	// PropertySelectors override the selector of single properties. The
	// property names may be shorthands of Shorthands.
	PropertySelectors attr.Tree[map[string]string]
	Shorthands        shorthand.Map
	Important         shorthand.Important

	AtRules            string // if set, used for every statement instead of derived at-rules
	OrderClass         string // e.g. ".et_pb_text_0"
	InsideStickyModule bool
	StickyPrefix       string // theme-builder root scope; empty means the default

	Breakpoints *breakpoint.Settings // nil means breakpoint.Default()
	Extras      map[string]any       // passed through to callbacks
}

// CompileString compiles args into CSS text.
func CompileString(args Args) (string, error) {
	g := statement.NewGroup()
	if err := Into(g, args); err != nil {
		return "", err
	}
	return g.String(), nil
}

// CompileStatements compiles args into a list of merged statements.
func CompileStatements(args Args) ([]statement.Statement, error) {
	g := statement.NewGroup()
	if err := Into(g, args); err != nil {
		return nil, err
	}
	return g.Statements(), nil
}

// Into compiles args and adds the statements to g. Clients may compile
// several attribute trees into a single group to have their rulesets
// merged. If an error is returned, g is left unchanged.
func Into(g *statement.Group, args Args) error {
	if args.Breakpoints == nil {
		args.Breakpoints = breakpoint.Default()
	}
	if err := args.validate(); err != nil {
		return err
	}
	if args.Attr.Empty() {
		return nil
	}
	c := newCompilation(args)
	for _, k := range args.Attr.Keys(c.order) {
		c.compilePair(g, k)
	}
	return nil
}

func (args Args) validate() error {
	var err error
	if args.Declaration == nil {
		err = multierr.Append(err, ErrNoDeclarationFunc)
	}
	o := args.Breakpoints.AttrOrder()
	err = multierr.Append(err, checkTree(args.Attr, o, "attribute"))
	err = multierr.Append(err, checkTree(args.Selectors, o, "selector"))
	err = multierr.Append(err, checkTree(args.PropertySelectors, o, "property selector"))
	return err
}

func checkTree[T any](t attr.Tree[T], o attr.Order, name string) error {
	var err error
	for bp, states := range t {
		if o.Index(bp) < 0 {
			err = multierr.Append(err, fmt.Errorf("%w %q in %s tree", ErrUnknownBreakpoint, bp, name))
		}
		for st := range states {
			if o.StateIndex(st) < 0 {
				err = multierr.Append(err, fmt.Errorf("%w %q at %s in %s tree", ErrUnknownState, st, bp, name))
			}
		}
	}
	return err
}

// compilation holds the per-call state derived from Args before iteration.
type compilation struct {
	args       Args
	order      attr.Order
	selectors  attr.Tree[string]
	properties attr.Tree[map[string]string]
	important  shorthand.Important
	generator  selector.Generator
	mode       Mode
	values     attr.Resolver[any]
	byProperty map[string]attr.Tree[string]
}

func newCompilation(args Args) *compilation {
	order := args.Breakpoints.AttrOrder()
	c := &compilation{
		args:  args,
		order: order,
		// placeholders are expanded once, ahead of iteration
		selectors: selector.ExpandHoverPlaceholders(args.Selectors),
		properties: shorthand.Unpack(
			selector.ExpandPropertyHoverPlaceholders(args.PropertySelectors),
			args.Shorthands),
		important: shorthand.Expand(args.Important, args.Shorthands),
		generator: selector.Generator{
			Base: order.BaseBreakpoint(),
			Sticky: selector.StickyOptions{
				OrderClass:   args.OrderClass,
				InsideSticky: args.InsideStickyModule,
				Prefix:       args.StickyPrefix,
			},
		},
		values:     attr.Values(order),
		byProperty: make(map[string]attr.Tree[string]),
	}
	if !c.properties.Empty() {
		c.mode = ModeKeyValue
	}
	return c
}

func (c *compilation) compilePair(g *statement.Group, k attr.Key) {
	bp, st := k.Breakpoint, k.State
	sel := c.generator.Resolve(c.selectors, bp, st)
	value, _ := c.args.Attr.Get(bp, st)
	decl := c.args.Declaration(DeclarationParams{
		Value:      value,
		Resolved:   c.values.Resolve(c.args.Attr, k, attr.Merged, nil),
		Attr:       c.args.Attr,
		Default:    c.values.Resolve(c.args.Defaults, k, attr.Merged, nil),
		Important:  c.important.Resolve(bp, st, c.order),
		Mode:       c.mode,
		Breakpoint: bp,
		State:      st,
		Extras:     c.args.Extras,
	})
	if isEmpty(decl) {
		tracer().Debugf("%s: empty declaration, skipped", k)
		return
	}
	atRules := c.atRules(bp)
	if props, ok := decl.(Properties); ok && c.mode == ModeKeyValue {
		for _, grp := range c.partition(props, bp, st) {
			gsel := sel
			if grp.property != "" {
				gsel = c.propertySelector(grp.property, bp, st, sel)
			}
			g.Add(statement.Statement{
				AtRules:     atRules,
				Selector:    c.postprocess(gsel, k, grp.property),
				Declaration: strings.Join(grp.fragments, " "),
			})
		}
		return
	}
	var text string
	switch d := decl.(type) {
	case Text:
		text = string(d)
	case Properties:
		text = d.String()
	}
	g.Add(statement.Statement{
		AtRules:     atRules,
		Selector:    c.postprocess(sel, k, ""),
		Declaration: text,
	})
}

func (c *compilation) atRules(bp attr.Breakpoint) string {
	if c.args.AtRules != "" {
		return c.args.AtRules
	}
	return c.args.Breakpoints.AtRules(bp).WithDefault("")
}

func (c *compilation) postprocess(sel string, k attr.Key, property string) string {
	if c.args.Selector == nil {
		return sel
	}
	return c.args.Selector(SelectorParams{
		Attr:       c.args.Attr,
		Selector:   sel,
		Breakpoint: k.Breakpoint,
		State:      k.State,
		Property:   property,
		Extras:     c.args.Extras,
	})
}

// propertyGroup collects the declaration fragments scoped to one property
// selector. The ungrouped declarations have an empty property name.
type propertyGroup struct {
	property  string
	fragments []string
}

// partition splits props into groups in order of first appearance: one group
// per property with an active selector override and one for the rest.
func (c *compilation) partition(props Properties, bp attr.Breakpoint, st attr.State) []*propertyGroup {
	active := make(map[string]bool)
	for _, name := range shorthand.ActiveProperties(c.properties, bp, st, c.order) {
		active[name] = true
	}
	var groups []*propertyGroup
	index := make(map[string]*propertyGroup)
	for _, p := range props {
		if p.Name == "" {
			continue
		}
		name := ""
		if active[p.Name] {
			name = p.Name
		}
		grp, ok := index[name]
		if !ok {
			grp = &propertyGroup{property: name}
			index[name] = grp
			groups = append(groups, grp)
		}
		grp.fragments = append(grp.fragments, p.String())
	}
	return groups
}

func (c *compilation) propertySelector(prop string, bp attr.Breakpoint, st attr.State, fallback string) string {
	tree, ok := c.byProperty[prop]
	if !ok {
		tree = shorthand.PropertyTree(c.properties, prop)
		c.byProperty[prop] = tree
	}
	sel := c.generator.Pick(tree, bp, st)
	if sel == "" {
		// the override is inherited from a breakpoint other than the base
		sel = attr.Strings(c.order).Resolve(tree, attr.At(bp, st), attr.Whole, "")
	}
	if sel == "" {
		return fallback
	}
	return c.generator.Rewrite(sel, st)
}
