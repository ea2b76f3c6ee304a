/*
Package breakpoint holds responsive breakpoint settings and derives CSS
at-rules (media queries) from them.

A breakpoint either has media-query bounds (a min-width, a max-width, or
both), or it is a feature-toggle breakpoint whose at-rule is looked up in a
side table. Breakpoints with neither need no wrapping at-rule; the base
breakpoint is the common example.

Settings may be constructed in code (Default, Extended) or loaded from YAML
(Load).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package breakpoint

import (
	"strings"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.breakpoint'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.breakpoint")
}

// Bounds are the media-query bounds of a breakpoint. Values are emitted
// verbatim, e.g. "767px".
type Bounds struct {
	MinWidth string `yaml:"minWidth,omitempty"`
	MaxWidth string `yaml:"maxWidth,omitempty"`
}

// IsSet is true if at least one bound is present.
func (b Bounds) IsSet() bool {
	return b.MinWidth != "" || b.MaxWidth != ""
}

// Settings configure the breakpoints of a page.
type Settings struct {
	// Order lists breakpoints from largest to smallest viewport.
	Order []attr.Breakpoint `yaml:"order"`
	// Base is the breakpoint all others inherit from.
	Base attr.Breakpoint `yaml:"base"`
	// Bounds hold media-query bounds per breakpoint.
	Bounds map[attr.Breakpoint]Bounds `yaml:"bounds,omitempty"`
	// Toggles map feature-toggle breakpoints to their at-rule.
	Toggles map[attr.Breakpoint]string `yaml:"toggles,omitempty"`
}

// Default returns settings for desktop, tablet and phone.
func Default() *Settings {
	return &Settings{
		Order: []attr.Breakpoint{attr.Desktop, attr.Tablet, attr.Phone},
		Base:  attr.Desktop,
		Bounds: map[attr.Breakpoint]Bounds{
			attr.Tablet: {MaxWidth: "980px"},
			attr.Phone:  {MaxWidth: "767px"},
		},
	}
}

// Extended returns settings for all seven customizable breakpoints.
// Widescreen and ultra-wide are feature toggles.
func Extended() *Settings {
	return &Settings{
		Order: attr.ExtendedOrder().Breakpoints,
		Base:  attr.Desktop,
		Bounds: map[attr.Breakpoint]Bounds{
			attr.TabletWide: {MaxWidth: "1024px"},
			attr.Tablet:     {MaxWidth: "980px"},
			attr.PhoneWide:  {MaxWidth: "860px"},
			attr.Phone:      {MaxWidth: "767px"},
		},
		Toggles: map[attr.Breakpoint]string{
			attr.Widescreen: "@media only screen and (min-width: 1441px)",
			attr.UltraWide:  "@media only screen and (min-width: 1921px)",
		},
	}
}

// AttrOrder returns the inheritance order for attribute trees, using the
// default state order. A nil receiver yields the default order.
func (s *Settings) AttrOrder() attr.Order {
	if s == nil {
		return attr.DefaultOrder()
	}
	o := attr.DefaultOrder()
	if len(s.Order) > 0 {
		o.Breakpoints = s.Order
	}
	if s.Base != "" {
		o.Base = s.Base
	}
	return o
}

// AtRules derives the at-rule for bp. It returns Nothing if bp needs no
// wrapping at-rule.
func (s *Settings) AtRules(bp attr.Breakpoint) maybe.Maybe[string] {
	if s == nil {
		return maybe.Nothing[string]()
	}
	if b, ok := s.Bounds[bp]; ok && b.IsSet() {
		return maybe.Just(MediaQuery(b))
	}
	if rule, ok := s.Toggles[bp]; ok && strings.TrimSpace(rule) != "" {
		tracer().Debugf("breakpoint %s uses feature-toggle at-rule", bp)
		return maybe.Just(rule)
	}
	return maybe.Nothing[string]()
}

// MediaQuery formats bounds as a screen media query. Bounds must be set.
func MediaQuery(b Bounds) string {
	var sb strings.Builder
	sb.WriteString("@media only screen")
	if b.MinWidth != "" {
		sb.WriteString(" and (min-width: ")
		sb.WriteString(b.MinWidth)
		sb.WriteString(")")
	}
	if b.MaxWidth != "" {
		sb.WriteString(" and (max-width: ")
		sb.WriteString(b.MaxWidth)
		sb.WriteString(")")
	}
	return sb.String()
}
