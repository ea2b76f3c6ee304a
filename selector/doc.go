/*
Package selector derives concrete CSS selectors for a breakpoint and an
interaction state.

Selectors are kept per breakpoint and state in an attr.Tree[string]. For
the hover and sticky states the resolved selector is rewritten:

	Hover(".a, .b::before")                      ⇒ ".a:hover, .b:hover::before"
	Sticky(".et_pb_section_0 .et_pb_text_0", …)  ⇒ ".et_pb_section_0 .et_pb_text_0.et_pb_sticky"

Rewriting always works on the comma-separated sub-selectors of a selector
list, one at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.selector'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.selector")
}
