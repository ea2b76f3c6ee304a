/*
Package attr provides responsive attribute trees and their cascade.

An attribute tree maps a breakpoint and an interaction state to a value:

	desktop ─┬─ value  ⇒ {"color": "red"}
	         └─ hover  ⇒ {"color": "blue"}
	phone   ─── value  ⇒ {"color": "green"}

Trees are sparse. Breakpoints not present inherit from the next breakpoint
towards the base breakpoint (usually desktop), states not present inherit from
the "value" state of the same breakpoint. Package attr implements this
two-axis inheritance as a pure function of its inputs (see type Resolver).

The order in which breakpoints and states are iterated and inherited is
configurable with type Order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package attr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.attr'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.attr")
}
