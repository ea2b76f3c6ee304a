/*
Package cssom abstracts away stylesheet implementations for compiled CSS.

Compiled statements are plain text. To inspect them, clients parse them
back into a stylesheet. In order to de-couple the consumers of parsed
stylesheets from a concrete CSS parser, we introduce interfaces StyleSheet
and Rule. A concrete implementation may be found in sub-package
douceuradapter.

Rules nested in @media blocks are flattened: every Rule knows the at-rule it
has been nested in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'respstyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.cssom")
}
