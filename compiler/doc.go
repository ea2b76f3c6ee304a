/*
Package compiler turns responsive attribute trees into CSS statements.

For every breakpoint and state present in an attribute tree, the compiler
resolves the selector and the at-rule, asks a caller-supplied declaration
function for the declaration block, and feeds the result into a
statement.Group, which merges rulesets sharing at-rule and selector.

	css, err := compiler.CompileString(compiler.Args{
	    Attr:        attr.Tree[any]{attr.Desktop: {attr.Value: "red"}},
	    Selectors:   attr.Tree[string]{attr.Desktop: {attr.Value: ".et_pb_text_0"}},
	    Declaration: func(p compiler.DeclarationParams) compiler.Declaration {
	        return compiler.Text(fmt.Sprintf("color: %v;", p.Value))
	    },
	})
	// css == ".et_pb_text_0 {color: red;}"

If property selectors are given, the declaration function is asked for
key/value pairs instead of text, and each property with a selector override
gets a ruleset of its own.

Compilation is a pure, synchronous computation. Independent compilations
may run concurrently; declaration and selector functions must be free of
side effects for the output order to be well defined.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package compiler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.compiler")
}
