package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/breakpoint"
	"github.com/npillmayer/respstyle/compiler"
	"github.com/npillmayer/respstyle/statement"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const responsiveJob = `
attr:
  desktop:
    value: {x: 1}
  phone:
    value: {x: 2}
selectors:
  desktop: {value: .a}
`

func compile(t *testing.T, opts compileOptions, job string) (string, string) {
	t.Helper()
	var out, errout bytes.Buffer
	err := runCompile(opts, breakpoint.Default(), strings.NewReader(job), &out, &errout)
	require.NoError(t, err)
	return out.String(), errout.String()
}

func TestCompileJob(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "respstyle.stylec")
	defer teardown()
	//
	out, _ := compile(t, compileOptions{verify: true}, responsiveJob)
	assert.Equal(t, ".a {x: 1;} @media only screen and (max-width: 767px) {.a {x: 2;}}\n", out)
}

func TestCompileJobAsArray(t *testing.T) {
	out, _ := compile(t, compileOptions{array: true}, responsiveJob)
	var stmts []statement.Statement
	require.NoError(t, yaml.Unmarshal([]byte(out), &stmts))
	assert.Equal(t, []statement.Statement{
		{Selector: ".a", Declaration: "x: 1;"},
		{AtRules: "@media only screen and (max-width: 767px)", Selector: ".a", Declaration: "x: 2;"},
	}, stmts)
}

func TestCompileJobWithTemplate(t *testing.T) {
	out, _ := compile(t, compileOptions{}, `
attr:
  desktop: {value: red, hover: blue}
selectors:
  desktop: {value: .et_pb_text_0}
template: "color: {{ .Value | upper }};"
`)
	assert.Equal(t, ".et_pb_text_0 {color: RED;} .et_pb_text_0:hover {color: BLUE;}\n", out)
}

func TestCompileJobSplitsShorthands(t *testing.T) {
	out, _ := compile(t, compileOptions{}, `
attr:
  desktop: {value: {margin: 1px 2px}}
selectors:
  desktop: {value: .a}
propertySelectors:
  desktop: {value: {margin-top: .a .top}}
split: true
`)
	assert.Equal(t, ".a {margin-bottom: 1px; margin-left: 2px; margin-right: 2px;} .a .top {margin-top: 1px;}\n", out)
}

func TestCompileJobImportant(t *testing.T) {
	out, _ := compile(t, compileOptions{}, responsiveJob+"important: true\n")
	assert.Contains(t, out, ".a {x: 1 !important;}")
	//
	out, _ = compile(t, compileOptions{}, `
attr:
  tablet: {value: {padding-left: 0, color: red}}
selectors:
  desktop: {value: .a}
important:
  desktop: {value: {padding: true}}
`)
	assert.Equal(t, "@media only screen and (max-width: 980px) {.a {color: red; padding-left: 0 !important;}}\n", out)
}

func TestCompileJobAsHTML(t *testing.T) {
	out, errout := compile(t, compileOptions{htmlID: "styles", dump: true}, responsiveJob)
	assert.Equal(t, `<style id="styles">.a {x: 1;} @media only screen and (max-width: 767px) {.a {x: 2;}}</style>`+"\n", out)
	assert.Contains(t, errout, "attributes")
	assert.Contains(t, errout, "@media only screen and (max-width: 767px)")
}

func TestCompileJobErrors(t *testing.T) {
	var out bytes.Buffer
	err := runCompile(compileOptions{}, breakpoint.Default(), strings.NewReader("colour: red\n"), &out, &out)
	assert.Error(t, err)
	//
	err = runCompile(compileOptions{}, breakpoint.Default(), strings.NewReader(`
attr:
  watch: {value: {x: 1}}
`), &out, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, compiler.ErrUnknownBreakpoint))
	//
	err = runCompile(compileOptions{}, breakpoint.Default(), strings.NewReader(`
attr:
  desktop: {value: red}
template: "{{ .Value "
`), &out, &out)
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(responsiveJob))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"compile"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), ".a {x: 1;}")
}

func TestListBreakpoints(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listBreakpoints(breakpoint.Extended(), &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "ultraWide"))
	assert.Contains(t, lines[0], "widescreen")
	assert.Contains(t, lines[2], "(none)")
	assert.Contains(t, lines[6], "@media only screen and (max-width: 767px)")
}

func TestLoadJobNormalizesLeaves(t *testing.T) {
	job, err := loadJob(strings.NewReader(responsiveJob + `
defaults:
  desktop: {value: {x: 0, nested: {y: 1}}}
extras:
  module: {name: text}
`))
	require.NoError(t, err)
	v, _ := job.Attr.Get(attr.Desktop, attr.Value)
	assert.IsType(t, map[string]any{}, v)
	d, _ := job.Defaults.Get(attr.Desktop, attr.Value)
	if assert.IsType(t, map[string]any{}, d) {
		assert.IsType(t, map[string]any{}, d.(map[string]any)["nested"])
	}
	assert.IsType(t, map[string]any{}, job.Extras["module"])
}

func TestCompileJobDump(t *testing.T) {
	_, errout := compile(t, compileOptions{dump: true}, responsiveJob)
	attributes, _, found := strings.Cut(errout, "statements\n")
	require.True(t, found)
	assert.Contains(t, attributes, "x: 1")
	assert.NotContains(t, attributes, "map[")
}
