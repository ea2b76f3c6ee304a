package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/respstyle/attrdbg"
	"github.com/npillmayer/respstyle/breakpoint"
	"github.com/npillmayer/respstyle/compiler"
	"github.com/npillmayer/respstyle/cssom/douceuradapter"
	"github.com/npillmayer/respstyle/statement"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

type compileOptions struct {
	array       bool
	verify      bool
	htmlID      string
	dump        bool
	breakpoints string
}

func newCompileCommand() *cobra.Command {
	var opts compileOptions
	cmd := &cobra.Command{
		Use:   "compile [job.yaml]",
		Short: "Compile a style job into CSS",
		Long: `Reads a YAML job (from a file or stdin) and writes the compiled CSS to
stdout. With --array, the merged statements are written as YAML instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			settings, err := loadSettings(opts.breakpoints)
			if err != nil {
				return err
			}
			return runCompile(opts, settings, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVar(&opts.array, "array", false, "write statements as YAML")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "parse the compiled CSS and check it against the statements")
	cmd.Flags().StringVar(&opts.htmlID, "html", "", "wrap the CSS in a <style> element with this id")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump attribute tree and statements to stderr")
	cmd.Flags().StringVar(&opts.breakpoints, "breakpoints", "", "breakpoint settings file (YAML)")
	return cmd
}

func loadSettings(path string) (*breakpoint.Settings, error) {
	if path == "" {
		return breakpoint.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return breakpoint.Load(f)
}

func runCompile(opts compileOptions, settings *breakpoint.Settings, in io.Reader, out, errout io.Writer) error {
	job, err := loadJob(in)
	if err != nil {
		return err
	}
	args, err := job.args(settings)
	if err != nil {
		return err
	}
	stmts, err := compiler.CompileStatements(args)
	if err != nil {
		return err
	}
	tracer().Debugf("compiled %d statements", len(stmts))
	if opts.dump {
		attrdbg.Dump(errout, "attributes", job.Attr, settings.AttrOrder())
		fmt.Fprintf(errout, "statements\n%s", attrdbg.Statements(stmts))
	}
	if opts.verify {
		if err := douceuradapter.Verify(stmts); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}
	if opts.array {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(stmts)
	}
	g := statement.NewGroup()
	g.AddAll(stmts...)
	css := g.String()
	if opts.htmlID != "" {
		if err := html.Render(out, douceuradapter.StyleElement(opts.htmlID, css)); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	}
	_, err = fmt.Fprintln(out, css)
	return err
}

func newBreakpointsCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "List breakpoints with their inheritance and at-rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(path)
			if err != nil {
				return err
			}
			return listBreakpoints(settings, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&path, "breakpoints", "", "breakpoint settings file (YAML)")
	return cmd
}

func listBreakpoints(settings *breakpoint.Settings, out io.Writer) error {
	o := settings.AttrOrder()
	for _, bp := range o.Breakpoints {
		rule := settings.AtRules(bp).WithDefault("(none)")
		parent, ok := o.Parent(bp)
		inherits := "-"
		if ok {
			inherits = string(parent)
		}
		if _, err := fmt.Fprintf(out, "%-12s %-12s %s\n", bp, inherits, rule); err != nil {
			return err
		}
	}
	return nil
}
