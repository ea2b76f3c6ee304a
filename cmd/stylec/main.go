/*
Command stylec compiles responsive style attributes read from a YAML job
into CSS.

	stylec compile job.yaml
	stylec compile --array --breakpoints bp.yaml job.yaml
	stylec compile --html text-styles job.yaml > styles.html
	stylec breakpoints --breakpoints bp.yaml

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// tracer traces with key 'respstyle.stylec'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.stylec")
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "stylec",
		Short: "stylec - compile responsive style attributes into CSS",
		Long: `stylec compiles attribute values, given per breakpoint and state, into
CSS statements. Breakpoints become media queries, hover and sticky states
become rewritten selectors, and rulesets sharing at-rule and selector are
merged.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				tracer().SetTraceLevel(tracing.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace compilation steps")
	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newBreakpointsCommand())
	return rootCmd
}
