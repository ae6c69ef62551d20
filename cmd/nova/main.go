// Command nova is the external driver for the Nova language core (spec
// §6.2): it is not part of the core's own contract, but exists to run it
// end to end. Grounded in go-mix's main/main.go shape (file mode vs. REPL
// mode, colored diagnostics on failure) but built on spf13/cobra instead
// of a hand-rolled os.Args switch, the same choice the rest of the
// retrieval pack's interpreter-shaped tools make for their CLI layer.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nova-lang/nova/eval"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/repl"
)

func main() {
	var inline string

	root := &cobra.Command{
		Use:   "nova [file]",
		Short: "Nova — a small dynamically-typed, interpreted language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inline != "" {
				return runSource(inline)
			}
			if len(args) == 0 {
				return repl.New().Start(os.Stdin, os.Stdout)
			}
			return runFile(args[0])
		},
	}
	root.Flags().StringVarP(&inline, "command", "c", "", "evaluate a Nova source string instead of reading a file or starting the REPL")

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.New().Start(os.Stdin, os.Stdout)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runSource implements the `-c` flag half of spec §6.2's external driver
// contract (SPEC_FULL.md's ambient CLI stack): parse-then-evaluate an
// inline source string exactly like runFile, without reading a path.
func runSource(src string) error {
	interp := eval.New(func(s string) { fmt.Print(s) })
	result, runErr := interp.Run(src)
	if runErr != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, runErr.Error())
		os.Exit(1)
	}
	if object.IsError(result) {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, result.String())
		os.Exit(1)
	}
	return nil
}

// runFile implements the "run a file" half of spec §6.2's external
// driver contract: parse-then-evaluate, exit 0 on success, non-zero with
// a diagnostic on standard error for a parse or runtime failure.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return runSource(string(src))
}
