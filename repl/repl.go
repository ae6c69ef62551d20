// Package repl implements Nova's interactive read-eval-print loop, the
// external "interactive loop" collaborator described in spec §6.2 (not
// part of the language core itself). Grounded in go-mix's repl/repl.go:
// chzyer/readline for line editing and history, fatih/color for banner
// and error coloring.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/nova-lang/nova/eval"
	"github.com/nova-lang/nova/object"
)

const (
	Version = "0.1.0"
	Prompt  = "nova> "
	Banner  = "Nova " + Version + " — a small dynamically-typed language"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	infoColor = color.New(color.FgCyan)
	valColor  = color.New(color.FgYellow)
)

// REPL drives one interactive session. Each REPL owns its own Evaluator,
// so the top-level environment persists across lines within a session but
// never leaks across sessions (spec §6.2: "no persisted state" is a core
// contract; the REPL's own session state is the external driver's, not
// the core's).
type REPL struct {
	Prompt string
	Banner string
}

func New() *REPL {
	return &REPL{Prompt: Prompt, Banner: Banner}
}

// Start runs the loop, reading from in and writing prompts/results/errors
// to out, until EOF or an interrupt. Each non-empty line is treated as
// one unit of input; a line not already ending in `;` or `}` has a
// semicolon appended, so `1 + 2` works as a REPL convenience without
// requiring users to type the statement terminator for bare expressions.
func (r *REPL) Start(in io.Reader, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	infoColor.Fprintln(out, r.Banner)
	infoColor.Fprintln(out, `type an expression or statement; Ctrl-D to exit`)

	interp := eval.New(func(s string) { fmt.Fprint(out, s) })

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
			line += ";"
		}

		result, runErr := interp.Run(line)
		if runErr != nil {
			errColor.Fprintln(out, runErr.Error())
			continue
		}
		if object.IsError(result) {
			errColor.Fprintln(out, result.String())
			continue
		}
		if result != nil && result.Type() != object.NULL {
			valColor.Fprintln(out, result.String())
		}
	}
}
