// Package repl implements an interactive "check" loop over the kernel:
// each line of input is parsed as a surface program and fed to the type
// checker, with the inferred type or the structured error printed back.
// Grounded on the teacher's internal/repl/repl.go; trimmed down to the one
// operation this kernel exposes.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/zoc-lang/zoc/internal/surface"
	"github.com/zoc-lang/zoc/internal/types"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// REPL is an interactive check loop. Every input line gets a fresh
// *types.Checker: the kernel is a pure function of its inputs, with no
// persisted state, so there's no session state to carry between lines
// beyond command history.
type REPL struct {
	history []string
}

// New creates a REPL.
func New() *REPL {
	return &REPL{}
}

// Start runs the REPL loop, reading from a liner-backed prompt and writing
// results to out.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".zoc_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("zoc"))
	fmt.Fprintln(out, dim("Type a program, :quit to exit."))

	for {
		input, err := line.Prompt("zoc> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)

		r.check(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// check parses and type-checks one program, writing the result to out.
func (r *REPL) check(input string, out io.Writer) {
	expr, _, err := surface.ParseProgram([]byte(input), "<repl>")
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("parse error"), err)
		return
	}

	c := types.New()
	t, err := c.TypeCheck(expr, types.Empty)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("type error"), err)
		return
	}
	fmt.Fprintf(out, "%s %s\n", green(":"), surface.Print(t.Expr()))
}
