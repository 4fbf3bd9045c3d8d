// Command zoc is the kernel's CLI: a thin shell around internal/surface and
// internal/types, grounded on the teacher's cmd/ailang/main.go command
// dispatch but trimmed to the one judgment this repository exposes
// (`check`), plus a repl and version subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/zoc-lang/zoc/internal/repl"
	"github.com/zoc-lang/zoc/internal/surface"
	"github.com/zoc-lang/zoc/internal/types"
)

var (
	// Version info, set by ldflags during build.
	Version = "dev"
	Commit  = "unknown"

	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: zoc check <file.zo>")
			os.Exit(1)
		}
		checkFile(os.Args[2])
	case "repl":
		repl.New().Start(os.Stdout)
	case "version", "--version":
		printVersion()
	case "help", "--help":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func checkFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	expr, _, err := surface.ParseProgram(src, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("parse error"), err)
		os.Exit(1)
	}

	c := types.New()
	t, err := c.TypeCheck(expr, types.Empty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("type error"), err)
		os.Exit(1)
	}

	fmt.Println(surface.Print(t.Expr()))
}

func printVersion() {
	fmt.Printf("zoc %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
	fmt.Println("\nA dependent-type kernel in the tradition of CIC.")
}

func printHelp() {
	fmt.Println(bold("zoc - a dependent-type kernel"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  zoc <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check <file.zo>   Typecheck a file, print its inferred type or error")
	fmt.Println("  repl              Start an interactive check loop")
	fmt.Println("  version           Print version information")
	fmt.Println("  help              Show this help")
}
