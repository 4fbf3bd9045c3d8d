// Command validate_examples checks that every snippet listed in
// examples/manifest.yaml actually produces the outcome the manifest
// promises, grounded on the teacher's scripts/validate_manifest.go report
// style and on its internal/eval_harness/spec.go's gopkg.in/yaml.v3 loading
// pattern for the manifest format itself.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/zoc-lang/zoc/internal/kernelerrors"
	"github.com/zoc-lang/zoc/internal/surface"
	"github.com/zoc-lang/zoc/internal/types"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// Manifest is the examples/manifest.yaml schema: a flat list naming one
// snippet file per entry and the outcome a correct kernel must produce.
type Manifest struct {
	Examples []ManifestEntry `yaml:"examples"`
}

type ManifestEntry struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
	Expect      string `yaml:"expect"`
}

// kindsByName maps the manifest's "expect" strings (every kernelerrors.Kind
// identifier) onto the Kind values the type checker can actually raise; the
// literal "ok" is not in the map and is handled separately in validateOne.
var kindsByName = map[string]kernelerrors.Kind{
	"InvalidDeb":                           kernelerrors.InvalidDeb,
	"InvalidVconIndex":                     kernelerrors.InvalidVconIndex,
	"UnexpectedNonTypeExpression":          kernelerrors.UnexpectedNonTypeExpression,
	"UniverseInconsistencyInIndDef":        kernelerrors.UniverseInconsistencyInIndDef,
	"WrongNumberOfIndexArguments":          kernelerrors.WrongNumberOfIndexArguments,
	"NonInductiveMatcheeType":              kernelerrors.NonInductiveMatcheeType,
	"WrongNumberOfMatchCases":              kernelerrors.WrongNumberOfMatchCases,
	"WrongMatchReturnTypeArity":            kernelerrors.WrongMatchReturnTypeArity,
	"WrongMatchCaseArity":                  kernelerrors.WrongMatchCaseArity,
	"TypeMismatch":                         kernelerrors.TypeMismatch,
	"CalleeTypeIsNotAForExpression":        kernelerrors.CalleeTypeIsNotAForExpression,
	"WrongNumberOfAppArguments":            kernelerrors.WrongNumberOfAppArguments,
	"FunHasZeroParams":                     kernelerrors.FunHasZeroParams,
	"AppHasZeroArgs":                       kernelerrors.AppHasZeroArgs,
	"ForHasZeroParams":                     kernelerrors.ForHasZeroParams,
	"IllegalRecursiveCall":                 kernelerrors.IllegalRecursiveCall,
	"RecursiveFunParamInNonCalleePosition": kernelerrors.RecursiveFunParamInNonCalleePosition,
	"DeclaredFunNonrecursiveButUsedRecursiveFunParam": kernelerrors.DeclaredFunNonrecursiveButUsedRecursiveFunParam,
	"DecreasingArgIndexTooBig":                        kernelerrors.DecreasingArgIndexTooBig,
	"VconDefParamTypeFailsStrictPositivityCondition":  kernelerrors.VconDefParamTypeFailsStrictPositivityCondition,
	"RecursiveIndParamAppearsInVconDefIndexArg":       kernelerrors.RecursiveIndParamAppearsInVconDefIndexArg,
	"ErasabilityViolation":                            kernelerrors.ErasabilityViolation,
}

func main() {
	var (
		manifestPath = flag.String("manifest", "examples/manifest.yaml", "Path to the example manifest")
		examplesDir  = flag.String("dir", "examples", "Directory containing the .zo snippets")
	)
	flag.Parse()

	raw, err := os.ReadFile(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to parse manifest: %v\n", red("Error"), err)
		os.Exit(1)
	}

	fmt.Printf("%s zoc example validator\n", bold("▸"))
	fmt.Printf("Manifest: %s (%d examples)\n\n", *manifestPath, len(m.Examples))

	failed := 0
	for _, ex := range m.Examples {
		if err := validateOne(*examplesDir, ex); err != nil {
			failed++
			fmt.Printf("%s %s: %v\n", red("✗"), ex.Path, err)
			continue
		}
		fmt.Printf("%s %s\n", green("✓"), ex.Path)
	}

	fmt.Printf("\n%s\n", strings.Repeat("-", 60))
	fmt.Printf("Results: %s passed, %s failed\n",
		green(fmt.Sprintf("%d", len(m.Examples)-failed)),
		red(fmt.Sprintf("%d", failed)))

	if failed > 0 {
		os.Exit(1)
	}
}

func validateOne(dir string, ex ManifestEntry) error {
	path := filepath.Join(dir, ex.Path)
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	expr, _, err := surface.ParseProgram(src, path)
	if err != nil {
		if ex.Expect == "ok" {
			return fmt.Errorf("wanted ok, got parse error: %v", err)
		}
		return fmt.Errorf("wanted kernel error %q, got a parse error instead: %v", ex.Expect, err)
	}

	c := types.New()
	_, typeErr := c.TypeCheck(expr, types.Empty)

	if ex.Expect == "ok" {
		if typeErr != nil {
			return fmt.Errorf("wanted ok, got: %v", typeErr)
		}
		return nil
	}

	wantKind, known := kindsByName[ex.Expect]
	if !known {
		return fmt.Errorf("manifest names unknown expected outcome %q", ex.Expect)
	}
	if typeErr == nil {
		return fmt.Errorf("wanted error %s, got ok", ex.Expect)
	}
	kerr, ok := typeErr.(*kernelerrors.Error)
	if !ok {
		return fmt.Errorf("wanted error %s, got non-kernel error: %v", ex.Expect, typeErr)
	}
	if kerr.Kind != wantKind {
		return fmt.Errorf("wanted error %s, got %s", ex.Expect, kerr.Kind)
	}
	return nil
}
