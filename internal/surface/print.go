package surface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoc-lang/zoc/internal/ast"
)

// Print renders expr for CLI/REPL/error output. internal/ast.String already
// implements the reserved surface syntax for every variant except Ind's
// full body and Match's cases, which it abbreviates for brevity in
// nested positions; Print gives the unabbreviated top-level rendering a
// user invoking `zoc check` or the REPL wants to see.
func Print(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ind:
		return printInd(e)
	case *ast.Match:
		return printMatch(e)
	default:
		return ast.String(expr)
	}
}

func printInd(ind *ast.Ind) string {
	kind := "Set"
	if ind.Erasable {
		kind = "Prop"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ind[%s, %s%d, [%s], [\n", ind.Name, kind, ind.Level, joinPrint(ind.IndexTypes))
	for i, def := range ind.VconDefs {
		fmt.Fprintf(&b, "  vcon_def#%d([%s]; [%s])\n", i, joinPrint(def.ParamTypes), joinPrint(def.IndexArgs))
	}
	b.WriteString("]]")
	return b.String()
}

func printMatch(m *ast.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "match(%s; %d; %s; [\n", Print(m.Matchee), m.ReturnTypeArity, Print(m.ReturnType))
	for i, c := range m.Cases {
		fmt.Fprintf(&b, "  case#%d(arity=%d; %s)\n", i, c.Arity, Print(c.ReturnVal))
	}
	b.WriteString("])")
	return b.String()
}

func joinPrint(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Print(e)
	}
	return strings.Join(parts, ", ")
}

// PrintUint is a small helper for CLI code rendering de Bruijn indices or
// arities that aren't already ast.Expr values.
func PrintUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}
