package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders expr using the kernel's reserved surface syntax. It is
// meant for debug output and error messages, not round-tripping.
func String(expr Expr) string {
	switch e := expr.(type) {
	case *Universe:
		if e.Erasable {
			return "Prop" + strconv.FormatUint(e.Level, 10)
		}
		return "Set" + strconv.FormatUint(e.Level, 10)
	case *Deb:
		return strconv.FormatUint(e.Index, 10)
	case *Ind:
		return fmt.Sprintf("ind[%s]", e.Name)
	case *Vcon:
		return fmt.Sprintf("vcon[%s, %d]", e.Ind.Name, e.VconIndex)
	case *For:
		return fmt.Sprintf("for(%s; %s)", exprList(e.ParamTypes), String(e.ReturnType))
	case *Fun:
		dec := "nonrec"
		if e.DecreasingIndex != nil {
			dec = strconv.FormatUint(*e.DecreasingIndex, 10)
		}
		return fmt.Sprintf("fun[%s](%s; %s; %s)", dec, exprList(e.ParamTypes), String(e.ReturnType), String(e.ReturnVal))
	case *App:
		return fmt.Sprintf("%s(%s)", String(e.Callee), exprList(e.Args))
	case *Match:
		return fmt.Sprintf("match(%s; %d; %s; ...)", String(e.Matchee), e.ReturnTypeArity, String(e.ReturnType))
	default:
		return "<unknown>"
	}
}

func exprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = String(e)
	}
	return strings.Join(parts, ", ")
}
