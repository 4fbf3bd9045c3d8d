package types

import (
	"strconv"

	"github.com/zoc-lang/zoc/internal/ast"
)

// This file implements strict positivity. An inductive
// family's own recursive self-reference may only occur in a constructor
// parameter's type in "strictly positive" position — never to the left of a
// nested function arrow, where it would let a constructor manufacture an
// inductive value out of a function that consumes one, breaking soundness
// of recursion.

// checkStrictlyPositive reports whether target (ind-self's de Bruijn index,
// relative to expr's own scope) occurs in expr only in strictly positive
// position, plus a breadcrumb path to the first violation found.
func checkStrictlyPositive(expr ast.Expr, target uint64) (ok bool, path []string) {
	if !occursFree(expr, target) {
		return true, nil
	}

	if f, isFor := ast.AsFor(expr); isFor {
		for k, pt := range f.ParamTypes {
			if occurs(pt, target, uint64(k)) {
				return false, []string{pathElem("param_type", k)}
			}
		}
		n := uint64(len(f.ParamTypes))
		innerOK, innerPath := checkStrictlyPositive(f.ReturnType, target+n)
		if !innerOK {
			return false, append([]string{"return_type"}, innerPath...)
		}
		return true, nil
	}

	if app, isApp := ast.AsApp(expr); isApp {
		if d, isDeb := ast.AsDeb(app.Callee); isDeb && d.Index == target {
			for k, arg := range app.Args {
				if occurs(arg, target, 0) {
					return false, []string{pathElem("app_arg", k)}
				}
			}
			return true, nil
		}
		return false, []string{"app_callee"}
	}

	if d, isDeb := ast.AsDeb(expr); isDeb && d.Index == target {
		return true, nil
	}

	return false, []string{"non_strictly_positive_occurrence"}
}

func pathElem(kind string, index int) string {
	return kind + "[" + strconv.Itoa(index) + "]"
}
