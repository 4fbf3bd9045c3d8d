package types

import "github.com/zoc-lang/zoc/internal/ast"

// occursFree reports whether Deb(target) (as seen from expr's own starting
// scope) occurs anywhere in expr, honoring the same telescope/independent
// binder bookkeeping as the deb package's rewrite walk: a reference found k
// binders deeper must equal target+k to count as the same variable.
func occursFree(expr ast.Expr, target uint64) bool {
	return occurs(expr, target, 0)
}

func occurs(expr ast.Expr, target, cutoff uint64) bool {
	switch e := expr.(type) {
	case *ast.Universe:
		return false

	case *ast.Deb:
		return e.Index == target+cutoff

	case *ast.Vcon:
		return false

	case *ast.Ind:
		if occursTelescope(e.IndexTypes, target, cutoff) {
			return true
		}
		for _, def := range e.VconDefs {
			if occursVconDef(def, target, cutoff+1) {
				return true
			}
		}
		return false

	case *ast.Match:
		if occurs(e.Matchee, target, cutoff) {
			return true
		}
		if occurs(e.ReturnType, target, cutoff+e.ReturnTypeArity) {
			return true
		}
		for _, c := range e.Cases {
			if occurs(c.ReturnVal, target, cutoff+c.Arity) {
				return true
			}
		}
		return false

	case *ast.Fun:
		if occursTelescope(e.ParamTypes, target, cutoff) {
			return true
		}
		n := uint64(len(e.ParamTypes))
		if occurs(e.ReturnType, target, cutoff+n) {
			return true
		}
		return occurs(e.ReturnVal, target, cutoff+n+1)

	case *ast.App:
		if occurs(e.Callee, target, cutoff) {
			return true
		}
		return occursIndependent(e.Args, target, cutoff)

	case *ast.For:
		if occursTelescope(e.ParamTypes, target, cutoff) {
			return true
		}
		n := uint64(len(e.ParamTypes))
		return occurs(e.ReturnType, target, cutoff+n)

	default:
		panic("types: unknown expr variant")
	}
}

func occursTelescope(exprs []ast.Expr, target, cutoff uint64) bool {
	for k, e := range exprs {
		if occurs(e, target, cutoff+uint64(k)) {
			return true
		}
	}
	return false
}

func occursIndependent(exprs []ast.Expr, target, cutoff uint64) bool {
	for _, e := range exprs {
		if occurs(e, target, cutoff) {
			return true
		}
	}
	return false
}

func occursVconDef(def ast.VconDef, target, cutoffAfterSelf uint64) bool {
	if occursTelescope(def.ParamTypes, target, cutoffAfterSelf) {
		return true
	}
	return occursIndependent(def.IndexArgs, target, cutoffAfterSelf+uint64(len(def.ParamTypes)))
}
