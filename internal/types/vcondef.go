package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/deb"
)

// resolvedVconDef eliminates def's implicit reference to ind's own
// self-binder, substituting the concrete ind value at the matching cutoff
// for each field: param_types[k] sees the self-binder at relative index k,
// index_args see it at relative index len(param_types). The results are raw
// (unnormalized) expressions; callers evaluate as needed.
func resolvedVconDef(ind *ast.Ind, def ast.VconDef) (paramTypes, indexArgs []ast.Expr) {
	n := uint64(len(def.ParamTypes))
	substituteSelf := func(expr ast.Expr, cutoff uint64) ast.Expr {
		return deb.Rewrite(expr, deb.DownshiftSubstituter{NewExprs: []ast.Expr{ind}}, cutoff)
	}

	paramTypes = make([]ast.Expr, len(def.ParamTypes))
	for k, pt := range def.ParamTypes {
		paramTypes[k] = substituteSelf(pt, uint64(k))
	}

	indexArgs = make([]ast.Expr, len(def.IndexArgs))
	for i, ia := range def.IndexArgs {
		indexArgs[i] = substituteSelf(ia, n)
	}

	return paramTypes, indexArgs
}

// indexDebSpine builds the spine of de Bruijn references [Deb(n-1), ...,
// Deb(0)] addressing n binders just introduced in declaration order: the
// first-declared binder is outermost (highest relative index).
func indexDebSpine(n uint64) []ast.Expr {
	out := make([]ast.Expr, n)
	for i := uint64(0); i < n; i++ {
		out[i] = ast.NewDeb(n - 1 - i)
	}
	return out
}
