package deb

import "github.com/zoc-lang/zoc/internal/ast"

// Upshift moves every free Deb in expr up by n, treating expr as if it were
// placed under n new binders. Upshift(0, e) is the identity.
func Upshift(expr ast.Expr, n uint64) ast.Expr {
	if n == 0 {
		return expr
	}
	return Rewrite(expr, Upshifter{N: n}, 0)
}

// Substitute replaces the len(newExprs) binders starting at cutoff 0 with
// newExprs (in natural, outermost-first order) and downshifts anything free
// above them. An empty newExprs is the identity (aside from the implicit
// cutoff-0 shift, which is also the identity).
func Substitute(expr ast.Expr, newExprs []ast.Expr) ast.Expr {
	if len(newExprs) == 0 {
		return expr
	}
	return Rewrite(expr, DownshiftSubstituter{NewExprs: newExprs}, 0)
}
