// Package deb implements the de Bruijn shift and substitution engine: a
// single tree traversal parameterized by a rewriting policy over Deb
// leaves, used both to move terms under new binders (Upshifter) and to
// plug expressions into a binder's body (DownshiftSubstituter).
package deb

import "github.com/zoc-lang/zoc/internal/ast"

// Rewriter decides the replacement for a Deb leaf found at the given index,
// given how many binders have been entered since the rewrite started
// (cutoff). Implementations must be pure functions of (index, cutoff).
type Rewriter interface {
	Rewrite(index, cutoff uint64) ast.Expr
}

// Upshifter moves every Deb at or above the cutoff up by N, to adjust a term
// for being placed under N new binders.
type Upshifter struct {
	N uint64
}

func (u Upshifter) Rewrite(index, cutoff uint64) ast.Expr {
	if index >= cutoff {
		return ast.NewDeb(index + u.N)
	}
	return ast.NewDeb(index)
}

// DownshiftSubstituter replaces the N binders starting at the cutoff with
// NewExprs, and downshifts any Deb referring past them by N. NewExprs is in
// natural order: NewExprs[0] replaces the outermost of the N binders,
// NewExprs[len-1] the innermost (index cutoff).
type DownshiftSubstituter struct {
	NewExprs []ast.Expr
}

func (s DownshiftSubstituter) Rewrite(index, cutoff uint64) ast.Expr {
	n := uint64(len(s.NewExprs))

	if index < cutoff {
		return ast.NewDeb(index)
	}

	if index < cutoff+n {
		// NewExprs[0] is the outermost substituted binder, which sits at
		// deb index cutoff+n-1; NewExprs[n-1] is the innermost, at index
		// cutoff. Solving for the NewExprs slot at a given index:
		chosen := s.NewExprs[cutoff+n-1-index]
		// The substituted expression was built to be valid at cutoff 0;
		// it must be upshifted by the number of binders crossed (cutoff)
		// to remain valid once plugged in under them.
		return Upshift(chosen, cutoff)
	}

	return ast.NewDeb(index - n)
}
