// Package eval implements the call-by-value evaluator: the sole judge of
// definitional equality. Evaluating a term produces its normal form; two
// terms are definitionally equal iff their normal forms share a digest.
package eval

import "github.com/zoc-lang/zoc/internal/ast"

// NormalForm wraps an expression known to be fully normalized. Only this
// package mints one (via Evaluator.Eval), so holding a NormalForm is a
// guarantee, not a convention.
type NormalForm struct {
	expr ast.Expr
}

// Expr unwraps the normalized expression.
func (nf NormalForm) Expr() ast.Expr { return nf.expr }

// Digest is the digest of the underlying expression; two normal forms are
// definitionally equal iff their digests match.
func (nf NormalForm) Digest() ast.Digest { return nf.expr.Digest() }

// unsafeWrap tags expr as a normal form without normalizing it. It exists
// only for call sites inside this package that already know (by
// construction) that expr's children are normal and the node itself admits
// no further reduction — e.g. rebuilding a stuck App from already-normal
// parts.
func unsafeWrap(expr ast.Expr) NormalForm { return NormalForm{expr: expr} }
