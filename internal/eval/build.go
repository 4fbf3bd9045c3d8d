package eval

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/deb"
)

// This file holds "smart constructors" the type checker uses to assemble a
// new NormalForm out of pieces that are already normal. None of the node
// shapes built here (Universe, For, and an App whose callee is not a Fun)
// are themselves redexes, so wrapping already-normal children in them
// can never introduce a reduction — it is safe to mint the NormalForm
// directly rather than pay for a redundant full Eval pass.

// BuildUniverse wraps Universe{level, erasable}, which is always normal.
func BuildUniverse(level uint64, erasable bool) NormalForm {
	return unsafeWrap(ast.NewUniverse(level, erasable))
}

// BuildFor assembles For(paramTypes, returnType) from already-normal parts.
func BuildFor(paramTypes []NormalForm, returnType NormalForm) NormalForm {
	return unsafeWrap(ast.NewFor(toExprs(paramTypes), returnType.Expr()))
}

// BuildApp assembles App(callee, args) from already-normal parts. Note this
// does NOT beta-reduce — callers that need the reduced form should go
// through Evaluator.Eval instead; this is for building a type like
// `App(ind, index_args)` where no Fun callee (hence no redex) can appear.
func BuildApp(callee NormalForm, args []NormalForm) NormalForm {
	return unsafeWrap(ast.NewApp(callee.Expr(), toExprs(args)))
}

// Shift upshifts an already-normal expression by n binders; shifting
// preserves normal form.
func Shift(nf NormalForm, n uint64) NormalForm {
	if n == 0 {
		return nf
	}
	return unsafeWrap(deb.Upshift(nf.Expr(), n))
}

// SubstituteNormal substitutes normal-form replacements into an already
// normal-form expression and downshifts the rest; substituting normal forms
// for normal forms preserves normal form.
func SubstituteNormal(nf NormalForm, replacements []NormalForm) NormalForm {
	if len(replacements) == 0 {
		return nf
	}
	return unsafeWrap(deb.Substitute(nf.Expr(), toExprs(replacements)))
}

func toExprs(nfs []NormalForm) []ast.Expr {
	if len(nfs) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(nfs))
	for i, nf := range nfs {
		out[i] = nf.Expr()
	}
	return out
}

// TryFor, TryUniverse, TryInd, and TryVcon give the type checker
// structural access to a normal form's shape without re-exposing raw
// construction.

func TryFor(nf NormalForm) (*ast.For, bool)           { return ast.AsFor(nf.Expr()) }

// ForParamType and ForReturnType re-wrap a *ast.For's i-th param type and
// return type as NormalForm: safe because a For obtained from TryFor came
// from a NormalForm, whose children are normal by construction.
func ForParamType(f *ast.For, i int) NormalForm { return unsafeWrap(f.ParamTypes[i]) }
func ForReturnType(f *ast.For) NormalForm       { return unsafeWrap(f.ReturnType) }
func TryUniverse(nf NormalForm) (*ast.Universe, bool) { return ast.AsUniverse(nf.Expr()) }
func TryInd(nf NormalForm) (*ast.Ind, bool)           { return ast.AsInd(nf.Expr()) }
func TryVcon(nf NormalForm) (*ast.Vcon, bool)         { return ast.AsVcon(nf.Expr()) }

// TryIndApplication recognizes Ind or App(Ind, indices) and returns the
// indices as normal forms (they are, since nf itself is normal).
func TryIndApplication(nf NormalForm) (ind *ast.Ind, indices []NormalForm, ok bool) {
	rawInd, rawIndices, ok := ast.AsIndApplication(nf.Expr())
	if !ok {
		return nil, nil, false
	}
	wrapped := make([]NormalForm, len(rawIndices))
	for i, e := range rawIndices {
		wrapped[i] = unsafeWrap(e)
	}
	return rawInd, wrapped, true
}
