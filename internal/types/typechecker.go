package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// Checker holds the single Evaluator a type-checking session shares: every
// normal form produced while inferring one expression's type is memoized on
// digest and can be reused by every other expression in the same session.
type Checker struct {
	ev *eval.Evaluator
}

// New creates a Checker with a fresh evaluator.
func New() *Checker {
	return &Checker{ev: eval.New()}
}

// TypeCheck is the composite entry point: it runs C4 (Infer), which in turn
// triggers C5 (strict positivity, inside inferInd) and C6 (the recursion
// guard, inside inferFun) at the points the term introduces them, then runs
// C7 (erasability) over the whole term. A caller only needs this one
// function to fully validate an expression.
func (c *Checker) TypeCheck(expr ast.Expr, tcon *Context) (eval.NormalForm, error) {
	t, err := c.Infer(expr, tcon)
	if err != nil {
		return eval.NormalForm{}, err
	}
	if err := c.CheckErasability(expr, tcon); err != nil {
		return eval.NormalForm{}, err
	}
	return t, nil
}

// Infer computes the type of expr under tcon: `tcon ⊢ expr : T`. The
// returned type is always itself in normal form.
func (c *Checker) Infer(expr ast.Expr, tcon *Context) (eval.NormalForm, error) {
	switch e := expr.(type) {
	case *ast.Universe:
		return c.inferUniverse(e), nil
	case *ast.Deb:
		return c.inferDeb(e, tcon)
	case *ast.For:
		return c.inferFor(e, tcon)
	case *ast.Fun:
		return c.inferFun(e, tcon)
	case *ast.App:
		return c.inferApp(e, tcon)
	case *ast.Ind:
		return c.inferInd(e, tcon)
	case *ast.Vcon:
		return c.inferVcon(e, tcon)
	case *ast.Match:
		return c.inferMatch(e, tcon)
	default:
		panic("types: unknown expr variant")
	}
}

// Check verifies expr has type expected under tcon, by inferring expr's
// actual type and comparing normal forms for digest equality.
func (c *Checker) Check(expr ast.Expr, tcon *Context, expected eval.NormalForm) error {
	actual, err := c.Infer(expr, tcon)
	if err != nil {
		return err
	}
	if !typesEqual(actual, expected) {
		return kernelerrors.NewTypeMismatch()
	}
	return nil
}

func typesEqual(a, b eval.NormalForm) bool {
	return a.Digest() == b.Digest()
}

// checkIsType infers expr's type and verifies the result is itself a
// Universe, returning that universe's erasability and level: every
// expression occurring in type position must itself type as some Universe.
func (c *Checker) checkIsType(expr ast.Expr, tcon *Context) (level uint64, erasable bool, err error) {
	t, err := c.Infer(expr, tcon)
	if err != nil {
		return 0, false, err
	}
	u, ok := eval.TryUniverse(t)
	if !ok {
		return 0, false, kernelerrors.NewUnexpectedNonTypeExpression()
	}
	return u.Level, u.Erasable, nil
}

func (c *Checker) inferUniverse(u *ast.Universe) eval.NormalForm {
	return eval.BuildUniverse(u.Level+1, true)
}

func (c *Checker) inferDeb(d *ast.Deb, tcon *Context) (eval.NormalForm, error) {
	t, ok := tcon.Get(d.Index)
	if !ok {
		return eval.NormalForm{}, kernelerrors.NewInvalidDeb(d.Index, tcon.Len())
	}
	// t was stored at its introduction depth; reinterpret it at the current
	// depth by shifting past every binder introduced since.
	return eval.Shift(t, d.Index+1), nil
}

// inferParamTypes type-checks a telescope of parameter types (each may refer
// to the ones before it) and returns their normal forms plus the context
// extended with all of them. Every element must itself be a type.
func (c *Checker) inferParamTypes(paramTypes []ast.Expr, tcon *Context) ([]eval.NormalForm, *Context, error) {
	normalized := make([]eval.NormalForm, len(paramTypes))
	cur := tcon
	for i, pt := range paramTypes {
		if _, _, err := c.checkIsType(pt, cur); err != nil {
			return nil, nil, err
		}
		nf := c.ev.Eval(pt)
		normalized[i] = nf
		cur = cur.Extend(nf)
	}
	return normalized, cur, nil
}

func (c *Checker) inferFor(f *ast.For, tcon *Context) (eval.NormalForm, error) {
	if len(f.ParamTypes) == 0 {
		return eval.NormalForm{}, kernelerrors.NewForHasZeroParams()
	}
	_, tconWithParams, err := c.inferParamTypes(f.ParamTypes, tcon)
	if err != nil {
		return eval.NormalForm{}, err
	}
	level, erasable, err := c.checkIsType(f.ReturnType, tconWithParams)
	if err != nil {
		return eval.NormalForm{}, err
	}
	return eval.BuildUniverse(level, erasable), nil
}
