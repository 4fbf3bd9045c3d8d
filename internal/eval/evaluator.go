package eval

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/deb"
)

// Evaluator normalizes expressions, memoizing on digest. A single Evaluator
// is meant to live for one type-checking session: its memo table is not
// safe for concurrent use.
type Evaluator struct {
	memo map[ast.Digest]NormalForm
}

// New creates an Evaluator with an empty memo table.
func New() *Evaluator {
	return &Evaluator{memo: make(map[ast.Digest]NormalForm)}
}

// Eval reduces expr to normal form. The evaluator is not expected to
// terminate on ill-typed input; callers must only invoke it from contexts
// where the subterm being reduced has already passed the recursion guard.
func (ev *Evaluator) Eval(expr ast.Expr) NormalForm {
	if nf, ok := ev.memo[expr.Digest()]; ok {
		return nf
	}
	nf := ev.evalUncached(expr)
	ev.memo[expr.Digest()] = nf
	return nf
}

// EvalAll evaluates a list of independent expressions (not a telescope:
// elements don't bind each other), e.g. App args or a vcon def's index args.
func (ev *Evaluator) EvalAll(exprs []ast.Expr) []ast.Expr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for i, e := range exprs {
		out[i] = ev.Eval(e).Expr()
	}
	return out
}

func (ev *Evaluator) evalUncached(expr ast.Expr) NormalForm {
	switch e := expr.(type) {
	case *ast.Universe, *ast.Deb:
		return unsafeWrap(e)

	case *ast.Vcon:
		normalizedInd := ev.evalInd(e.Ind)
		return unsafeWrap(ast.NewVcon(normalizedInd, e.VconIndex))

	case *ast.Ind:
		return unsafeWrap(ev.evalInd(e))

	case *ast.For:
		paramTypes := ev.EvalAll(e.ParamTypes)
		returnType := ev.Eval(e.ReturnType).Expr()
		return unsafeWrap(ast.NewFor(paramTypes, returnType))

	case *ast.Fun:
		paramTypes := ev.EvalAll(e.ParamTypes)
		returnType := ev.Eval(e.ReturnType).Expr()
		returnVal := ev.Eval(e.ReturnVal).Expr()
		return unsafeWrap(ast.NewFun(e.DecreasingIndex, paramTypes, returnType, returnVal))

	case *ast.App:
		return ev.evalApp(e)

	case *ast.Match:
		return ev.evalMatch(e)

	default:
		panic("eval: unknown expr variant")
	}
}

func (ev *Evaluator) evalInd(ind *ast.Ind) *ast.Ind {
	indexTypes := ev.EvalAll(ind.IndexTypes)
	vconDefs := make([]ast.VconDef, len(ind.VconDefs))
	for i, def := range ind.VconDefs {
		vconDefs[i] = ast.NewVconDef(ev.EvalAll(def.ParamTypes), ev.EvalAll(def.IndexArgs))
	}
	return ast.NewInd(ind.Name, ind.Level, ind.Erasable, indexTypes, vconDefs)
}

// isCanonicalValue reports whether expr (already in normal form) is a
// variant-constructor application: a bare Vcon, or an App whose callee is a
// Vcon.
func isCanonicalValue(expr ast.Expr) bool {
	if _, ok := ast.AsVcon(expr); ok {
		return true
	}
	if app, ok := ast.AsApp(expr); ok {
		_, ok := ast.AsVcon(app.Callee)
		return ok
	}
	return false
}

// vconShape splits a normal-form expression into its Vcon and argument list
// if it is a variant-constructor application.
func vconShape(expr ast.Expr) (vcon *ast.Vcon, args []ast.Expr, ok bool) {
	if v, isVcon := ast.AsVcon(expr); isVcon {
		return v, nil, true
	}
	if app, isApp := ast.AsApp(expr); isApp {
		if v, isVcon := ast.AsVcon(app.Callee); isVcon {
			return v, app.Args, true
		}
	}
	return nil, nil, false
}

func (ev *Evaluator) evalApp(e *ast.App) NormalForm {
	callee := ev.Eval(e.Callee).Expr()
	args := ev.EvalAll(e.Args)

	fun, isFun := ast.AsFun(callee)
	if isFun {
		guardSatisfied := true
		if fun.DecreasingIndex != nil {
			i := *fun.DecreasingIndex
			guardSatisfied = i < uint64(len(args)) && isCanonicalValue(args[i])
		}
		if guardSatisfied {
			newExprs := make([]ast.Expr, 0, len(args)+1)
			newExprs = append(newExprs, args...)
			newExprs = append(newExprs, fun)
			substituted := deb.Substitute(fun.ReturnVal, newExprs)
			return ev.Eval(substituted)
		}
	}

	return unsafeWrap(ast.NewApp(callee, args))
}

func (ev *Evaluator) evalMatch(e *ast.Match) NormalForm {
	matchee := ev.Eval(e.Matchee).Expr()

	if vcon, args, ok := vconShape(matchee); ok {
		k := vcon.VconIndex
		if k < uint64(len(e.Cases)) {
			chosenCase := e.Cases[k]
			substituted := deb.Substitute(chosenCase.ReturnVal, args)
			return ev.Eval(substituted)
		}
		// Invalid vcon index: unreachable for well-typed terms (C4/C5
		// reject it before evaluation ever runs); leave the match stuck
		// rather than panicking on malformed input.
	}

	returnType := ev.Eval(e.ReturnType).Expr()
	cases := make([]ast.MatchCase, len(e.Cases))
	for i, c := range e.Cases {
		cases[i] = ast.NewMatchCase(c.Arity, ev.Eval(c.ReturnVal).Expr())
	}
	return unsafeWrap(ast.NewMatch(matchee, e.ReturnTypeArity, returnType, cases))
}
