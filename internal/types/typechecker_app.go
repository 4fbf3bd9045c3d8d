package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// inferApp type-checks App: the callee's type must normalize to a For with
// exactly as many params as there are args; each arg is
// inferred independently under the ambient tcon (args don't bind each
// other), but is checked against its param type with the *previously
// checked* args substituted in, since later param types may depend on
// earlier ones.
func (c *Checker) inferApp(a *ast.App, tcon *Context) (eval.NormalForm, error) {
	if len(a.Args) == 0 {
		return eval.NormalForm{}, kernelerrors.NewAppHasZeroArgs()
	}
	calleeType, err := c.Infer(a.Callee, tcon)
	if err != nil {
		return eval.NormalForm{}, err
	}
	forType, ok := eval.TryFor(calleeType)
	if !ok {
		return eval.NormalForm{}, kernelerrors.NewCalleeTypeIsNotAForExpression()
	}
	if len(a.Args) != len(forType.ParamTypes) {
		return eval.NormalForm{}, kernelerrors.NewWrongNumberOfAppArguments(len(forType.ParamTypes), len(a.Args))
	}

	argVals := make([]eval.NormalForm, len(a.Args))
	for i, argExpr := range a.Args {
		paramType := eval.ForParamType(forType, i)
		expected := eval.SubstituteNormal(paramType, argVals[:i])
		if err := c.Check(argExpr, tcon, expected); err != nil {
			return eval.NormalForm{}, err
		}
		argVals[i] = c.ev.Eval(argExpr)
	}

	return eval.SubstituteNormal(eval.ForReturnType(forType), argVals), nil
}
