package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// inferFun type-checks a Fun: param types form a telescope, return_type is
// checked under them, the function's own binder (standing for recursive
// self-calls) is added one level deeper still, and return_val must check
// against return_type shifted past that extra binder. The recursion guard
// runs first, in its own empty context, independently of tcon.
func (c *Checker) inferFun(f *ast.Fun, tcon *Context) (eval.NormalForm, error) {
	if len(f.ParamTypes) == 0 {
		return eval.NormalForm{}, kernelerrors.NewFunHasZeroParams()
	}
	if f.DecreasingIndex != nil && *f.DecreasingIndex >= uint64(len(f.ParamTypes)) {
		return eval.NormalForm{}, kernelerrors.NewDecreasingArgIndexTooBig(*f.DecreasingIndex, len(f.ParamTypes))
	}
	if err := CheckRecursion(f); err != nil {
		return eval.NormalForm{}, err
	}

	paramTypes, tconWithParams, err := c.inferParamTypes(f.ParamTypes, tcon)
	if err != nil {
		return eval.NormalForm{}, err
	}
	if _, _, err := c.checkIsType(f.ReturnType, tconWithParams); err != nil {
		return eval.NormalForm{}, err
	}
	returnType := c.ev.Eval(f.ReturnType)

	// The function's own binder (for self-calls in return_val) has type
	// for(param_types, return_type), shifted to live at the depth one
	// beyond the params.
	selfType := eval.Shift(eval.BuildFor(paramTypes, returnType), uint64(len(paramTypes)))
	tconWithSelf := tconWithParams.Extend(selfType)
	expectedReturn := eval.Shift(returnType, 1)
	if err := c.Check(f.ReturnVal, tconWithSelf, expectedReturn); err != nil {
		return eval.NormalForm{}, err
	}

	return eval.BuildFor(paramTypes, returnType), nil
}
