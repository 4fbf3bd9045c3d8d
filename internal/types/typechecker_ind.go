package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/deb"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// inferInd type-checks an inductive family declaration: index types form a
// telescope checked before the family exists (so a family's indices can
// never mention the family itself), each constructor's param types are
// checked under the family's own self-binder, and strict positivity plus
// the index-arg recursion-escape and arity/type checks run over every
// constructor.
func (c *Checker) inferInd(ind *ast.Ind, tcon *Context) (eval.NormalForm, error) {
	indexTypeVals, _, err := c.inferParamTypesCapped(ind.IndexTypes, tcon, ind.Name, ind.Level)
	if err != nil {
		return eval.NormalForm{}, err
	}

	selfType := eval.BuildFor(indexTypeVals, eval.BuildUniverse(ind.Level, ind.Erasable))
	tconWithSelf := tcon.Extend(selfType)

	for vi := range ind.VconDefs {
		if err := c.checkVconDef(vi, ind, tconWithSelf); err != nil {
			return eval.NormalForm{}, err
		}
	}

	return eval.BuildFor(indexTypeVals, eval.BuildUniverse(ind.Level, ind.Erasable)), nil
}

// inferParamTypesCapped is inferParamTypes plus a check that no element's
// own universe level exceeds cap: an inductive's indices and constructor
// params must all fit within its declared universe.
func (c *Checker) inferParamTypesCapped(exprs []ast.Expr, tcon *Context, indName string, cap_ uint64) ([]eval.NormalForm, *Context, error) {
	normalized := make([]eval.NormalForm, len(exprs))
	cur := tcon
	for i, e := range exprs {
		level, _, err := c.checkIsType(e, cur)
		if err != nil {
			return nil, nil, err
		}
		if level > cap_ {
			return nil, nil, kernelerrors.NewUniverseInconsistencyInIndDef(indName, cap_, level)
		}
		nf := c.ev.Eval(e)
		normalized[i] = nf
		cur = cur.Extend(nf)
	}
	return normalized, cur, nil
}

func (c *Checker) checkVconDef(vconIndex int, ind *ast.Ind, tconWithSelf *Context) error {
	def := ind.VconDefs[vconIndex]
	normalizedParamTypes, tconWithParams, err := c.inferParamTypesCapped(def.ParamTypes, tconWithSelf, ind.Name, ind.Level)
	if err != nil {
		return err
	}

	// Positivity is a semantic property, not a syntactic one: a param type
	// that only reveals a negative occurrence of the family's self-reference
	// after reduction (e.g. behind a Fun application) must still be caught,
	// so the walk runs over the normal form, not the as-written expression.
	for k, pt := range normalizedParamTypes {
		if ok, path := checkStrictlyPositive(pt.Expr(), uint64(k)); !ok {
			return kernelerrors.NewVconDefParamTypeFailsStrictPositivityCondition(vconIndex, path)
		}
	}

	n := uint64(len(def.ParamTypes))
	selfIndexFromIndexArgs := n // ind-self, seen from the index-args scope

	numIndices := uint64(len(ind.IndexTypes))
	if uint64(len(def.IndexArgs)) != numIndices {
		return kernelerrors.NewWrongNumberOfIndexArguments(int(numIndices), len(def.IndexArgs))
	}

	// Each index arg is checked against the declared index type it fills in,
	// not merely inferred to have some type. ind.IndexTypes[ai] is expressed
	// relative to the telescope of earlier index types (locals, Deb < ai)
	// plus the ambient context the whole Ind was declared in (Deb >= ai); we
	// lift the ambient part past the self binder and this constructor's own
	// params (n+1 new binders), then fill in the locals with the index args
	// already checked earlier in this loop, in telescope order.
	checkedArgs := make([]ast.Expr, 0, numIndices)
	for ai, indexArg := range def.IndexArgs {
		if occursFree(indexArg, selfIndexFromIndexArgs) {
			return kernelerrors.NewRecursiveIndParamAppearsInVconDefIndexArg(vconIndex, ai)
		}
		liftedIntoParamScope := deb.Rewrite(ind.IndexTypes[ai], deb.Upshifter{N: n + 1}, uint64(ai))
		expectedRaw := deb.Rewrite(liftedIntoParamScope, deb.DownshiftSubstituter{NewExprs: checkedArgs}, 0)
		expected := c.ev.Eval(expectedRaw)
		if err := c.Check(indexArg, tconWithParams, expected); err != nil {
			return err
		}
		checkedArgs = append(checkedArgs, indexArg)
	}
	return nil
}
