package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/deb"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// inferMatch type-checks a dependent pattern match: the matchee's type
// must resolve to an inductive family applied to its indices; return_type
// is checked in a scope that rebinds those indices
// plus the matchee itself (so later cases' expected types can depend on
// which indices and which matchee value they're handling); one case per
// constructor, each checked against return_type with the family's index
// telescope and the matchee instantiated to that constructor's own shape.
func (c *Checker) inferMatch(m *ast.Match, tcon *Context) (eval.NormalForm, error) {
	matcheeType, err := c.Infer(m.Matchee, tcon)
	if err != nil {
		return eval.NormalForm{}, err
	}
	ind, indices, ok := eval.TryIndApplication(matcheeType)
	if !ok {
		return eval.NormalForm{}, kernelerrors.NewNonInductiveMatcheeType()
	}
	numIndices := uint64(len(indices))
	if m.ReturnTypeArity != numIndices+1 {
		return eval.NormalForm{}, kernelerrors.NewWrongMatchReturnTypeArity(numIndices+1, m.ReturnTypeArity)
	}
	if len(m.Cases) != len(ind.VconDefs) {
		return eval.NormalForm{}, kernelerrors.NewWrongNumberOfMatchCases(len(ind.VconDefs), len(m.Cases))
	}

	tconForReturnType := tcon
	for _, it := range ind.IndexTypes {
		tconForReturnType = tconForReturnType.Extend(c.ev.Eval(it))
	}
	matcheeTypeInScope := ast.NewApp(deb.Upshift(ind, numIndices), indexDebSpine(numIndices))
	tconForReturnType = tconForReturnType.Extend(c.ev.Eval(matcheeTypeInScope))

	if _, _, err := c.checkIsType(m.ReturnType, tconForReturnType); err != nil {
		return eval.NormalForm{}, err
	}
	returnType := c.ev.Eval(m.ReturnType)

	for ci, mc := range m.Cases {
		def := ind.VconDefs[ci]
		nParam := uint64(len(def.ParamTypes))
		if mc.Arity != nParam {
			return eval.NormalForm{}, kernelerrors.NewWrongMatchCaseArity(ci, nParam, mc.Arity)
		}

		resolvedParamTypes, resolvedIndexArgs := resolvedVconDef(ind, def)
		tconForCase := tcon
		for _, pt := range resolvedParamTypes {
			tconForCase = tconForCase.Extend(c.ev.Eval(pt))
		}

		replacements := make([]eval.NormalForm, numIndices+1)
		for j, ia := range resolvedIndexArgs {
			replacements[j] = c.ev.Eval(ia)
		}
		vconValue := ast.NewApp(ast.NewVcon(ind, uint64(ci)), indexDebSpine(nParam))
		replacements[numIndices] = c.ev.Eval(vconValue)

		expected := eval.SubstituteNormal(returnType, replacements)
		if err := c.Check(mc.ReturnVal, tconForCase, expected); err != nil {
			return eval.NormalForm{}, err
		}
	}

	finalReplacements := make([]eval.NormalForm, numIndices+1)
	copy(finalReplacements, indices)
	finalReplacements[numIndices] = c.ev.Eval(m.Matchee)

	return eval.SubstituteNormal(returnType, finalReplacements), nil
}
