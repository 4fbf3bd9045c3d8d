package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/deb"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// inferVcon types a bare constructor reference as its own fully applied
// telescope type: for(param_types, ind applied to index_args). v.Ind must
// itself be checked first — index types, universe consistency, and C5
// strict positivity over every constructor all live in inferInd, and a
// Vcon reached on its own (not via an enclosing Ind node, the ordinary
// shape once a family's first constructor has been built) is the only
// remaining place that would otherwise trust an unchecked Ind. Since v.Ind
// is already a concrete, fully elaborated value, its own self-reference
// inside the constructor's param/index-arg definitions is resolved away
// afterward.
func (c *Checker) inferVcon(v *ast.Vcon, tcon *Context) (eval.NormalForm, error) {
	if _, err := c.Infer(v.Ind, tcon); err != nil {
		return eval.NormalForm{}, err
	}
	if v.VconIndex >= uint64(len(v.Ind.VconDefs)) {
		return eval.NormalForm{}, kernelerrors.NewInvalidVconIndex(v.VconIndex, v.Ind.Name, len(v.Ind.VconDefs))
	}
	def := v.Ind.VconDefs[v.VconIndex]
	n := uint64(len(def.ParamTypes))

	resolvedParamTypes, resolvedIndexArgs := resolvedVconDef(v.Ind, def)

	paramTypes := make([]eval.NormalForm, len(resolvedParamTypes))
	for k, pt := range resolvedParamTypes {
		paramTypes[k] = c.ev.Eval(pt)
	}

	indexArgs := make([]eval.NormalForm, len(resolvedIndexArgs))
	for i, ia := range resolvedIndexArgs {
		indexArgs[i] = c.ev.Eval(ia)
	}

	indShiftedIntoParamScope := c.ev.Eval(deb.Upshift(v.Ind, n))
	conclusion := eval.BuildApp(indShiftedIntoParamScope, indexArgs)

	return eval.BuildFor(paramTypes, conclusion), nil
}
