package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/eval"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// This file implements the erasability discipline. A match
// whose scrutinee lives in an erasable (Prop) family carries no runtime
// representation to case on, so at runtime all of its cases must compile to
// the same code. The checker enforces this structurally: such a match's own
// return type must itself be erasable, unless the family has no
// constructors, or exactly one constructor whose param types are all
// erasable (no branching occurs and no non-erasable field can be bound, so
// there's nothing a backend would need to distinguish at runtime).
//
// CheckErasability re-walks an already type-checked expression looking
// specifically for matches on an erasable scrutinee whose return type is
// not itself erasable. Run it after Infer succeeds on the same expr and
// tcon; it assumes the term is well-typed and re-derives types as needed
// rather than threading them through.
func (c *Checker) CheckErasability(expr ast.Expr, tcon *Context) error {
	return c.checkErasability(expr, tcon)
}

func (c *Checker) checkErasability(expr ast.Expr, tcon *Context) error {
	switch e := expr.(type) {
	case *ast.Universe, *ast.Deb:
		return nil

	case *ast.Vcon:
		return nil

	case *ast.Ind:
		cur := tcon
		for _, it := range e.IndexTypes {
			if err := c.checkErasability(it, cur); err != nil {
				return err
			}
			cur = cur.Extend(c.ev.Eval(it))
		}
		selfType, err := c.Infer(e, tcon)
		if err != nil {
			return err
		}
		curWithSelf := tcon.Extend(selfType)
		for _, def := range e.VconDefs {
			curDef := curWithSelf
			for _, pt := range def.ParamTypes {
				if err := c.checkErasability(pt, curDef); err != nil {
					return err
				}
				curDef = curDef.Extend(c.ev.Eval(pt))
			}
			for _, ia := range def.IndexArgs {
				if err := c.checkErasability(ia, curDef); err != nil {
					return err
				}
			}
		}
		return nil

	case *ast.For:
		cur := tcon
		for _, pt := range e.ParamTypes {
			if err := c.checkErasability(pt, cur); err != nil {
				return err
			}
			cur = cur.Extend(c.ev.Eval(pt))
		}
		return c.checkErasability(e.ReturnType, cur)

	case *ast.Fun:
		cur := tcon
		for _, pt := range e.ParamTypes {
			if err := c.checkErasability(pt, cur); err != nil {
				return err
			}
			cur = cur.Extend(c.ev.Eval(pt))
		}
		if err := c.checkErasability(e.ReturnType, cur); err != nil {
			return err
		}
		returnType := c.ev.Eval(e.ReturnType)
		paramTypes := c.evalAll(e.ParamTypes)
		selfType := eval.Shift(eval.BuildFor(paramTypes, returnType), uint64(len(paramTypes)))
		return c.checkErasability(e.ReturnVal, cur.Extend(selfType))

	case *ast.App:
		if err := c.checkErasability(e.Callee, tcon); err != nil {
			return err
		}
		for _, a := range e.Args {
			if err := c.checkErasability(a, tcon); err != nil {
				return err
			}
		}
		return nil

	case *ast.Match:
		return c.checkErasabilityMatch(e, tcon)

	default:
		panic("types: unknown expr variant")
	}
}

func (c *Checker) evalAll(exprs []ast.Expr) []eval.NormalForm {
	out := make([]eval.NormalForm, len(exprs))
	for i, e := range exprs {
		out[i] = c.ev.Eval(e)
	}
	return out
}

// singleVconAllParamsErasable reports whether ind has exactly one
// constructor whose param types are all themselves erasable: a second
// exemption to the "erasable scrutinee needs erasable return type" rule,
// alongside having no constructors at all. With only one constructor a
// match never branches, but the exemption additionally requires the bound
// fields to carry no non-erasable data, else the single case could still
// leak Set-typed values out of a Prop-typed scrutinee.
func (c *Checker) singleVconAllParamsErasable(ind *ast.Ind, tcon *Context) (bool, error) {
	if len(ind.VconDefs) != 1 {
		return false, nil
	}
	paramTypes, _ := resolvedVconDef(ind, ind.VconDefs[0])
	cur := tcon
	for _, pt := range paramTypes {
		_, erasable, err := c.checkIsType(pt, cur)
		if err != nil {
			return false, err
		}
		if !erasable {
			return false, nil
		}
		cur = cur.Extend(c.ev.Eval(pt))
	}
	return true, nil
}

func (c *Checker) checkErasabilityMatch(m *ast.Match, tcon *Context) error {
	if err := c.checkErasability(m.Matchee, tcon); err != nil {
		return err
	}
	matcheeType, err := c.Infer(m.Matchee, tcon)
	if err != nil {
		return err
	}
	ind, _, ok := eval.TryIndApplication(matcheeType)
	if !ok {
		return kernelerrors.NewNonInductiveMatcheeType()
	}

	if ind.Erasable {
		exempt := len(ind.VconDefs) == 0
		if !exempt {
			singleCaseExempt, err := c.singleVconAllParamsErasable(ind, tcon)
			if err != nil {
				return err
			}
			exempt = singleCaseExempt
		}
		if !exempt {
			resultType, err := c.Infer(m, tcon)
			if err != nil {
				return err
			}
			_, erasable, err := c.checkIsType(resultType.Expr(), tcon)
			if err != nil {
				return err
			}
			if !erasable {
				return kernelerrors.NewErasabilityViolation()
			}
		}
	}

	for ci, mc := range m.Cases {
		tconForCase := tcon
		if ci < len(ind.VconDefs) {
			paramTypes, _ := resolvedVconDef(ind, ind.VconDefs[ci])
			for _, pt := range paramTypes {
				tconForCase = tconForCase.Extend(c.ev.Eval(pt))
			}
		}
		if err := c.checkErasability(mc.ReturnVal, tconForCase); err != nil {
			return err
		}
	}
	return c.checkErasability(m.ReturnType, tcon)
}
