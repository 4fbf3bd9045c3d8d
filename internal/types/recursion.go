package types

import (
	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// This file implements the recursion (structural-descent) guard. It is a
// standalone syntactic walk over the raw expression, run once
// per Fun node with a fresh, empty recursion context — independent of (and
// run before) the typing context used by Infer.
//
// Every binder the walk crosses is tagged with an rkind. Unlike the typing
// context, tags never need reinterpreting from a deeper scope: each tag
// records its *own* absolute level (distance from the root of this
// particular recursion check, fixed at creation), so comparing two tags is
// just comparing two numbers, however many further binders separate them.

type rkind int

const (
	rIrrelevant rkind = iota
	rStrictSubstructOf
	rFunSelf
)

type rentry struct {
	level uint64

	kind rkind

	// valid when kind == rStrictSubstructOf: the level of the ultimate
	// superstruct this binder was destructured from.
	rootLevel uint64

	// valid when kind == rFunSelf: nil means the enclosing Fun was declared
	// nonrec (decreasing_index = None); otherwise it names the decreasing
	// parameter, and paramLevel is that parameter's level in this rcon
	// (the rcon's length on entry to the Fun plus the decreasing index).
	decreasingIndex *uint64
	paramLevel      uint64
}

// rcon is a persistent recursion-checking context, structured exactly like
// Context: a parent-chain list so each branch of a match or telescope can
// extend it independently without disturbing its siblings.
type rcon struct {
	value  rentry
	parent *rcon
	len    uint64
}

func (c *rcon) Len() uint64 {
	if c == nil {
		return 0
	}
	return c.len
}

func (c *rcon) get(index uint64) (rentry, bool) {
	cur := c
	for cur != nil && index > 0 {
		cur = cur.parent
		index--
	}
	if cur == nil {
		return rentry{}, false
	}
	return cur.value, true
}

func (c *rcon) extend(e rentry) *rcon {
	e.level = c.Len()
	return &rcon{value: e, parent: c, len: c.Len() + 1}
}

func (c *rcon) extendIrrelevant() *rcon {
	return c.extend(rentry{kind: rIrrelevant})
}

func (c *rcon) extendN(n uint64, e rentry) *rcon {
	cur := c
	for i := uint64(0); i < n; i++ {
		cur = cur.extend(e)
	}
	return cur
}

// CheckRecursion is the C6 entry point: run the structural-descent guard on
// fun, starting from an empty recursion context.
func CheckRecursion(fun *ast.Fun) error {
	return checkRecursion(fun, nil)
}

func checkRecursion(expr ast.Expr, rc *rcon) error {
	switch e := expr.(type) {
	case *ast.Universe:
		return nil

	case *ast.Deb:
		return checkDebInNonCalleePosition(e, rc)

	case *ast.Ind:
		if err := checkRecursionTelescope(e.IndexTypes, rc); err != nil {
			return err
		}
		rcWithSelf := rc.extendIrrelevant()
		for _, def := range e.VconDefs {
			if err := checkRecursionVconDef(def, rcWithSelf); err != nil {
				return err
			}
		}
		return nil

	case *ast.Vcon:
		// e.Ind is already a closed, resolved term (see deb package
		// commentary); there is nothing further to walk.
		return nil

	case *ast.Match:
		if err := checkRecursion(e.Matchee, rc); err != nil {
			return err
		}
		rcForReturnType := rc.extendN(e.ReturnTypeArity, rentry{kind: rIrrelevant})
		if err := checkRecursion(e.ReturnType, rcForReturnType); err != nil {
			return err
		}

		root, isRoot := matchRootLevel(e.Matchee, rc)
		for _, c := range e.Cases {
			var caseRc *rcon
			if isRoot {
				caseRc = rc.extendN(c.Arity, rentry{kind: rStrictSubstructOf, rootLevel: root})
			} else {
				caseRc = rc.extendN(c.Arity, rentry{kind: rIrrelevant})
			}
			if err := checkRecursion(c.ReturnVal, caseRc); err != nil {
				return err
			}
		}
		return nil

	case *ast.Fun:
		return checkRecursionFun(e, rc)

	case *ast.App:
		return checkRecursionApp(e, rc)

	case *ast.For:
		if err := checkRecursionTelescope(e.ParamTypes, rc); err != nil {
			return err
		}
		rcWithParams := rc.extendN(uint64(len(e.ParamTypes)), rentry{kind: rIrrelevant})
		return checkRecursion(e.ReturnType, rcWithParams)

	default:
		panic("types: unknown expr variant")
	}
}

func checkRecursionTelescope(exprs []ast.Expr, rc *rcon) error {
	cur := rc
	for _, e := range exprs {
		if err := checkRecursion(e, cur); err != nil {
			return err
		}
		cur = cur.extendIrrelevant()
	}
	return nil
}

func checkRecursionIndependent(exprs []ast.Expr, rc *rcon) error {
	for _, e := range exprs {
		if err := checkRecursion(e, rc); err != nil {
			return err
		}
	}
	return nil
}

func checkRecursionVconDef(def ast.VconDef, rc *rcon) error {
	if err := checkRecursionTelescope(def.ParamTypes, rc); err != nil {
		return err
	}
	rcWithParams := rc.extendN(uint64(len(def.ParamTypes)), rentry{kind: rIrrelevant})
	return checkRecursionIndependent(def.IndexArgs, rcWithParams)
}

func checkRecursionFun(fun *ast.Fun, rc *rcon) error {
	if err := checkRecursionTelescope(fun.ParamTypes, rc); err != nil {
		return err
	}
	n := uint64(len(fun.ParamTypes))
	rcWithParams := rc.extendN(n, rentry{kind: rIrrelevant})
	if err := checkRecursion(fun.ReturnType, rcWithParams); err != nil {
		return err
	}

	selfEntry := rentry{kind: rFunSelf, decreasingIndex: fun.DecreasingIndex}
	if fun.DecreasingIndex != nil {
		selfEntry.paramLevel = rc.Len() + *fun.DecreasingIndex
	}
	rcWithSelf := rcWithParams.extend(selfEntry)
	return checkRecursion(fun.ReturnVal, rcWithSelf)
}

func checkRecursionApp(app *ast.App, rc *rcon) error {
	if calleeDeb, ok := ast.AsDeb(app.Callee); ok {
		if entry, ok := rc.get(calleeDeb.Index); ok && entry.kind == rFunSelf {
			if entry.decreasingIndex == nil {
				return kernelerrors.NewDeclaredFunNonrecursiveButUsedRecursiveFunParam()
			}
			argIndex := int(*entry.decreasingIndex)
			if argIndex < len(app.Args) {
				if !isStrictSubstruct(app.Args[argIndex], entry.paramLevel, rc) {
					return kernelerrors.NewIllegalRecursiveCall(argIndex, entry.paramLevel)
				}
			}
			// Out-of-range decreasing_index: the typechecker's own arity
			// check (DecreasingArgIndexTooBig) reports this; don't
			// duplicate it here.
			return checkRecursionIndependent(app.Args, rc)
		}
	}

	if err := checkRecursion(app.Callee, rc); err != nil {
		return err
	}
	return checkRecursionIndependent(app.Args, rc)
}

// checkDebInNonCalleePosition flags any occurrence of a fun-self binder
// found somewhere checkRecursion did NOT special-case as a callee.
func checkDebInNonCalleePosition(d *ast.Deb, rc *rcon) error {
	entry, ok := rc.get(d.Index)
	if !ok || entry.kind != rFunSelf {
		return nil
	}
	if entry.decreasingIndex == nil {
		return kernelerrors.NewDeclaredFunNonrecursiveButUsedRecursiveFunParam()
	}
	return kernelerrors.NewRecursiveFunParamInNonCalleePosition()
}

// matchRootLevel computes the superstruct root that a match's pattern
// variables should inherit, when the matchee is itself a Deb. It propagates
// an existing StrictSubstructOf root transitively rather than starting a
// new one, so nested destructuring still traces back to the original
// decreasing parameter.
func matchRootLevel(matchee ast.Expr, rc *rcon) (level uint64, ok bool) {
	d, isDeb := ast.AsDeb(matchee)
	if !isDeb {
		return 0, false
	}
	entry, found := rc.get(d.Index)
	if !found {
		return 0, false
	}
	if entry.kind == rStrictSubstructOf {
		return entry.rootLevel, true
	}
	return entry.level, true
}

func isStrictSubstruct(arg ast.Expr, requiredLevel uint64, rc *rcon) bool {
	d, ok := ast.AsDeb(arg)
	if !ok {
		return false
	}
	entry, found := rc.get(d.Index)
	if !found {
		return false
	}
	return entry.kind == rStrictSubstructOf && entry.rootLevel == requiredLevel
}
