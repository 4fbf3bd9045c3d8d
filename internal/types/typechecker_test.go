package types

import (
	"testing"

	"github.com/zoc-lang/zoc/internal/ast"
	"github.com/zoc-lang/zoc/internal/kernelerrors"
)

// natInd builds the Nat inductive used throughout the kernel's test suite:
// zero with no params, succ with one param (the predecessor) typed as Nat
// via the ind-self reference.
func natInd() *ast.Ind {
	zero := ast.NewVconDef(nil, nil)
	succ := ast.NewVconDef([]ast.Expr{ast.NewDeb(0)}, nil)
	return ast.NewInd("Nat", 0, false, nil, []ast.VconDef{zero, succ})
}

func TestNatIdentityTypeChecks(t *testing.T) {
	nat := natInd()
	// Inside return_val, Deb(0) addresses the function's own self-binder
	// (the innermost entry); Deb(1) addresses the sole param.
	identity := ast.NewFun(nil, []ast.Expr{nat}, nat, ast.NewDeb(1))

	c := New()
	got, err := c.TypeCheck(identity, Empty)
	if err != nil {
		t.Fatalf("identity on Nat should type-check, got error: %v", err)
	}
	if forType, ok := got.Expr().(*ast.For); !ok || len(forType.ParamTypes) != 1 {
		t.Fatalf("identity's type should be for(Nat; Nat), got %#v", got.Expr())
	}
}

func TestSuccessorApplicationTypeChecks(t *testing.T) {
	nat := natInd()
	zero := ast.NewVcon(nat, 0)
	one := ast.NewApp(ast.NewVcon(nat, 1), []ast.Expr{zero})

	c := New()
	got, err := c.TypeCheck(one, Empty)
	if err != nil {
		t.Fatalf("Succ(Zero) should type-check, got error: %v", err)
	}
	if got.Digest() != c.ev.Eval(nat).Digest() {
		t.Fatalf("Succ(Zero) should have type Nat, got %#v", got.Expr())
	}
}

func TestMatchOnNatTypeChecks(t *testing.T) {
	nat := natInd()
	zero := ast.NewVcon(nat, 0)

	// match Zero { Zero => Zero | Succ(n) => Zero } : Nat
	m := ast.NewMatch(zero, 1, nat, []ast.MatchCase{
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
		ast.NewMatchCase(1, ast.NewVcon(nat, 0)),
	})

	c := New()
	got, err := c.TypeCheck(m, Empty)
	if err != nil {
		t.Fatalf("match on Nat should type-check, got error: %v", err)
	}
	if got.Digest() != c.ev.Eval(nat).Digest() {
		t.Fatalf("match result type should be Nat, got %#v", got.Expr())
	}
}

func TestWrongMatchCaseArityIsRejected(t *testing.T) {
	nat := natInd()
	zero := ast.NewVcon(nat, 0)

	// Succ's constructor takes exactly one param; declaring its case with
	// arity 0 must be rejected.
	m := ast.NewMatch(zero, 1, nat, []ast.MatchCase{
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
	})

	c := New()
	_, err := c.TypeCheck(m, Empty)
	assertKernelError(t, err, kernelerrors.WrongMatchCaseArity)
}

func TestRecursionGuardAcceptsStructurallyDecreasingCall(t *testing.T) {
	nat := natInd()
	decIdx := uint64(0)

	// fun[0](Nat; Nat; match param0 { Zero => Zero | Succ(n) => self(n) })
	matchee := ast.NewDeb(1) // param0, as seen from inside return_val (self is Deb 0)
	zeroCase := ast.NewMatchCase(0, ast.NewVcon(nat, 0))
	// Inside the Succ case: n = Deb(0), self = Deb(1), param0 = Deb(2).
	succCase := ast.NewMatchCase(1, ast.NewApp(ast.NewDeb(1), []ast.Expr{ast.NewDeb(0)}))
	body := ast.NewMatch(matchee, 1, nat, []ast.MatchCase{zeroCase, succCase})
	f := ast.NewFun(&decIdx, []ast.Expr{nat}, nat, body)

	c := New()
	if _, err := c.TypeCheck(f, Empty); err != nil {
		t.Fatalf("structurally decreasing recursive function should type-check, got: %v", err)
	}
}

func TestRecursionGuardRejectsNonDecreasingCall(t *testing.T) {
	nat := natInd()
	decIdx := uint64(0)

	matchee := ast.NewDeb(1)
	zeroCase := ast.NewMatchCase(0, ast.NewVcon(nat, 0))
	// Illegal: recurses on param0 itself (Deb(2) in this scope) rather than
	// on the pattern variable n.
	succCase := ast.NewMatchCase(1, ast.NewApp(ast.NewDeb(1), []ast.Expr{ast.NewDeb(2)}))
	body := ast.NewMatch(matchee, 1, nat, []ast.MatchCase{zeroCase, succCase})
	f := ast.NewFun(&decIdx, []ast.Expr{nat}, nat, body)

	c := New()
	_, err := c.TypeCheck(f, Empty)
	assertKernelError(t, err, kernelerrors.IllegalRecursiveCall)
}

func TestErasabilityViolationIsRejected(t *testing.T) {
	// An erasable (Prop) family with two constructors, matched with two
	// cases into a non-erasable (Set) result type: the backend would have
	// to inspect a value it was promised never exists at runtime.
	squash := ast.NewInd("Squash", 0, true, nil, []ast.VconDef{
		ast.NewVconDef(nil, nil),
		ast.NewVconDef(nil, nil),
	})
	scrutinee := ast.NewVcon(squash, 0)
	nat := natInd()
	m := ast.NewMatch(scrutinee, 1, nat, []ast.MatchCase{
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
		ast.NewMatchCase(0, ast.NewApp(ast.NewVcon(nat, 1), []ast.Expr{ast.NewVcon(nat, 0)})),
	})

	c := New()
	if _, err := c.Infer(m, Empty); err != nil {
		t.Fatalf("the match itself should type-check before erasability runs, got: %v", err)
	}
	err := c.CheckErasability(m, Empty)
	assertKernelError(t, err, kernelerrors.ErasabilityViolation)
}

func TestErasabilitySingleCaseMatchIsExempt(t *testing.T) {
	// A match on a family with one constructor whose fields are all erasable
	// (here: none) never branches, so it's exempt even when the scrutinee is
	// erasable and the result type is not.
	unit := ast.NewInd("Squash1", 0, true, nil, []ast.VconDef{ast.NewVconDef(nil, nil)})
	scrutinee := ast.NewVcon(unit, 0)
	nat := natInd()
	m := ast.NewMatch(scrutinee, 1, nat, []ast.MatchCase{
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
	})

	c := New()
	if _, err := c.TypeCheck(m, Empty); err != nil {
		t.Fatalf("single-case match on an erasable scrutinee should type-check, got: %v", err)
	}
}

func assertKernelError(t *testing.T, err error, want kernelerrors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s, got none", want)
	}
	kerr, ok := err.(*kernelerrors.Error)
	if !ok {
		t.Fatalf("expected *kernelerrors.Error, got %T: %v", err, err)
	}
	if kerr.Kind != want {
		t.Fatalf("expected error kind %s, got %s", want, kerr.Kind)
	}
}
