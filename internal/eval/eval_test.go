package eval

import (
	"testing"

	"github.com/zoc-lang/zoc/internal/ast"
)

// natInd builds the Nat inductive used throughout the kernel's test suite.
func natInd() *ast.Ind {
	zero := ast.NewVconDef(nil, nil)
	succ := ast.NewVconDef([]ast.Expr{ast.NewDeb(0) /* Nat (self) */}, nil)
	return ast.NewInd("Nat", 0, false, nil, []ast.VconDef{zero, succ})
}

func TestNormalizationIdempotence(t *testing.T) {
	nat := natInd()
	ev := New()
	once := ev.Eval(nat)
	twice := ev.Eval(once.Expr())
	if once.Digest() != twice.Digest() {
		t.Errorf("normalize(normalize(e)) != normalize(e)")
	}
}

func TestSuccessorApplicationStaysStuck(t *testing.T) {
	nat := natInd()
	zero := ast.NewVcon(nat, 0)
	one := ast.NewApp(ast.NewVcon(nat, 1), []ast.Expr{zero})

	ev := New()
	got := ev.Eval(one)
	if got.Digest() != one.Digest() {
		t.Errorf("normalizing an already-normal constructor application should be a no-op")
	}
}

func TestMatchOnVconReduces(t *testing.T) {
	nat := natInd()
	zero := ast.NewVcon(nat, 0)

	// match zero { Zero => zero | Succ(n) => n }
	m := ast.NewMatch(zero, 1, nat, []ast.MatchCase{
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
		ast.NewMatchCase(1, ast.NewDeb(0)),
	})

	ev := New()
	got := ev.Eval(m)
	wantVcon, ok := ast.AsVcon(got.Expr())
	if !ok || wantVcon.VconIndex != 0 {
		t.Fatalf("match on Zero should reduce to Zero, got %#v", got.Expr())
	}
}

func TestMatchOnVconApplicationSubstitutesArgs(t *testing.T) {
	nat := natInd()
	one := ast.NewApp(ast.NewVcon(nat, 1), []ast.Expr{ast.NewVcon(nat, 0)})

	// match (Succ Zero) { Zero => Zero | Succ(n) => n } should reduce to Zero.
	m := ast.NewMatch(one, 1, nat, []ast.MatchCase{
		ast.NewMatchCase(0, ast.NewVcon(nat, 0)),
		ast.NewMatchCase(1, ast.NewDeb(0)),
	})

	ev := New()
	got := ev.Eval(m)
	v, ok := ast.AsVcon(got.Expr())
	if !ok || v.VconIndex != 0 {
		t.Fatalf("match on Succ(Zero) selecting n should reduce to Zero, got %#v", got.Expr())
	}
}

func TestBetaReductionOfNonRecursiveFunction(t *testing.T) {
	nat := natInd()

	// fun[nonrec](Nat; Nat; Deb 1) applied to Zero should reduce to Zero.
	// Deb(0) in return_val's scope is the function's own self-binder; the
	// sole param sits at Deb(1).
	identity := ast.NewFun(nil, []ast.Expr{nat}, nat, ast.NewDeb(1))
	app := ast.NewApp(identity, []ast.Expr{ast.NewVcon(nat, 0)})

	ev := New()
	got := ev.Eval(app)
	v, ok := ast.AsVcon(got.Expr())
	if !ok || v.VconIndex != 0 {
		t.Fatalf("identity(Zero) should reduce to Zero, got %#v", got.Expr())
	}
}

func TestStuckApplicationUnderDecreasingGuard(t *testing.T) {
	nat := natInd()
	decIdx := uint64(0)

	// A recursive function whose decreasing arg is a bare Deb (not a
	// canonical constructor application) must stay stuck rather than fire.
	// Inside return_val, Deb(0) is the function's self-binder and Deb(1) its
	// sole param.
	selfCall := ast.NewApp(ast.NewDeb(0), []ast.Expr{ast.NewDeb(1)})
	f := ast.NewFun(&decIdx, []ast.Expr{nat}, nat, selfCall)
	app := ast.NewApp(f, []ast.Expr{ast.NewDeb(9)}) // arg is a free var, not a vcon app

	ev := New()
	got := ev.Eval(app)
	if _, ok := ast.AsApp(got.Expr()); !ok {
		t.Fatalf("application with non-canonical decreasing arg must stay stuck, got %#v", got.Expr())
	}
}
