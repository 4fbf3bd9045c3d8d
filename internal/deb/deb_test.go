package deb

import (
	"testing"

	"github.com/zoc-lang/zoc/internal/ast"
)

func TestUpshiftIdentity(t *testing.T) {
	e := ast.NewDeb(3)
	got := Upshift(e, 0)
	if got.Digest() != e.Digest() {
		t.Errorf("Upshift(e, 0) changed digest")
	}
}

func TestUpshiftComposition(t *testing.T) {
	e := ast.NewFor([]ast.Expr{ast.NewUniverse(0, false)}, ast.NewDeb(5))

	composed := Upshift(Upshift(e, 2), 3)
	direct := Upshift(e, 5)

	if composed.Digest() != direct.Digest() {
		t.Errorf("upshift(a, upshift(b, e)) != upshift(a+b, e)")
	}
}

func TestUpshiftOnlyTouchesFreeVariables(t *testing.T) {
	// For(Set0; Deb 0) -- the Deb 0 here is bound by the For, so shifting
	// the whole For by n must not touch it.
	body := ast.NewDeb(0)
	for_ := ast.NewFor([]ast.Expr{ast.NewUniverse(0, false)}, body)

	shifted := Upshift(for_, 10)
	sf, ok := ast.AsFor(shifted)
	if !ok {
		t.Fatalf("expected For, got %T", shifted)
	}
	rd, ok := ast.AsDeb(sf.ReturnType)
	if !ok || rd.Index != 0 {
		t.Errorf("bound Deb 0 must stay 0 under upshift, got %#v", sf.ReturnType)
	}
}

func TestSubstituteEmptyListIsIdentity(t *testing.T) {
	e := ast.NewDeb(2)
	got := Substitute(e, nil)
	if got.Digest() != e.Digest() {
		t.Errorf("Substitute(e, []) changed digest")
	}
}

func TestSubstituteBasic(t *testing.T) {
	// Replace Deb 0 with Universe Set7 in the term `Deb 0`.
	repl := ast.NewUniverse(7, false)
	got := Substitute(ast.NewDeb(0), []ast.Expr{repl})
	u, ok := ast.AsUniverse(got)
	if !ok || u.Level != 7 {
		t.Fatalf("Substitute(Deb 0, [Set7]) = %#v, want Set7", got)
	}
}

func TestSubstituteUpshiftsReplacementUnderBinders(t *testing.T) {
	// for(Set0; Deb 1) with Deb 1 referring one level out (past the for's
	// own param). Substituting Deb 4 for the *outer* scope's Deb 0 must land
	// under the for's binder upshifted by the one binder crossed: Deb 5.
	replacement := ast.NewDeb(4) // a free variable from the substitution site
	body := ast.NewDeb(1)        // refers one level past the for's param, i.e. the free var that will be replaced
	for_ := ast.NewFor([]ast.Expr{ast.NewUniverse(0, false)}, body)

	got := Substitute(for_, []ast.Expr{replacement})
	gf, ok := ast.AsFor(got)
	if !ok {
		t.Fatalf("expected For, got %#v", got)
	}
	d, ok := ast.AsDeb(gf.ReturnType)
	if !ok {
		t.Fatalf("expected Deb, got %#v", gf.ReturnType)
	}
	if d.Index != 5 {
		t.Errorf("substituted replacement should be upshifted by 1 binder crossed: got Deb %d, want Deb 5", d.Index)
	}
}

func TestSubstituteDownshiftsExprsAboveRange(t *testing.T) {
	e := ast.NewDeb(3)
	got := Substitute(e, []ast.Expr{ast.NewUniverse(0, false)})
	d, ok := ast.AsDeb(got)
	if !ok || d.Index != 2 {
		t.Errorf("Deb above substitution range should downshift by len(newExprs): got %#v", got)
	}
}

func TestMultiSubstitutionOrdering(t *testing.T) {
	// Substituting [a, b] (a outermost at index 1, b innermost at index 0).
	a := ast.NewUniverse(10, false)
	b := ast.NewUniverse(20, false)

	gotB := Substitute(ast.NewDeb(0), []ast.Expr{a, b})
	gotA := Substitute(ast.NewDeb(1), []ast.Expr{a, b})

	ub, _ := ast.AsUniverse(gotB)
	ua, _ := ast.AsUniverse(gotA)
	if ub == nil || ub.Level != 20 {
		t.Errorf("Deb 0 should substitute the innermost (last) entry: got %#v", gotB)
	}
	if ua == nil || ua.Level != 10 {
		t.Errorf("Deb 1 should substitute the outermost (first) entry: got %#v", gotA)
	}
}
