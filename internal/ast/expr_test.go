package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDigestCanonicity(t *testing.T) {
	a := NewDeb(0)
	b := NewDeb(0)
	c := NewDeb(1)

	if a.Digest() != b.Digest() {
		t.Errorf("Deb(0) and Deb(0) should share a digest")
	}
	if a.Digest() == c.Digest() {
		t.Errorf("Deb(0) and Deb(1) must not share a digest")
	}
}

func TestDigestDistinguishesShapeNotJustFields(t *testing.T) {
	// Universe{0, false} and Deb{0} must never collide even though both
	// encode the natural number zero somewhere in their field stream.
	u := NewUniverse(0, false)
	d := NewDeb(0)
	if u.Digest() == d.Digest() {
		t.Errorf("Universe{0,false} and Deb{0} must not share a digest")
	}
}

func TestAppNullaryCollapse(t *testing.T) {
	callee := NewDeb(0)
	got := NewApp(callee, nil)
	if got != Expr(callee) {
		t.Errorf("App(callee, []) should collapse to callee itself")
	}
}

func TestForNullaryCollapse(t *testing.T) {
	ret := NewDeb(0)
	got := NewFor(nil, ret)
	if got != Expr(ret) {
		t.Errorf("For([], ret) should collapse to ret itself")
	}
}

func TestVconIndexOutOfRangeIsRepresentable(t *testing.T) {
	ind := NewInd("Empty", 0, false, nil, nil)
	v := NewVcon(ind, 5)
	if v.VconIndex != 5 {
		t.Errorf("Vcon should preserve an out-of-range index for the checker to reject")
	}
}

func TestOrderSensitivity(t *testing.T) {
	ind := NewInd("Nat", 0, false, nil, []VconDef{
		NewVconDef(nil, nil),
		NewVconDef([]Expr{NewDeb(0)}, nil),
	})
	reordered := NewInd("Nat", 0, false, nil, []VconDef{
		NewVconDef([]Expr{NewDeb(0)}, nil),
		NewVconDef(nil, nil),
	})
	if cmp.Equal(ind.Digest(), reordered.Digest()) {
		t.Errorf("reordering vcon defs must change the digest")
	}
}

func TestAsIndApplication(t *testing.T) {
	ind := NewInd("Vec", 0, false, []Expr{NewUniverse(0, false)}, nil)
	app := NewApp(ind, []Expr{NewDeb(0)})

	gotInd, indices, ok := AsIndApplication(app)
	if !ok || gotInd != ind || len(indices) != 1 {
		t.Fatalf("AsIndApplication(App(Ind, [i])) = %v, %v, %v", gotInd, indices, ok)
	}

	gotInd2, indices2, ok2 := AsIndApplication(ind)
	if !ok2 || gotInd2 != ind || len(indices2) != 0 {
		t.Fatalf("AsIndApplication(Ind) = %v, %v, %v", gotInd2, indices2, ok2)
	}
}
