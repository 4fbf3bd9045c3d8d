package ast

// AsInd attempts to view expr as an *Ind.
func AsInd(expr Expr) (*Ind, bool) {
	v, ok := expr.(*Ind)
	return v, ok
}

// AsVcon attempts to view expr as a *Vcon.
func AsVcon(expr Expr) (*Vcon, bool) {
	v, ok := expr.(*Vcon)
	return v, ok
}

// AsMatch attempts to view expr as a *Match.
func AsMatch(expr Expr) (*Match, bool) {
	v, ok := expr.(*Match)
	return v, ok
}

// AsFun attempts to view expr as a *Fun.
func AsFun(expr Expr) (*Fun, bool) {
	v, ok := expr.(*Fun)
	return v, ok
}

// AsApp attempts to view expr as an *App.
func AsApp(expr Expr) (*App, bool) {
	v, ok := expr.(*App)
	return v, ok
}

// AsFor attempts to view expr as a *For.
func AsFor(expr Expr) (*For, bool) {
	v, ok := expr.(*For)
	return v, ok
}

// AsDeb attempts to view expr as a *Deb.
func AsDeb(expr Expr) (*Deb, bool) {
	v, ok := expr.(*Deb)
	return v, ok
}

// AsUniverse attempts to view expr as a *Universe.
func AsUniverse(expr Expr) (*Universe, bool) {
	v, ok := expr.(*Universe)
	return v, ok
}

// AsIndApplication recognizes both `Ind` and `App(Ind, indices)` shapes,
// which is how an inductive family's type appears once applied to indices.
// It returns the Ind and the (possibly empty) index arguments.
func AsIndApplication(expr Expr) (ind *Ind, indices []Expr, ok bool) {
	if i, isInd := AsInd(expr); isInd {
		return i, nil, true
	}
	if a, isApp := AsApp(expr); isApp {
		if i, isInd := AsInd(a.Callee); isInd {
			return i, a.Args, true
		}
	}
	return nil, nil, false
}
