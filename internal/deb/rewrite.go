package deb

import "github.com/zoc-lang/zoc/internal/ast"

// cacheKey identifies a (subterm, cutoff) pair within one rewrite pass.
// Because subterms are structurally shared, many App/For/Match spines visit
// the same child digest at the same cutoff repeatedly; caching makes
// repeated rewrites amortized O(1).
type cacheKey struct {
	digest ast.Digest
	cutoff uint64
}

// walker bundles the policy, the expression tree walk, and the memo table
// for a single top-level Rewrite call.
type walker struct {
	policy Rewriter
	memo   map[cacheKey]ast.Expr
}

// Rewrite applies r to every Deb in expr, treating cutoff as the number of
// binders already crossed before expr was reached (0 for a top-level call).
func Rewrite(expr ast.Expr, r Rewriter, cutoff uint64) ast.Expr {
	w := &walker{policy: r, memo: make(map[cacheKey]ast.Expr)}
	return w.rewrite(expr, cutoff)
}

func (w *walker) rewrite(expr ast.Expr, cutoff uint64) ast.Expr {
	key := cacheKey{digest: expr.Digest(), cutoff: cutoff}
	if cached, ok := w.memo[key]; ok {
		return cached
	}

	result := w.rewriteUncached(expr, cutoff)
	w.memo[key] = result
	return result
}

func (w *walker) rewriteUncached(expr ast.Expr, cutoff uint64) ast.Expr {
	switch e := expr.(type) {
	case *ast.Universe:
		return e

	case *ast.Deb:
		return w.policy.Rewrite(e.Index, cutoff)

	case *ast.Vcon:
		// e.Ind is always a closed, independently-hashed term by the time a
		// Vcon exists (the typechecker substitutes the ind's own recursive
		// self-reference away when it builds a Vcon's type); it carries no
		// free variables relative to the enclosing scope, so it is never
		// rewritten here.
		return ast.NewVcon(e.Ind, e.VconIndex)

	case *ast.Ind:
		indexTypes := w.rewriteTelescope(e.IndexTypes, cutoff)
		vconDefs := make([]ast.VconDef, len(e.VconDefs))
		for i, def := range e.VconDefs {
			vconDefs[i] = w.rewriteVconDef(def, cutoff+1)
		}
		return ast.NewInd(e.Name, e.Level, e.Erasable, indexTypes, vconDefs)

	case *ast.Match:
		matchee := w.rewrite(e.Matchee, cutoff)
		returnType := w.rewrite(e.ReturnType, cutoff+e.ReturnTypeArity)
		cases := make([]ast.MatchCase, len(e.Cases))
		for i, c := range e.Cases {
			cases[i] = ast.NewMatchCase(c.Arity, w.rewrite(c.ReturnVal, cutoff+c.Arity))
		}
		return ast.NewMatch(matchee, e.ReturnTypeArity, returnType, cases)

	case *ast.Fun:
		paramTypes := w.rewriteTelescope(e.ParamTypes, cutoff)
		n := uint64(len(e.ParamTypes))
		returnType := w.rewrite(e.ReturnType, cutoff+n)
		returnVal := w.rewrite(e.ReturnVal, cutoff+n+1)
		return ast.NewFun(e.DecreasingIndex, paramTypes, returnType, returnVal)

	case *ast.App:
		callee := w.rewrite(e.Callee, cutoff)
		args := w.rewriteIndependent(e.Args, cutoff)
		return ast.NewApp(callee, args)

	case *ast.For:
		paramTypes := w.rewriteTelescope(e.ParamTypes, cutoff)
		n := uint64(len(e.ParamTypes))
		returnType := w.rewrite(e.ReturnType, cutoff+n)
		return ast.NewFor(paramTypes, returnType)

	default:
		panic("deb: unknown expr variant")
	}
}

// rewriteTelescope walks each element with an increasing cutoff: element k
// is in scope of elements 0..k-1, exactly as a chain of binders would be
// (Ind's index types, a vcon def's params, a Fun or For's param list).
func (w *walker) rewriteTelescope(exprs []ast.Expr, cutoff uint64) []ast.Expr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for k, e := range exprs {
		out[k] = w.rewrite(e, cutoff+uint64(k))
	}
	return out
}

// rewriteIndependent walks each element at the same cutoff: the elements do
// not bind each other (App's args, a vcon def's index args).
func (w *walker) rewriteIndependent(exprs []ast.Expr, cutoff uint64) []ast.Expr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for k, e := range exprs {
		out[k] = w.rewrite(e, cutoff)
	}
	return out
}

func (w *walker) rewriteVconDef(def ast.VconDef, cutoffAfterSelf uint64) ast.VconDef {
	paramTypes := w.rewriteTelescope(def.ParamTypes, cutoffAfterSelf)
	indexArgs := w.rewriteIndependent(def.IndexArgs, cutoffAfterSelf+uint64(len(def.ParamTypes)))
	return ast.NewVconDef(paramTypes, indexArgs)
}
