// Package types implements the type checker, inductive well-formedness,
// the recursion guard, and the erasability checker. Infer is the single
// entry point all of these compose around: `tcon ⊢ e : T`.
package types

import "github.com/zoc-lang/zoc/internal/eval"

// Context is the typing context tcon: an ordered sequence of normalized
// types, one per de Bruijn binder in scope, index 0 addressing the most
// recently introduced entry. It's a persistent linked list (parent chain)
// like an interpreter's variable environment, so extending it for one
// branch of the checker never disturbs a sibling branch holding the
// un-extended context.
type Context struct {
	value  eval.NormalForm
	parent *Context
	len    uint64
}

// Empty is the empty typing context, typical at the top of a compilation.
var Empty *Context = nil

// Len returns the number of bindings in scope.
func (c *Context) Len() uint64 {
	if c == nil {
		return 0
	}
	return c.len
}

// Get returns the type stored at de Bruijn index i, or false if i is out of
// range.
func (c *Context) Get(i uint64) (eval.NormalForm, bool) {
	cur := c
	for cur != nil && i > 0 {
		cur = cur.parent
		i--
	}
	if cur == nil {
		return eval.NormalForm{}, false
	}
	return cur.value, true
}

// Extend returns a new context with t as the new innermost (index 0) entry.
func (c *Context) Extend(t eval.NormalForm) *Context {
	return &Context{value: t, parent: c, len: c.Len() + 1}
}

// ExtendAll extends the context with ts in order: ts[0] becomes the
// outermost of the new entries, ts[len-1] the innermost.
func (c *Context) ExtendAll(ts []eval.NormalForm) *Context {
	cur := c
	for _, t := range ts {
		cur = cur.Extend(t)
	}
	return cur
}
