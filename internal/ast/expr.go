package ast

// Expr is the base interface for every core expression node. Each concrete
// variant is a distinct Go type so that callers use a type switch (or the
// As* helpers in downcast.go) to inspect a node, mirroring a closed sum
// type over Universe, Deb, Ind, Vcon, Match, Fun, App, and For.
type Expr interface {
	// Digest returns the node's precomputed semantic digest in O(1).
	Digest() Digest
	exprNode()
}

// node carries the one piece of state every variant shares: its digest. The
// field is unexported so a node can only come into being through this
// package's constructors, which are the only code that computes digests.
type node struct {
	digest Digest
}

func (n node) Digest() Digest { return n.digest }

// Ind is an inductive type family.
type Ind struct {
	node
	Name       string
	Level      uint64
	Erasable   bool // true = Prop (proof-irrelevant), false = Set
	IndexTypes []Expr
	VconDefs   []VconDef
}

func (*Ind) exprNode() {}

// VconDef is one variant constructor definition belonging to an Ind. It is
// not itself an Expr (it never appears standalone in a term) but it carries
// its own digest since it contributes to its owning Ind's digest and is
// useful to compare independently in diagnostics.
type VconDef struct {
	digest     Digest
	ParamTypes []Expr
	IndexArgs  []Expr
}

func (d VconDef) Digest() Digest { return d.digest }

// Vcon references the VconIndex-th constructor of Ind (0-based).
type Vcon struct {
	node
	Ind       *Ind
	VconIndex uint64
}

func (*Vcon) exprNode() {}

// MatchCase is one arm of a Match. Like VconDef it carries its own digest
// but is not an Expr on its own.
type MatchCase struct {
	digest    Digest
	Arity     uint64
	ReturnVal Expr
}

func (c MatchCase) Digest() Digest { return c.digest }

// Match is a dependent pattern match.
type Match struct {
	node
	Matchee         Expr
	ReturnTypeArity uint64
	ReturnType      Expr
	Cases           []MatchCase
}

func (*Match) exprNode() {}

// Fun is a (possibly recursive) function. DecreasingIndex is nil for
// non-recursive functions; otherwise it names the structurally-decreasing
// parameter.
type Fun struct {
	node
	DecreasingIndex *uint64
	ParamTypes      []Expr
	ReturnType      Expr
	ReturnVal       Expr
}

func (*Fun) exprNode() {}

// App is a function application with at least one argument once constructed
// through NewApp (see construct.go for the nullary-collapse rule).
type App struct {
	node
	Callee Expr
	Args   []Expr
}

func (*App) exprNode() {}

// For is a dependent function type with at least one parameter once
// constructed through NewFor.
type For struct {
	node
	ParamTypes []Expr
	ReturnType Expr
}

func (*For) exprNode() {}

// Deb is a de Bruijn index; index 0 refers to the innermost binder.
type Deb struct {
	node
	Index uint64
}

func (*Deb) exprNode() {}

// Universe is a sort. Erasable = true denotes the proof-irrelevant universe
// ("Prop") at Level; Erasable = false denotes the computational universe
// ("Set").
type Universe struct {
	node
	Level    uint64
	Erasable bool
}

func (*Universe) exprNode() {}

// TypeOfUniverse returns the type of Universe{l, e}: Universe{l+1, true}.
// Every universe lives in the erasable universe one level above it.
func TypeOfUniverse(u *Universe) *Universe {
	return NewUniverse(u.Level+1, true)
}
