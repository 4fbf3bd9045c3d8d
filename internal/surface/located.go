package surface

import (
	"fmt"

	"github.com/zoc-lang/zoc/internal/ast"
)

// Pos is a source position, grounded on the teacher's ast.Pos.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open source range.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.Line, s.End.Column)
}

// AuxData carries auxiliary data alongside the core AST without widening
// it: the core internal/ast.Expr family never carries position information,
// so the surface layer keeps spans in a side table keyed by the
// digest-identified node rather than changing the core node shape itself.
//
// A map keyed by digest is sound here because the core guarantees digest
// canonicity: two structurally distinct nodes never collide, and two
// structurally identical nodes sharing one span table entry is correct —
// they really are the same term.
type AuxData struct {
	spans map[ast.Digest]Span
}

// NewAuxData creates an empty span table.
func NewAuxData() *AuxData {
	return &AuxData{spans: make(map[ast.Digest]Span)}
}

// Record remembers the span at which digest's node was parsed. Later
// records for the same digest are ignored: the first occurrence in source
// order is the one worth reporting in a diagnostic.
func (a *AuxData) Record(digest ast.Digest, span Span) {
	if _, exists := a.spans[digest]; exists {
		return
	}
	a.spans[digest] = span
}

// Lookup returns the span recorded for digest, if any.
func (a *AuxData) Lookup(digest ast.Digest) (Span, bool) {
	s, ok := a.spans[digest]
	return s, ok
}
