package surface

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoc-lang/zoc/internal/ast"
)

const natSource = `def Nat = ind[Nat, 0, computational, [], [
	vcon_def([]; []),
	vcon_def([0]; [])
]];
fun[0](Nat; Nat; match(1; 1; Nat; [
	case(0; vcon(Nat, 0)),
	case(1; 0)
]))`

func TestParseProgramBuildsFunOverNat(t *testing.T) {
	expr, aux, err := ParseProgram([]byte(natSource), "nat.zo")
	require.NoError(t, err)
	require.NotNil(t, aux)

	f, ok := ast.AsFun(expr)
	require.True(t, ok, "top-level expression should be a Fun, got %T", expr)
	require.NotNil(t, f.DecreasingIndex)
	require.Equal(t, uint64(0), *f.DecreasingIndex)
	require.Len(t, f.ParamTypes, 1)

	m, ok := ast.AsMatch(f.ReturnVal)
	require.True(t, ok, "function body should be a Match, got %T", f.ReturnVal)
	require.Len(t, m.Cases, 2)
}

func TestParseProgramRejectsUnknownIdent(t *testing.T) {
	_, _, err := ParseProgram([]byte("Bogus"), "bad.zo")
	require.Error(t, err)

	perr, ok := err.(*ParseError)
	require.True(t, ok)
	require.Equal(t, "SUR_UNKNOWN_IDENT", perr.Code)
}

func TestParseProgramRejectsTrailingInput(t *testing.T) {
	_, _, err := ParseProgram([]byte("0 0"), "bad.zo")
	require.Error(t, err)
}

func TestParseUniverseLiterals(t *testing.T) {
	expr, _, err := ParseProgram([]byte("Prop 3"), "u.zo")
	require.NoError(t, err)

	u, ok := ast.AsUniverse(expr)
	require.True(t, ok)
	require.Equal(t, uint64(3), u.Level)
	require.True(t, u.Erasable)
}
