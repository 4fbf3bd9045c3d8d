package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoc-lang/zoc/internal/kernelerrors"
	"github.com/zoc-lang/zoc/internal/surface"
	"github.com/zoc-lang/zoc/internal/types"
)

// TestCheckPipelineOnExamples runs the same parse-then-typecheck pipeline
// as checkFile over the example snippets, grounded on the teacher's
// cmd/test_integration end-to-end pipeline test but exercised against this
// kernel's own .zo examples rather than a constraint-resolution pipeline.
func TestCheckPipelineOnExamples(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantErr    bool
		wantKind   kernelerrors.Kind
	}{
		{name: "nat identity", file: "nat_identity.zo", wantErr: false},
		{name: "nat successor", file: "nat_successor.zo", wantErr: false},
		{name: "match on nat", file: "match_on_nat.zo", wantErr: false},
		{name: "recursion guard violation", file: "recursion_guard_violation.zo", wantErr: true, wantKind: kernelerrors.IllegalRecursiveCall},
		{name: "erasability violation", file: "erasability_violation.zo", wantErr: true, wantKind: kernelerrors.ErasabilityViolation},
		{name: "wrong match arity", file: "wrong_match_arity.zo", wantErr: true, wantKind: kernelerrors.WrongMatchReturnTypeArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join("..", "..", "examples", tt.file)
			src, err := os.ReadFile(path)
			require.NoError(t, err, "reading example file")

			expr, _, err := surface.ParseProgram(src, path)
			require.NoError(t, err, "parsing example file")

			c := types.New()
			_, err = c.TypeCheck(expr, types.Empty)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			kerr, ok := err.(*kernelerrors.Error)
			require.True(t, ok, "expected a *kernelerrors.Error, got %T", err)
			require.Equal(t, tt.wantKind, kerr.Kind)
		})
	}
}
