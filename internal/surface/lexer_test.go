package surface

import "testing"

func TestLexerTokensReservedKeywords(t *testing.T) {
	src := `ind vcon vcon_def match fun for nonrec Set Prop Type def in erasable computational case ( ) [ ] , ; = 42`
	want := []TokenType{
		IND, VCON, VCONDEF, MATCH, FUN, FOR, NONREC, SET, PROP, TYPE,
		DEF, IN, ERASABLE, COMPUTATIONAL, CASE,
		LPAREN, RPAREN, LBRACKET, RBRACKET, COMMA, SEMI, ASSIGN, INT, EOF,
	}

	l := New([]byte(src), "test.zo")
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token %d: want %s, got %s (%q)", i, wantType, tok.Type, tok.Literal)
		}
	}
}

func TestLexerSkipsLineComments(t *testing.T) {
	src := "-- a comment\nfun"
	l := New([]byte(src), "test.zo")
	tok := l.NextToken()
	if tok.Type != FUN {
		t.Fatalf("want FUN after comment, got %s", tok.Type)
	}
}

func TestLexerIdentifierNotKeyword(t *testing.T) {
	l := New([]byte("Nat"), "test.zo")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "Nat" {
		t.Fatalf("want IDENT Nat, got %s %q", tok.Type, tok.Literal)
	}
}
