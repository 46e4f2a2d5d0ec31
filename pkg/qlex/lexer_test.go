package qlex

import "testing"

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Kind
	}{
		{
			name: "header",
			src:  "OPENQASM 2.0;",
			want: []Kind{KwOpenQASM, Real, Semicolon, EOF},
		},
		{
			name: "qreg decl",
			src:  "qreg q[2];",
			want: []Kind{KwQreg, Identifier, LBracket, NNInteger, RBracket, Semicolon, EOF},
		},
		{
			name: "gate call with params",
			src:  "U(0,0,pi/2) q[0];",
			want: []Kind{KwU, LParen, NNInteger, Comma, NNInteger, Comma, Pi, Slash, NNInteger, RParen,
				Identifier, LBracket, NNInteger, RBracket, Semicolon, EOF},
		},
		{
			name: "comment skipped",
			src:  "// a comment\nh q[0];",
			want: []Kind{Identifier, Identifier, LBracket, NNInteger, RBracket, Semicolon, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := New("test", tt.src)
			for i, wantKind := range tt.want {
				tok, err := lx.NextToken()
				if err != nil {
					t.Fatalf("token %d: unexpected error: %v", i, err)
				}
				if tok.Kind != wantKind {
					t.Errorf("token %d: got kind %s, want %s", i, tok.Kind, wantKind)
				}
			}
		})
	}
}

func TestLexerInclude(t *testing.T) {
	lx := New("main", `include "lib.inc"; h q[0];`)
	// main consumes: KwInclude, String, Semicolon
	for _, want := range []Kind{KwInclude, String, Semicolon} {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != want {
			t.Fatalf("got %s, want %s", tok.Kind, want)
		}
	}
	lx.Push("lib.inc", "x q[1];")
	for _, want := range []Kind{Identifier, Identifier, LBracket, NNInteger, RBracket, Semicolon} {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != want {
			t.Fatalf("got %s, want %s", tok.Kind, want)
		}
	}
	// lib.inc exhausted: should transparently resume main's remaining tokens
	for _, want := range []Kind{Identifier, Identifier, LBracket, NNInteger, RBracket, Semicolon, EOF} {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != want {
			t.Fatalf("got %s, want %s", tok.Kind, want)
		}
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	lx := New("test", `include "oops`)
	if _, err := lx.NextToken(); err != nil {
		t.Fatalf("unexpected error on include token: %v", err)
	}
	if _, err := lx.NextToken(); err == nil {
		t.Fatal("expected lex error for unterminated string")
	}
}
