package expr

import (
	"math"
	"testing"

	"github.com/qfr-project/qfr/pkg/qlex"
)

func parseString(t *testing.T, s string) *Node {
	t.Helper()
	lx := qlex.New("test", s)
	c, err := qlex.NewCursor(lx)
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}
	n, err := Parse(c)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func TestConstantFoldingCollapsesToNumber(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1+2", 3},
		{"2*3+4", 10},
		{"pi/2", math.Pi / 2},
		{"-pi", -math.Pi},
		{"2^3", 8},
		{"sin(0)", 0},
		{"sqrt(4)", 2},
		{"(1+1)*3", 6},
	}
	for _, tt := range tests {
		n := parseString(t, tt.src)
		if n.Tag != Number {
			t.Fatalf("%q: expected folded Number node, got tag %v", tt.src, n.Tag)
		}
		if math.Abs(n.Value-tt.want) > 1e-12 {
			t.Errorf("%q: got %v, want %v", tt.src, n.Value, tt.want)
		}
	}
}

func TestFreeIdentifierSurvivesUntilSubstitute(t *testing.T) {
	n := parseString(t, "theta/2")
	if n.Tag == Number {
		t.Fatal("expected a non-folded node while theta is free")
	}
	if _, err := Evaluate(n); err == nil {
		t.Fatal("expected unresolved_identifier error")
	}

	substituted := Substitute(n, map[string]*Node{"theta": number(math.Pi)})
	if substituted.Tag != Number {
		t.Fatalf("expected substitution to fold to Number, got tag %v", substituted.Tag)
	}
	got, err := Evaluate(substituted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("got %v, want %v", got, math.Pi/2)
	}
}

func TestSubstituteMatchesDirectEvaluation(t *testing.T) {
	n := parseString(t, "2*a - b/3")
	env := map[string]*Node{"a": number(5), "b": number(9)}
	substituted := Substitute(n, env)
	got, err := Evaluate(substituted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2*5.0 - 9.0/3.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInvalidExpressionError(t *testing.T) {
	lx := qlex.New("test", "1 +")
	c, err := qlex.NewCursor(lx)
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}
	if _, err := Parse(c); err == nil {
		t.Fatal("expected invalid_expression error for trailing operator")
	}
}
