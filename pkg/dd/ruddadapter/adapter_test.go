package ruddadapter

import (
	"testing"

	"github.com/qfr-project/qfr/pkg/dd"
)

func TestBuildRequiresTargetLine(t *testing.T) {
	a := New(4)
	_, err := a.Build(dd.GateX, []dd.LineEntry{dd.LineDefault, dd.LineDefault}, [3]float64{})
	if err == nil {
		t.Fatal("expected an error when no line entry is LineTarget")
	}
}

func TestBuildAndMultiplyRoundTrip(t *testing.T) {
	a := New(4)
	line := []dd.LineEntry{dd.LinePositiveControl, dd.LineTarget, dd.LineNegativeControl}
	e1, err := a.Build(dd.GateX, line, [3]float64{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	e2, err := a.Build(dd.GateX, []dd.LineEntry{dd.LineDefault, dd.LineDefault, dd.LineTarget}, [3]float64{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := a.Multiply(e1, e2); err != nil {
		t.Fatalf("Multiply: %v", err)
	}
}

func TestDynamicReorderPermutesVariables(t *testing.T) {
	a := New(3)
	e, err := a.Build(dd.GateX, []dd.LineEntry{dd.LineTarget, dd.LineDefault, dd.LineDefault}, [3]float64{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := a.DynamicReorder(e, []int{2, 1, 0}, "sift"); err != nil {
		t.Fatalf("DynamicReorder: %v", err)
	}
}
