// Package ruddadapter is a thin dd.Engine implementation backed by
// github.com/dalzilio/rudd, a Boolean-function BDD library — not a
// quantum decision diagram. It exists only so pkg/circuit's tests can
// exercise Operation.DDAttach end-to-end against something real satisfying
// the interface; the "gates" it builds are Boolean predicates over line
// roles, not unitary matrices, and carry no quantum-mechanical meaning.
package ruddadapter

import (
	"fmt"

	rudd "github.com/dalzilio/rudd"

	"github.com/qfr-project/qfr/pkg/dd"
)

// Adapter wraps a rudd.BDD sized for a fixed number of boolean variables,
// one per physical qubit the caller intends to address.
type Adapter struct {
	set *rudd.BDD
}

var _ dd.Engine = (*Adapter)(nil)

// New allocates an Adapter with room for nvars variables.
func New(nvars int) *Adapter {
	set, err := rudd.New(nvars, rudd.Nodesize(1000))
	if err != nil {
		panic(fmt.Errorf("ruddadapter: %w", err))
	}
	return &Adapter{set: set}
}

// Build conjoins the control literals (positive variables for positive
// controls, negated for negative controls) with the target variable.
func (a *Adapter) Build(kind dd.OpType, line []dd.LineEntry, params [3]float64) (dd.Edge, error) {
	_ = kind
	_ = params
	var target rudd.Node
	haveTarget := false
	controls := a.set.True()
	for i, role := range line {
		switch role {
		case dd.LineTarget:
			target = a.set.Ithvar(i)
			haveTarget = true
		case dd.LinePositiveControl:
			controls = a.set.And(controls, a.set.Ithvar(i))
		case dd.LineNegativeControl:
			controls = a.set.And(controls, a.set.NIthvar(i))
		}
	}
	if !haveTarget {
		return dd.Edge{}, fmt.Errorf("ruddadapter: Build called with no target line")
	}
	node := a.set.And(controls, target)
	if msg := a.set.Error(); msg != "" {
		return dd.Edge{}, fmt.Errorf("ruddadapter: %s", msg)
	}
	return dd.Edge{Node: node}, nil
}

// Multiply conjoins the two edges' predicates.
func (a *Adapter) Multiply(x, y dd.Edge) (dd.Edge, error) {
	left, lok := x.Node.(rudd.Node)
	right, rok := y.Node.(rudd.Node)
	if !lok || !rok {
		return dd.Edge{}, fmt.Errorf("ruddadapter: Multiply given a non-rudd edge")
	}
	node := a.set.And(left, right)
	if msg := a.set.Error(); msg != "" {
		return dd.Edge{}, fmt.Errorf("ruddadapter: %s", msg)
	}
	return dd.Edge{Node: node}, nil
}

// IncRef/DecRef are no-ops: rudd's reference counting lives inside Apply
// and is not exposed on the public BDD interface.
func (a *Adapter) IncRef(dd.Edge) {}
func (a *Adapter) DecRef(dd.Edge) {}

// GarbageCollect is a no-op: rudd reclaims nodes on its own resize cycle
// with no exported manual trigger.
func (a *Adapter) GarbageCollect() {}

// DynamicReorder permutes variables per varMap[oldIndex]=newIndex using
// rudd's Replacer; strategy is accepted for interface compatibility but
// unused, since rudd has no named reordering heuristics.
func (a *Adapter) DynamicReorder(e dd.Edge, varMap []int, strategy string) (dd.Edge, error) {
	_ = strategy
	node, ok := e.Node.(rudd.Node)
	if !ok {
		return dd.Edge{}, fmt.Errorf("ruddadapter: DynamicReorder given a non-rudd edge")
	}
	oldvars := make([]int, len(varMap))
	for i := range oldvars {
		oldvars[i] = i
	}
	replacer, err := a.set.NewReplacer(oldvars, varMap)
	if err != nil {
		return dd.Edge{}, fmt.Errorf("ruddadapter: %w", err)
	}
	return dd.Edge{Node: a.set.Replace(node, replacer)}, nil
}
