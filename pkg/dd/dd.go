// Package dd specifies the narrow interface the core requires of an
// external decision-diagram engine (spec.md §9). No DD algorithm lives
// here: the core only ever builds a per-line role array and asks an Engine
// to turn it into an opaque Edge, multiplies edges together for compound
// operations, and manages reference counts. pkg/dd intentionally never
// imports pkg/circuit, so that pkg/circuit (which does import pkg/dd) does
// not form an import cycle; OpType is this package's own minimal gate-kind
// tag, not circuit.OpType.
package dd

// Node is an opaque handle owned by the external engine.
type Node any

// Edge wraps a Node as the unit the core passes around.
type Edge struct {
	Node Node
}

// LineEntry tags the role of one physical qubit when building a DD node:
// the gate's target, a positive or negative control, or untouched.
type LineEntry int

const (
	LineDefault LineEntry = iota
	LineTarget
	LinePositiveControl
	LineNegativeControl
)

// OpType is the minimal gate-kind vocabulary an Engine.Build needs to
// construct a node. Kept distinct from circuit.OpType — see package doc.
type OpType int

const (
	GateX OpType = iota
	GateY
	GateZ
	GateH
	GateS
	GateSdag
	GateT
	GateTdag
	GateRX
	GateRY
	GateRZ
	GateU2
	GateU3
	GateSWAP
	GateMeasure
	GateReset
	GateBarrier
	GateSnapshot
)

// Engine is the external DD-engine collaborator. The core treats every
// Edge it receives opaquely; it never inspects or constructs a Node.
type Engine interface {
	// Build constructs the DD for a single primitive gate given its kind,
	// a per-physical-qubit line role array, and up to three real
	// parameters (zero-valued where the gate has fewer).
	Build(kind OpType, line []LineEntry, params [3]float64) (Edge, error)

	// Multiply composes two edges left-to-right (matrix product), used by
	// Compound to fold its children into one DD.
	Multiply(a, b Edge) (Edge, error)

	// IncRef/DecRef adjust the engine's reference count for an edge so it
	// knows when a node may be reclaimed.
	IncRef(e Edge)
	DecRef(e Edge)

	// GarbageCollect reclaims any node with a zero reference count.
	GarbageCollect()

	// DynamicReorder rebuilds e under a new variable ordering, using the
	// named reordering strategy.
	DynamicReorder(e Edge, varMap []int, strategy string) (Edge, error)
}
