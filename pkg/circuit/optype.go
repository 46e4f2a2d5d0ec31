package circuit

import "github.com/qfr-project/qfr/pkg/dd"

// OpType tags the concrete gate or non-unitary operation kind. Kept
// distinct from dd.OpType (see pkg/dd's package doc for why).
type OpType int

const (
	I OpType = iota
	X
	Y
	Z
	H
	S
	Sdag
	T
	Tdag
	RX
	RY
	RZ
	U1
	U2
	U3
	SWAP
	Measure
	Reset
	Barrier
	Snapshot
	Probabilities
)

func (t OpType) String() string {
	switch t {
	case I:
		return "id"
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case H:
		return "h"
	case S:
		return "s"
	case Sdag:
		return "sdg"
	case T:
		return "t"
	case Tdag:
		return "tdg"
	case RX:
		return "rx"
	case RY:
		return "ry"
	case RZ:
		return "rz"
	case U1:
		return "u1"
	case U2:
		return "u2"
	case U3:
		return "u3"
	case SWAP:
		return "swap"
	case Measure:
		return "measure"
	case Reset:
		return "reset"
	case Barrier:
		return "barrier"
	case Snapshot:
		return "snapshot"
	case Probabilities:
		return "probabilities"
	default:
		return "unknown"
	}
}

// ddKind maps a circuit.OpType to the dd package's own gate-kind tag; see
// pkg/dd's package doc for why the two enums are kept separate.
func ddKind(t OpType) dd.OpType {
	switch t {
	case X:
		return dd.GateX
	case Y:
		return dd.GateY
	case Z:
		return dd.GateZ
	case H:
		return dd.GateH
	case S:
		return dd.GateS
	case Sdag:
		return dd.GateSdag
	case T:
		return dd.GateT
	case Tdag:
		return dd.GateTdag
	case RX:
		return dd.GateRX
	case RY:
		return dd.GateRY
	case RZ:
		return dd.GateRZ
	case U2:
		return dd.GateU2
	case U3, U1:
		return dd.GateU3
	case SWAP:
		return dd.GateSWAP
	case Measure:
		return dd.GateMeasure
	case Reset:
		return dd.GateReset
	case Barrier:
		return dd.GateBarrier
	case Snapshot, Probabilities:
		return dd.GateSnapshot
	default:
		return dd.GateX
	}
}
