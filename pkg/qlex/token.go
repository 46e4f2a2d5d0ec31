// Package qlex implements the scanner shared by the OpenQASM front-end and
// the expression tree: a stack of input sources (so `include` can push a new
// file and pop back to the caller on EOF) emitting a closed set of token
// kinds.
//
// Design: hand-written scanner over a rune slice per source, no
// backtracking, line/column tracked per token — grounded on the teacher's
// pkg/frontend lexer.
package qlex

// Kind enumerates every token kind the scanner can produce.
type Kind int

const (
	EOF Kind = iota
	Identifier
	NNInteger
	Real
	String
	Pi

	// Keywords
	KwOpenQASM
	KwQreg
	KwCreg
	KwGate
	KwOpaque
	KwMeasure
	KwReset
	KwBarrier
	KwSnapshot
	KwProbabilities
	KwInclude
	KwIf
	KwU
	KwCX
	KwSwap
	KwSin
	KwCos
	KwTan
	KwExp
	KwLn
	KwSqrt

	// Operators
	Plus
	Minus
	Star
	Slash
	Caret
	EqEq
	Greater

	// Delimiters
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Semicolon
)

var keywords = map[string]Kind{
	"OPENQASM":      KwOpenQASM,
	"qreg":          KwQreg,
	"creg":          KwCreg,
	"gate":          KwGate,
	"opaque":        KwOpaque,
	"measure":       KwMeasure,
	"reset":         KwReset,
	"barrier":       KwBarrier,
	"snapshot":      KwSnapshot,
	"probabilities": KwProbabilities,
	"include":       KwInclude,
	"if":            KwIf,
	"U":             KwU,
	"CX":            KwCX,
	"swap":          KwSwap,
	"sin":           KwSin,
	"cos":           KwCos,
	"tan":           KwTan,
	"exp":           KwExp,
	"ln":            KwLn,
	"sqrt":          KwSqrt,
	"pi":            Pi,
}

// Token is one scanned lexeme.
type Token struct {
	Kind     Kind
	Lexeme   string
	IntVal   int64
	FloatVal float64
	Line     int
	Col      int
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var kindNames = map[Kind]string{
	EOF:             "EOF",
	Identifier:      "identifier",
	NNInteger:       "nninteger",
	Real:            "real",
	String:          "string",
	Pi:              "pi",
	KwOpenQASM:      "openqasm",
	KwQreg:          "qreg",
	KwCreg:          "creg",
	KwGate:          "gate",
	KwOpaque:        "opaque",
	KwMeasure:       "measure",
	KwReset:         "reset",
	KwBarrier:       "barrier",
	KwSnapshot:      "snapshot",
	KwProbabilities: "probabilities",
	KwInclude:       "include",
	KwIf:            "if",
	KwU:             "U",
	KwCX:            "CX",
	KwSwap:          "swap",
	KwSin:           "sin",
	KwCos:           "cos",
	KwTan:           "tan",
	KwExp:           "exp",
	KwLn:            "ln",
	KwSqrt:          "sqrt",
	Plus:            "+",
	Minus:           "-",
	Star:            "*",
	Slash:           "/",
	Caret:           "^",
	EqEq:            "==",
	Greater:         ">",
	LParen:          "(",
	RParen:          ")",
	LBracket:        "[",
	RBracket:        "]",
	LBrace:          "{",
	RBrace:          "}",
	Comma:           ",",
	Semicolon:       ";",
}
