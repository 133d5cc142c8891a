package stepcalc

import (
	"strconv"
	"strings"
)

// token is a lexed operand or operator.
type token struct {
	kind tokenKind
	op   opKind
	ar   arity
	fn   function

	// num is the value of a tokenNum.
	num float32
	// name is the name of a tokenVar.
	name rune
	// pos is the column of the token's first rune in the original input.
	pos int
}

type tokenKind int8

const (
	tokenNone tokenKind = iota

	tokenNum // literal operand
	tokenVar // variable operand
	tokenOp  // operator or bracket
)

type opKind int8

const (
	opNone opKind = iota

	opFunc  // fn is the function to apply
	opAdd   // ar distinguishes x+y from +x
	opSub   // ar distinguishes x-y from -x
	opMul   // x*y
	opDiv   // x/y
	opOpen  // (
	opClose // )
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go run golang.org/x/tools/cmd/stringer -type=opKind -trimprefix=op
//go:generate go mod tidy

type arity int8

const (
	binary arity = iota
	unary
)

// prec is the precedence of an operator token. Higher binds more tightly.
// Brackets have precedence 0 so they are never popped by a comparison.
func (t token) prec() int8 {
	switch t.op {
	case opAdd, opSub:
		if t.ar == unary {
			return 6
		}
		return 3
	case opMul, opDiv:
		return 4
	case opFunc:
		return 5
	case opOpen, opClose:
		return 0
	default:
		panic("stepcalc: precedence of non-operator " + t.String())
	}
}

// prefix reports whether t is an operator that takes no left operand.
func (t token) prefix() bool {
	return t.kind == tokenOp && (t.op == opFunc || t.ar == unary && (t.op == opAdd || t.op == opSub))
}

// String formats the token the way Expr.String shows it.
func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return fmtnum(t.num)
	case tokenVar:
		return string(t.name)
	case tokenOp:
		switch t.op {
		case opFunc:
			return t.fn.String()
		case opAdd:
			if t.ar == unary {
				return "pos"
			}
			return "+"
		case opSub:
			if t.ar == unary {
				return "neg"
			}
			return "-"
		case opMul:
			return "*"
		case opDiv:
			return "/"
		case opOpen:
			return "("
		case opClose:
			return ")"
		}
		return "op:" + t.op.String()
	default:
		return t.kind.String() + "@" + strconv.Itoa(t.pos)
	}
}

// symbol is the operator as written in the input, for error messages.
func (t token) symbol() string {
	if t.kind == tokenOp && t.ar == unary {
		switch t.op {
		case opAdd:
			return "+"
		case opSub:
			return "-"
		}
	}
	return t.String()
}

// fmtnum formats a number with the fewest digits that identify it as a
// float32.
func fmtnum(x float32) string {
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}

// fmttokens writes tokens separated by spaces.
func fmttokens(toks []token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
