package stepcalc

import (
	"io"
	"strings"
)

// Trace records the steps taken to evaluate expressions, in the order they
// were performed. The zero value is an empty trace ready to use. Evaluating
// with a nil *Trace records nothing. It is not safe to use a Trace
// concurrently.
type Trace struct {
	steps []string
}

// Steps returns a copy of the recorded steps.
func (t *Trace) Steps() []string {
	if t == nil {
		return nil
	}
	return append(([]string)(nil), t.steps...)
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

func (t *Trace) binary(l float32, op string, r, res float32) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, fmtnum(l)+" "+op+" "+fmtnum(r)+" = "+fmtnum(res))
}

func (t *Trace) call(fn function, x, res float32) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, fn.String()+"("+fmtnum(x)+") = "+fmtnum(res))
}

// value is an evaluated term along with the column where the term began.
type value struct {
	x   float32
	pos int
}

// Eval evaluates the expression and returns the result. Each multiplication,
// division, binary addition or subtraction, and function call is appended to
// trace as it is performed; unary signs are not. Division by zero follows
// IEEE-754 and gives an infinity or NaN rather than an error. If an error
// occurs, the result is 0, and trace keeps the steps performed before it.
func (e *Expr) Eval(trace *Trace) (float32, error) {
	stack := make([]value, 0, len(e.rpn))
	pop := func() (value, bool) {
		if len(stack) == 0 {
			return value{}, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}
	for _, t := range e.rpn {
		switch t.kind {
		case tokenNum:
			stack = append(stack, value{x: t.num, pos: t.pos})
			continue
		case tokenVar:
			return 0, &NameError{Col: t.pos, Name: string(t.name)}
		case tokenOp: // handled below
		default:
			panic("stepcalc: invalid postfix token " + t.String())
		}
		r, ok := pop()
		if !ok {
			return 0, &OperandError{Col: t.pos, Operator: t.symbol()}
		}
		if t.prefix() {
			var res float32
			switch t.op {
			case opFunc:
				res = t.fn.apply(r.x)
				trace.call(t.fn, r.x, res)
			case opAdd:
				res = 0 + r.x
			case opSub:
				res = 0 - r.x
			}
			stack = append(stack, value{x: res, pos: t.pos})
			continue
		}
		l, ok := pop()
		if !ok {
			return 0, &OperandError{Col: t.pos, Operator: t.symbol()}
		}
		var res float32
		switch t.op {
		case opAdd:
			res = l.x + r.x
		case opSub:
			res = l.x - r.x
		case opMul:
			res = l.x * r.x
		case opDiv:
			res = l.x / r.x
		default:
			panic("stepcalc: invalid postfix operator " + t.op.String())
		}
		trace.binary(l.x, t.String(), r.x, res)
		stack = append(stack, value{x: res, pos: l.pos})
	}
	switch len(stack) {
	case 0:
		return 0, &OperandError{Col: e.end}
	case 1:
		return stack[0].x, nil
	default:
		return 0, &MalformedError{Col: stack[1].pos, Len: len(stack)}
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, trace *Trace, opts ...ParseOption) (float32, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval(trace)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, trace *Trace, opts ...ParseOption) (float32, error) {
	return Eval(strings.NewReader(src), trace, opts...)
}
