package stepcalc

import (
	"io"
	"strings"
)

// Expr is a parsed expression in postfix order. An Expr is immutable, so it
// is safe to evaluate concurrently.
type Expr struct {
	// rpn is the expression's tokens in postfix order.
	rpn []token
	// end is the column just past the end of the input.
	end int
}

// Parse parses an expression so that it can be evaluated. The given options
// are applied in order. If reading src fails, the reader's error is returned
// as-is; every other error implements InputError.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	p := newparsectx(opts)
	toks, end, err := lex(src, &p)
	if err != nil {
		return nil, err
	}
	rpn, err := postfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn, end: end}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// postfix reorders infix tokens into postfix order using an operator stack.
// Operators of equal precedence are left-associative.
func postfix(toks []token) ([]token, error) {
	rpn := make([]token, 0, len(toks))
	var ops []token
	for _, t := range toks {
		switch {
		case t.kind == tokenNum, t.kind == tokenVar:
			rpn = append(rpn, t)
		case t.kind != tokenOp:
			panic("stepcalc: unknown token: " + t.String())
		case t.op == opOpen:
			ops = append(ops, t)
		case t.op == opClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: t.pos, Right: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.op == opOpen {
					break
				}
				rpn = append(rpn, top)
			}
		case t.prefix():
			// Nothing to the left of a prefix operator is its operand, so
			// nothing on the stack can be ready yet. -sin(x) -> x sin neg
			ops = append(ops, t)
		default:
			prec := t.prec()
			for len(ops) > 0 && ops[len(ops)-1].prec() >= prec {
				rpn = append(rpn, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.op == opOpen {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		rpn = append(rpn, top)
	}
	return rpn, nil
}

// String formats the expression in postfix order with tokens separated by
// spaces. Unary + and - are written as pos and neg.
func (e *Expr) String() string {
	return fmttokens(e.rpn)
}
