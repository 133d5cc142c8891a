package stepcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// class is the lexical class of a single rune.
type class int8

const (
	classNone   class = iota // start of input, or a rune in no class
	classNum                 // digit or decimal point
	classLetter              // variable or function name
	classOp                  // arithmetic operator
	classOpen                // (
	classClose               // )
)

func classify(r rune) class {
	switch {
	case '0' <= r && r <= '9', r == '.':
		return classNum
	case unicode.IsLetter(r):
		return classLetter
	case strings.ContainsRune(Operators, r):
		return classOp
	case r == '(':
		return classOpen
	case r == ')':
		return classClose
	default:
		return classNone
	}
}

// srune is a rune of input along with its column.
type srune struct {
	r   rune
	col int
}

func runestr(v []srune) string {
	var b strings.Builder
	for _, c := range v {
		b.WriteRune(c.r)
	}
	return b.String()
}

// readall reads src to EOF, discarding whitespace. The second result is the
// column just past the end of the input.
func readall(src io.RuneScanner) ([]srune, int, error) {
	var v []srune
	col := 0
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return v, col + 1, nil
			}
			return nil, 0, err
		}
		col++
		if unicode.IsSpace(r) {
			continue
		}
		v = append(v, srune{r: r, col: col})
	}
}

type lexer struct {
	p    *parsectx
	toks []token
	// buf holds the pending run of letters or digits.
	buf []srune
	// last is the class of the previous non-whitespace rune.
	last class
}

// lex splits the input into tokens. The second result is the column just past
// the end of the input.
func lex(src io.RuneScanner, p *parsectx) ([]token, int, error) {
	runes, end, err := readall(src)
	if err != nil {
		return nil, 0, err
	}
	l := lexer{p: p, toks: make([]token, 0, len(runes))}
	for _, c := range runes {
		k := classify(c.r)
		if k == classNone {
			return nil, 0, &LexError{Text: string(c.r), Col: c.col}
		}
		if k != l.last {
			if err := l.flush(k); err != nil {
				return nil, 0, err
			}
		}
		switch k {
		case classNum, classLetter:
			l.buf = append(l.buf, c)
		case classOp:
			if err := l.operator(c); err != nil {
				return nil, 0, err
			}
		case classOpen:
			l.toks = append(l.toks, token{kind: tokenOp, op: opOpen, pos: c.col})
		case classClose:
			l.toks = append(l.toks, token{kind: tokenOp, op: opClose, pos: c.col})
		}
		l.last = k
	}
	if err := l.flush(classNone); err != nil {
		return nil, 0, err
	}
	switch l.last {
	case classNone, classOp, classOpen:
		err := &EmptyExpressionError{Col: end}
		if len(runes) > 0 {
			err.After = string(runes[len(runes)-1].r)
		}
		return nil, 0, err
	}
	return l.toks, end, nil
}

// flush converts the pending run of letters or digits to tokens. next is the
// class of the rune that ended the run, or classNone at the end of input.
func (l *lexer) flush(next class) error {
	if len(l.buf) == 0 {
		return nil
	}
	defer func() { l.buf = l.buf[:0] }()
	col := l.buf[0].col
	switch l.last {
	case classLetter:
		if next == classOpen {
			name := runestr(l.buf)
			fn, ok := funcnames[name]
			if !ok {
				return &FuncError{Col: col, Name: name}
			}
			l.toks = append(l.toks, token{kind: tokenOp, op: opFunc, fn: fn, pos: col})
			return nil
		}
		// Without a bracket, every letter is its own variable: "xy" is x
		// followed by y.
		for _, c := range l.buf {
			l.toks = append(l.toks, token{kind: tokenVar, name: c.r, pos: c.col})
		}
	case classNum:
		text := runestr(l.buf)
		x, err := strconv.ParseFloat(text, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// Overflow gives ±Inf, which is fine. Anything else is a
			// malformed number like 1.2.3.
			return &LexError{Text: text, Kind: "number", Col: col}
		}
		l.toks = append(l.toks, token{kind: tokenNum, num: float32(x), pos: col})
	default:
		panic("stepcalc: pending runes " + strconv.Quote(runestr(l.buf)) + " in non-accumulating class")
	}
	return nil
}

// operator appends an arithmetic operator. + and - are unary at the start of
// the input, after an open bracket, or after another operator.
func (l *lexer) operator(c srune) error {
	t := token{kind: tokenOp, pos: c.col}
	switch c.r {
	case '+':
		t.op = opAdd
	case '-':
		t.op = opSub
	case '*':
		t.op = opMul
	case '/':
		t.op = opDiv
	default:
		panic("stepcalc: invalid operator " + strconv.QuoteRune(c.r))
	}
	switch l.last {
	case classNone, classOpen, classOp:
		if t.op == opAdd || t.op == opSub {
			t.ar = unary
		} else if l.p.strict {
			return &OperatorError{Col: c.col, Operator: string(c.r)}
		}
	}
	l.toks = append(l.toks, t)
	return nil
}
