package stepcalc

import "strconv"

// LexError indicates an invalid character or number. It implements
// InputError.
type LexError struct {
	// Text is the offending character, or the whole text of an invalid
	// number.
	Text string
	// Kind is "number" for an invalid number and the empty string for a
	// character that cannot start any token.
	Kind string
	// Col is the column of the first rune of Text.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid character at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// FuncError is an error indicating a name before an open bracket that is not
// a known function. It implements InputError.
type FuncError struct {
	// Col is the position of the name.
	Col int
	// Name is the unknown function name.
	Name string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *FuncError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a binary-only operator where a term
// was expected. It is returned only when parsing with StrictOperators. It
// implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the misplaced operator.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" cannot be unary")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that the input ended where a
// term was expected. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position just past the end of the input.
	Col int
	// After is the last symbol in the input, or the empty string if the
	// input has no symbols at all.
	After string
}

func (err *EmptyExpressionError) Error() string {
	if err.After == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression at end after "+strconv.Quote(err.After))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unmatched open bracket, or the empty string if the close
	// bracket has no open bracket.
	Left string
	// Right is the unmatched close bracket, or the empty string if the open
	// bracket is never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NameError is an error indicating a variable in an evaluated expression.
// Variables are parsed, but there is nothing to evaluate them with. It
// implements InputError.
type NameError struct {
	// Col is the position of the variable.
	Col int
	// Name is the variable.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "cannot evaluate variable "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator without enough operands,
// or an expression with no value at all. It implements InputError.
type OperandError struct {
	// Col is the position of the operator, or the end of the input if there
	// is no operator.
	Col int
	// Operator is the operator missing an operand. It is the empty string if
	// the expression has no value.
	Operator string
}

func (err *OperandError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "expression has no value")
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// MalformedError is an error indicating values left over after evaluation,
// e.g. from terms with no operator between them. It implements InputError.
type MalformedError struct {
	// Col is the position of the first left-over term.
	Col int
	// Len is the number of values that remained, including the result.
	Len int
}

func (err *MalformedError) Error() string {
	return errpos(err.Col, "malformed expression: "+strconv.Itoa(err.Len)+" values with no operator between them")
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column in the original input, whitespace
	// included, of the rune that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*MalformedError)(nil)
)
