package stepcalc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type strictopt struct{}

// parsectx holds general data for parsing.
type parsectx struct {
	// strict causes * and / to be rejected where a term is expected.
	strict bool
}

// StrictOperators makes the lexer reject * and / at the start of the input,
// after an open bracket, or after another operator, returning an
// OperatorError. Without it, such operators are parsed as binary and the
// evaluator reports the missing operand instead.
func StrictOperators() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// newparsectx applies options in order.
func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
