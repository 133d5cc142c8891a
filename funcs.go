package stepcalc

import (
	"math"
	"strconv"
)

// function is one of the fixed set of functions of one variable.
type function int8

const (
	fnNone function = iota
	fnSin
	fnCos
)

// funcnames maps the names recognized before an open bracket to functions.
// Cosine is spelled "cosin" in input.
var funcnames = map[string]function{
	"sin":   fnSin,
	"cosin": fnCos,
}

// String returns the name used for the function in traces.
func (f function) String() string {
	switch f {
	case fnSin:
		return "sin"
	case fnCos:
		return "cos"
	default:
		return "function(" + strconv.Itoa(int(f)) + ")"
	}
}

// apply evaluates the function in radians.
func (f function) apply(x float32) float32 {
	switch f {
	case fnSin:
		return float32(math.Sin(float64(x)))
	case fnCos:
		return float32(math.Cos(float64(x)))
	default:
		panic("stepcalc: apply invalid function " + f.String())
	}
}
