// Package stepcalc implements a single-precision calculator that shows its
// work.
//
// Expressions use digits, the operators + - * /, parentheses, unary signs,
// and the functions sin and cosin. Evaluation happens in three passes: the
// input is split into tokens, the tokens are reordered into postfix order,
// and the postfix sequence is evaluated on a stack. Each arithmetic step is
// recorded in a Trace, so "2*(2-22)" reports "2 - 22 = -20" and then
// "2 * -20 = -40".
//
// Letters not followed by an opening parenthesis are variables, one per
// letter. Variables can be parsed but not evaluated.
//
package stepcalc
