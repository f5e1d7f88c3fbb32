// Package mathconsole implements the core of a single-user console calculator.
//
// A Console takes one line at a time. A line is either a command, such as
// "k_def:2*PI" to define a constant or "_setfloatPrec:4" to change the
// number of significant digits in results, or an expression like
// "2 :max: sin(PI/2) + 3#27". The value of the last expression is available
// to later ones as OUT.
//
// Expressions are evaluated while they are parsed, with double precision
// arithmetic. Division by zero, square roots of negative numbers, and other
// domain problems produce infinities and NaN rather than errors. Functions take
// their arguments from the terms that follow them, so "sin 1", "sin(1)", and
// "sin[1]" are the same, and "atan2 1 2" calls a binary function. Any binary
// function can also be called infix, as in "1 :atan2: 2".
//
// Evaluation recurses once per level of nesting in the input. Extremely deep
// nesting can exhaust the goroutine stack; there is no separate limit.
//
package mathconsole
