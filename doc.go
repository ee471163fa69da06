// Package funcplot models single-variable functions drawn from a small, closed
// set of families: polynomial, rational, exponential, logarithmic, sine, cosine,
// and tangent.
//
// Each family knows its general form, renders its own instances as text, and
// evaluates itself at a point. Parameters are read with a Parser, which
// accepts plain decimal literals as well as the symbolic constants "pi", "π",
// and "e". Construct functions directly, or from a flat parameter list with
// FromParameters, then Sample a domain and Tabulate the function across it.
//
package funcplot
