package funcplot

import "strings"

// Function is a function of one real variable. The set of implementations is
// closed: every Function is one of *Polynomial, *Rational, Exponential,
// Logarithmic, Sine, Cosine, or Tangent.
type Function interface {
	// Kind returns the family of the function.
	Kind() Kind
	// GeneralForm returns the template of the function's family, the same as
	// Kind().GeneralForm().
	GeneralForm() string
	// String renders the function with its parameters substituted into the
	// general form, e.g. "y = 2 * 3 ^ x".
	String() string
	// Eval evaluates the function at x. Points outside the function's domain
	// produce NaN or ±Inf according to IEEE 754 arithmetic.
	Eval(x float64) float64

	function()
}

var (
	_ Function = (*Polynomial)(nil)
	_ Function = (*Rational)(nil)
	_ Function = Exponential{}
	_ Function = Logarithmic{}
	_ Function = Sine{}
	_ Function = Cosine{}
	_ Function = Tangent{}
)

// writeNum appends a number to b in its shortest exact form.
func writeNum(b *strings.Builder, v float64) {
	b.WriteString(ftoa(v))
}
