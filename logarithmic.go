package funcplot

import (
	"math"
	"strings"
)

// Logarithmic is the logarithm to a fixed base.
type Logarithmic struct {
	Base float64
}

func (f Logarithmic) Kind() Kind          { return KindLogarithmic }
func (f Logarithmic) GeneralForm() string { return KindLogarithmic.GeneralForm() }
func (f Logarithmic) function()           {}

func (f Logarithmic) String() string {
	var b strings.Builder
	b.WriteString("y = log_")
	writeNum(&b, f.Base)
	b.WriteString("(x)")
	return b.String()
}

// Eval computes ln(x) / ln(base). The result is NaN for negative x, -Inf or
// +Inf at x == 0, and ±Inf or NaN for base 1.
func (f Logarithmic) Eval(x float64) float64 {
	return math.Log(x) / math.Log(f.Base)
}
