package funcplot

import (
	"math"
	"strings"
)

// Exponential is the function a * b^x.
type Exponential struct {
	A, B float64
}

func (f Exponential) Kind() Kind          { return KindExponential }
func (f Exponential) GeneralForm() string { return KindExponential.GeneralForm() }
func (f Exponential) function()           {}

func (f Exponential) String() string {
	var b strings.Builder
	b.WriteString("y = ")
	writeNum(&b, f.A)
	b.WriteString(" * ")
	writeNum(&b, f.B)
	b.WriteString(" ^ x")
	return b.String()
}

func (f Exponential) Eval(x float64) float64 {
	return f.A * math.Pow(f.B, x)
}
