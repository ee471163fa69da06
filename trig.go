package funcplot

import (
	"math"
	"strings"
)

// Wave holds the parameters of a trigonometric function a*f(b*x - c) + d:
// amplitude, frequency, phase, and vertical shift.
type Wave struct {
	A, B, C, D float64
}

// at computes a*f(b*x - c) + d.
func (w Wave) at(f func(float64) float64, x float64) float64 {
	return w.A*f(w.B*x-w.C) + w.D
}

func (w Wave) text(name string) string {
	var b strings.Builder
	b.WriteString("y = ")
	writeNum(&b, w.A)
	b.WriteString(" * ")
	b.WriteString(name)
	b.WriteString("(")
	writeNum(&b, w.B)
	b.WriteString(" * x - ")
	writeNum(&b, w.C)
	b.WriteString(") + ")
	writeNum(&b, w.D)
	return b.String()
}

// Sine is the function a*sin(b*x - c) + d.
type Sine Wave

func (f Sine) Kind() Kind             { return KindSine }
func (f Sine) GeneralForm() string    { return KindSine.GeneralForm() }
func (f Sine) String() string         { return Wave(f).text("sin") }
func (f Sine) Eval(x float64) float64 { return Wave(f).at(math.Sin, x) }
func (f Sine) function()              {}

// Cosine is the function a*cos(b*x - c) + d.
type Cosine Wave

func (f Cosine) Kind() Kind             { return KindCosine }
func (f Cosine) GeneralForm() string    { return KindCosine.GeneralForm() }
func (f Cosine) String() string         { return Wave(f).text("cos") }
func (f Cosine) Eval(x float64) float64 { return Wave(f).at(math.Cos, x) }
func (f Cosine) function()              {}

// Tangent is the function a*tan(b*x - c) + d. Near the asymptotes of tan the
// result has very large magnitude; it is not clipped.
type Tangent Wave

func (f Tangent) Kind() Kind             { return KindTangent }
func (f Tangent) GeneralForm() string    { return KindTangent.GeneralForm() }
func (f Tangent) String() string         { return Wave(f).text("tan") }
func (f Tangent) Eval(x float64) float64 { return Wave(f).at(math.Tan, x) }
func (f Tangent) function()              {}
