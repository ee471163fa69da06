package funcplot

import (
	"strconv"
	"strings"
)

// Polynomial is a polynomial with real coefficients. Its zero value is not
// usable; create polynomials with NewPolynomial.
type Polynomial struct {
	// coef holds the coefficients from the highest degree term down to the
	// constant term. len(coef) == degree + 1.
	coef []float64
}

// NewPolynomial creates a polynomial of the given degree. coefficients lists
// the coefficient of each term from x^degree down to the constant term, so it
// must have exactly degree+1 elements. The slice is copied.
func NewPolynomial(coefficients []float64, degree int) (*Polynomial, error) {
	if degree < 0 || degree > MaxDegree {
		return nil, &DegreeError{Degree: float64(degree)}
	}
	if len(coefficients) != degree+1 {
		return nil, &ArityError{Kind: KindPolynomial, Want: degree + 1, Got: len(coefficients)}
	}
	return &Polynomial{coef: append([]float64(nil), coefficients...)}, nil
}

// Degree returns the degree of the polynomial as it was declared. Leading zero
// coefficients are kept, so this may exceed the mathematical degree.
func (p *Polynomial) Degree() int {
	return len(p.coef) - 1
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Polynomial) Coefficients() []float64 {
	return append([]float64(nil), p.coef...)
}

func (p *Polynomial) Kind() Kind          { return KindPolynomial }
func (p *Polynomial) GeneralForm() string { return KindPolynomial.GeneralForm() }
func (p *Polynomial) function()           {}

// String renders every term, including those with zero coefficients, as
// "c * x ^ k" with k decreasing to 0.
func (p *Polynomial) String() string {
	var b strings.Builder
	b.WriteString("y = ")
	p.terms(&b)
	return b.String()
}

func (p *Polynomial) terms(b *strings.Builder) {
	n := p.Degree()
	for i, c := range p.coef {
		if i != 0 {
			b.WriteString(" + ")
		}
		writeNum(b, c)
		b.WriteString(" * x ^ ")
		b.WriteString(strconv.Itoa(n - i))
	}
}

// Eval evaluates the polynomial at x, constant term included.
func (p *Polynomial) Eval(x float64) float64 {
	var y float64
	for _, c := range p.coef {
		y = y*x + c
	}
	return y
}
