package funcplot

// Rational is the quotient of two polynomials.
type Rational struct {
	num, den *Polynomial
}

// NewRational creates the rational function num/den. The polynomials become
// owned by the result and must not be shared.
func NewRational(num, den *Polynomial) *Rational {
	return &Rational{num: num, den: den}
}

// Numerator returns the polynomial above the fraction bar.
func (r *Rational) Numerator() *Polynomial {
	return r.num
}

// Denominator returns the polynomial below the fraction bar.
func (r *Rational) Denominator() *Polynomial {
	return r.den
}

func (r *Rational) Kind() Kind          { return KindRational }
func (r *Rational) GeneralForm() string { return KindRational.GeneralForm() }
func (r *Rational) function()           {}

// String renders the numerator's text over the denominator's, each with its
// own "y = " prefix, e.g. "y = 1 * x ^ 0 / y = 2 * x ^ 0".
func (r *Rational) String() string {
	return r.num.String() + " / " + r.den.String()
}

// Eval evaluates the quotient at x. There is no guard for zeros of the
// denominator; the result is ±Inf or NaN there.
func (r *Rational) Eval(x float64) float64 {
	return r.num.Eval(x) / r.den.Eval(x)
}
