package funcplot

import (
	"strconv"
	"strings"
)

// Kind identifies a function family.
type Kind int

const (
	// Undefined is the zero Kind. It describes no family; its general form is
	// "y = NaN" and it is never listed or constructed.
	Undefined Kind = iota
	KindPolynomial
	KindRational
	KindExponential
	KindLogarithmic
	KindSine
	KindCosine
	KindTangent
)

type kindInfo struct {
	name   string
	form   string
	params []string
}

const (
	polyForm = "a_1 * x^n + a_2 * x^(n-1) + a_3 * x^(n-2) + ... + a_(n-2) * x^2 + a_(n-1) * x + a_n"
	denForm  = "c_1 * x^d + c_2 * x^(d-1) + c_3 * x^(d-2) + ... + c_(d-2) * x^2 + c_(d-1) * x + c_d"
	numForm  = "a_1 * x^b + a_2 * x^(b-1) + a_3 * x^(b-2) + ... + a_(b-2) * x^2 + a_(b-1) * x + a_b"
)

var kinds = [...]kindInfo{
	Undefined:       {"Undefined", "y = NaN", nil},
	KindPolynomial:  {"Polynomial", "y = " + polyForm, []string{"n", "a_n", "…", "a_0"}},
	KindRational:    {"Rational", "y = (" + numForm + ") / (" + denForm + ")", []string{"Numerator", "Denominator"}},
	KindExponential: {"Exponential", "y = a * b^x", []string{"a", "b"}},
	KindLogarithmic: {"Logarithmic", "y = log_base(x)", []string{"base"}},
	KindSine:        {"Sine", "y = a * sin(b * x - c) + d", []string{"a", "b", "c", "d"}},
	KindCosine:      {"Cosine", "y = a * cos(b * x - c) + d", []string{"a", "b", "c", "d"}},
	KindTangent:     {"Tangent", "y = a * tan(b * x - c) + d", []string{"a", "b", "c", "d"}},
}

func (k Kind) valid() bool {
	return k > Undefined && int(k) < len(kinds)
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// GeneralForm returns the template of the family's algebraic shape.
func (k Kind) GeneralForm() string {
	if !k.valid() {
		return kinds[Undefined].form
	}
	return kinds[k].form
}

// Params returns the names of the family's parameters in the order they are
// collected. Polynomial and Rational parameter lists vary in length; their
// names describe the shape of the list.
func (k Kind) Params() []string {
	if !k.valid() {
		return nil
	}
	return append([]string(nil), kinds[k].params...)
}

// Kinds returns every supported family in menu order.
func Kinds() []Kind {
	r := make([]Kind, 0, len(kinds)-1)
	for k := KindPolynomial; int(k) < len(kinds); k++ {
		r = append(r, k)
	}
	return r
}

// ParseKind looks up a family by name, ignoring case. Unknown names produce an
// *UnsupportedError.
func ParseKind(name string) (Kind, error) {
	s := strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(s, kinds[k].name) {
			return k, nil
		}
	}
	return Undefined, &UnsupportedError{Name: name}
}

// FromParameters constructs a function of kind k from its parameters, given
// in the order they are collected interactively:
//
//	Polynomial:   n, a_n, a_(n-1), …, a_0
//	Rational:     the numerator's Polynomial list, then the denominator's
//	Exponential:  a, b
//	Logarithmic:  base
//	Sine, Cosine, Tangent:  a, b, c, d
//
// Polynomial degrees must be integers from 0 to MaxDegree.
func FromParameters(k Kind, params []float64) (Function, error) {
	switch k {
	case KindPolynomial:
		p, rest, err := polyParams(params)
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, &ArityError{Kind: k, Want: len(params) - len(rest), Got: len(params)}
		}
		return p, nil
	case KindRational:
		num, rest, err := polyParams(params)
		if err != nil {
			return nil, err
		}
		den, rest, err := polyParams(rest)
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, &ArityError{Kind: k, Want: len(params) - len(rest), Got: len(params)}
		}
		return NewRational(num, den), nil
	case KindExponential:
		if len(params) != 2 {
			return nil, &ArityError{Kind: k, Want: 2, Got: len(params)}
		}
		return Exponential{A: params[0], B: params[1]}, nil
	case KindLogarithmic:
		if len(params) != 1 {
			return nil, &ArityError{Kind: k, Want: 1, Got: len(params)}
		}
		return Logarithmic{Base: params[0]}, nil
	case KindSine, KindCosine, KindTangent:
		if len(params) != 4 {
			return nil, &ArityError{Kind: k, Want: 4, Got: len(params)}
		}
		w := Wave{A: params[0], B: params[1], C: params[2], D: params[3]}
		switch k {
		case KindSine:
			return Sine(w), nil
		case KindCosine:
			return Cosine(w), nil
		default:
			return Tangent(w), nil
		}
	default:
		return nil, &UnsupportedError{Name: k.String()}
	}
}

// polyParams consumes one polynomial's parameters from the front of params
// and returns the remainder.
func polyParams(params []float64) (*Polynomial, []float64, error) {
	if len(params) == 0 {
		return nil, nil, &ArityError{Kind: KindPolynomial, Want: 2, Got: 0}
	}
	n, err := degree(params[0])
	if err != nil {
		return nil, nil, err
	}
	params = params[1:]
	if len(params) < n+1 {
		return nil, nil, &ArityError{Kind: KindPolynomial, Want: n + 2, Got: len(params) + 1}
	}
	p, err := NewPolynomial(params[:n+1], n)
	if err != nil {
		return nil, nil, err
	}
	return p, params[n+1:], nil
}
