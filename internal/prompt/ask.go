package prompt

import (
	"fmt"
	"strconv"

	"github.com/zephyrtronium/funcplot"
)

// Asker builds functions from replies to prompts. Each value takes exactly
// one reply; there is no retry, and any failure abandons the function being
// built.
type Asker struct {
	p      Prompter
	parser *funcplot.Parser
}

// NewAsker creates an Asker. If parser is nil, the default parser is used.
func NewAsker(p Prompter, parser *funcplot.Parser) *Asker {
	if parser == nil {
		parser = funcplot.NewParser()
	}
	return &Asker{p: p, parser: parser}
}

// ask reads one reply.
func (a *Asker) ask(msg string) (string, error) {
	s, err := a.p.Prompt(msg)
	if err != nil {
		return "", fmt.Errorf("reading reply: %w", err)
	}
	return s, nil
}

// Number asks for a number, which may use the constants pi, π, and e.
func (a *Asker) Number(msg string) (float64, error) {
	s, err := a.ask(msg)
	if err != nil {
		return 0, err
	}
	return a.parser.Parse(s)
}

// Degree asks for the degree of the polynomial called name.
func (a *Asker) Degree(name string) (int, error) {
	s, err := a.ask("What is the degree of your " + name + " ")
	if err != nil {
		return 0, err
	}
	return a.parser.ParseDegree(s)
}

// Polynomial asks for a degree n followed by n+1 coefficients, highest degree
// first. name distinguishes the polynomial in the prompts.
func (a *Asker) Polynomial(name string) (*funcplot.Polynomial, error) {
	params, err := a.polyParams(name)
	if err != nil {
		return nil, err
	}
	f, err := funcplot.FromParameters(funcplot.KindPolynomial, params)
	if err != nil {
		return nil, err
	}
	return f.(*funcplot.Polynomial), nil
}

func (a *Asker) polyParams(name string) ([]float64, error) {
	n, err := a.Degree(name)
	if err != nil {
		return nil, err
	}
	params := []float64{float64(n)}
	for k := n; k >= 0; k-- {
		c, err := a.Number("What is the coefficient of the " + strconv.Itoa(k) + " degree term in your function ")
		if err != nil {
			return nil, err
		}
		params = append(params, c)
	}
	return params, nil
}

// Function asks for the parameters of a function of kind k and constructs it.
func (a *Asker) Function(k funcplot.Kind) (funcplot.Function, error) {
	var params []float64
	switch k {
	case funcplot.KindPolynomial:
		p, err := a.polyParams(k.String())
		if err != nil {
			return nil, err
		}
		params = p
	case funcplot.KindRational:
		for _, name := range k.Params() {
			p, err := a.polyParams(name)
			if err != nil {
				return nil, err
			}
			params = append(params, p...)
		}
	default:
		for _, name := range k.Params() {
			msg := "What is " + name + ": "
			if len(name) > 1 {
				msg = "What is the " + name + ": "
			}
			v, err := a.Number(msg)
			if err != nil {
				return nil, err
			}
			params = append(params, v)
		}
	}
	return funcplot.FromParameters(k, params)
}

// Range asks for the bounds of the domain to plot.
func (a *Asker) Range() (xmin, xmax float64, err error) {
	xmin, err = a.Number("What is the minimum x value to plot: ")
	if err != nil {
		return 0, 0, err
	}
	xmax, err = a.Number("What is the maximum x value to plot: ")
	if err != nil {
		return 0, 0, err
	}
	return xmin, xmax, nil
}
