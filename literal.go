package funcplot

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Parser converts free-text numeric entries into floats. The tokens "pi" and
// "π" stand for π, and "e" stands for Euler's number. A Parser is immutable and
// safe for concurrent use.
type Parser struct {
	pi, e    string
	literals bool
}

// NewParser creates a parser. With no options, constant expansions are
// computed to DefaultPrec bits and every "e" is treated as a constant.
func NewParser(opts ...ParseOption) *Parser {
	c := parseconf{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.parseOption(c)
	}
	return &Parser{
		pi:       constPi.expand(c.prec),
		e:        constE.expand(c.prec),
		literals: c.literals,
	}
}

var defaultParser = NewParser()

// ParseNumber parses s with the default parser.
func ParseNumber(s string) (float64, error) {
	return defaultParser.Parse(s)
}

// Parse converts s to a float.
//
// Substitution is purely textual and happens in a fixed order: every "pi",
// then every "π", is replaced with the expansion of π, and then every "e" is
// replaced with the expansion of Euler's number. The result must be a valid
// float literal. Since the replacement ignores context, "2pi" reads as
// "23.14159…" rather than 2π, and "1e3" reads as "12.71828…3" unless the
// parser was created with PreferLiterals.
func (p *Parser) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if p.literals {
		if v, err := parseFloat(s); err == nil {
			return v, nil
		}
	}
	t := p.substitute(s)
	v, err := parseFloat(t)
	if err != nil {
		return 0, &ParseError{Input: s, Literal: t, Err: err}
	}
	return v, nil
}

// parseFloat converts a float literal. Literals too large in magnitude for a
// float64 become ±Inf rather than failing.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// substitute replaces the constant tokens in s.
func (p *Parser) substitute(s string) string {
	if strings.Contains(s, "pi") {
		s = strings.ReplaceAll(s, "pi", p.pi)
	}
	if strings.Contains(s, "π") {
		s = strings.ReplaceAll(s, "π", p.pi)
	}
	if strings.Contains(s, "e") {
		s = strings.ReplaceAll(s, "e", p.e)
	}
	return s
}

// MaxDegree is the largest polynomial degree accepted.
const MaxDegree = 1 << 16

// ParseDegree parses a polynomial degree, which must be an integer from 0 to
// MaxDegree. Constants are not substituted.
func (p *Parser) ParseDegree(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s, Literal: s, Integer: true, Err: err}
	}
	if _, err := degree(float64(n)); err != nil {
		return 0, &ParseError{Input: s, Literal: s, Integer: true, Err: err}
	}
	return n, nil
}

// degree converts a float parameter to a polynomial degree.
func degree(v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || v > MaxDegree {
		return 0, &DegreeError{Degree: v}
	}
	return int(v), nil
}
