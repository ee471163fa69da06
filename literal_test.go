package funcplot_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/funcplot"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"int", "3", 3},
		{"real", "3.5", 3.5},
		{"neg", "-2.25", -2.25},
		{"space", "  7\n", 7},
		{"pi", "pi", math.Pi},
		{"pi-glyph", "π", math.Pi},
		{"neg-pi", "-pi", -math.Pi},
		{"e", "e", math.E},
		{"neg-e", "-e", -math.E},
		{"inf", "inf", math.Inf(1)},
		// Substitution is textual, so a digit next to a constant joins it.
		{"2pi", "2pi", 23.141592653589793},
		{"2e", "2e", 22.718281828459045},
		{"sci", "1e3", 12.7182818284590453},
		// Literals beyond the float64 range saturate.
		{"overflow", "1" + strings.Repeat("0", 400), math.Inf(1)},
		{"neg-overflow", "-" + strings.Repeat("9", 400), math.Inf(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := funcplot.ParseNumber(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result for %q: want %v, got %v", c.src, c.r, r)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		lit  string
	}{
		{"empty", "", ""},
		{"word", "x", "x"},
		{"ee", "ee", "2.7182818284590452.718281828459045"},
		{"pie", "pie", "3.1415926535897932.718281828459045"},
		{"expr", "1+1", "1+1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := funcplot.ParseNumber(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, r)
			}
			var perr *funcplot.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("wrong error type %T: %v", err, err)
			}
			if perr.Literal != c.lit {
				t.Errorf("wrong literal: want %q, got %q", c.lit, perr.Literal)
			}
			if !errors.Is(err, strconv.ErrSyntax) {
				t.Errorf("error does not unwrap to strconv.ErrSyntax: %v", err)
			}
		})
	}
}

func TestParsePreferLiterals(t *testing.T) {
	p := funcplot.NewParser(funcplot.PreferLiterals())
	cases := []struct {
		src string
		r   float64
	}{
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		{"e", math.E},
		{"pi", math.Pi},
		{"4", 4},
		{"1e400", math.Inf(1)},
	}
	for _, c := range cases {
		r, err := p.Parse(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if r != c.r {
			t.Errorf("wrong result for %q: want %v, got %v", c.src, c.r, r)
		}
	}
}

func TestParsePrec(t *testing.T) {
	for _, prec := range []uint{53, 64, 200} {
		p := funcplot.NewParser(funcplot.Prec(prec))
		if r, err := p.Parse("pi"); err != nil || r != math.Pi {
			t.Errorf("prec %d: pi parsed as %v, %v", prec, r, err)
		}
		if r, err := p.Parse("e"); err != nil || r != math.E {
			t.Errorf("prec %d: e parsed as %v, %v", prec, r, err)
		}
	}
}

func TestParseDegree(t *testing.T) {
	cases := []struct {
		src string
		n   int
		ok  bool
	}{
		{"0", 0, true},
		{"2", 2, true},
		{" 10 ", 10, true},
		{"-1", 0, false},
		{"65536", funcplot.MaxDegree, true},
		{"65537", 0, false},
		{"3000000000", 0, false},
		{"9223372036854775807", 0, false},
		{"99999999999999999999", 0, false},
		{"1.5", 0, false},
		{"two", 0, false},
		{"", 0, false},
	}
	p := funcplot.NewParser()
	for _, c := range cases {
		n, err := p.ParseDegree(c.src)
		if c.ok != (err == nil) {
			t.Errorf("%q: wrong error state: %v", c.src, err)
			continue
		}
		if n != c.n {
			t.Errorf("%q: want %d, got %d", c.src, c.n, n)
		}
		var perr *funcplot.ParseError
		if err != nil && (!errors.As(err, &perr) || !perr.Integer) {
			t.Errorf("%q: wrong error %#v", c.src, err)
		}
	}
}
