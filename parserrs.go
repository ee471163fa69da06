package funcplot

import (
	"strconv"
)

// ParseError is an error indicating input that is not a valid number after
// constant substitution.
type ParseError struct {
	// Input is the text as it was given.
	Input string
	// Literal is the text after constant substitution.
	Literal string
	// Integer is whether an integer was expected.
	Integer bool
	// Err is the underlying conversion error, if any.
	Err error
}

func (err *ParseError) Error() string {
	s := "invalid number "
	if err.Integer {
		s = "invalid degree "
	}
	s += strconv.Quote(err.Input)
	if err.Literal != err.Input {
		s += " (read as " + strconv.Quote(err.Literal) + ")"
	}
	return s
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// UnsupportedError is an error indicating a function family name that is not
// one of the supported kinds.
type UnsupportedError struct {
	// Name is the name that was not recognized.
	Name string
}

func (err *UnsupportedError) Error() string {
	return "unrecognized function type " + strconv.Quote(err.Name)
}

// ArityError is an error indicating the wrong number of parameters for a
// function kind.
type ArityError struct {
	// Kind is the function kind being constructed.
	Kind Kind
	// Want is the number of parameters required.
	Want int
	// Got is the number of parameters given.
	Got int
}

func (err *ArityError) Error() string {
	return err.Kind.String() + " needs " + strconv.Itoa(err.Want) + " parameters, got " + strconv.Itoa(err.Got)
}

// DegreeError is an error indicating a polynomial degree that is not a
// an integer from 0 to MaxDegree.
type DegreeError struct {
	// Degree is the offending value.
	Degree float64
}

func (err *DegreeError) Error() string {
	return "degree " + ftoa(err.Degree) + " is not an integer from 0 to " + strconv.Itoa(MaxDegree)
}

// RangeError is an error indicating a domain that cannot be sampled.
type RangeError struct {
	// Min and Max are the requested bounds.
	Min, Max float64
	// Density is the requested number of samples per unit interval.
	Density int
}

func (err *RangeError) Error() string {
	if err.Density < 1 {
		return "sample density " + strconv.Itoa(err.Density) + " must be positive"
	}
	return "cannot sample from " + ftoa(err.Min) + " to " + ftoa(err.Max)
}

// ftoa formats a float with the fewest digits that represent it exactly.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var (
	_ error = (*ParseError)(nil)
	_ error = (*UnsupportedError)(nil)
	_ error = (*ArityError)(nil)
	_ error = (*DegreeError)(nil)
	_ error = (*RangeError)(nil)
)
