package funcplot

// ParseOption is an option for a Parser.
type ParseOption interface {
	parseOption(parseconf) parseconf
}

type (
	precopt     uint
	literalsopt struct{}
)

// parseconf holds the settings used to build a Parser.
type parseconf struct {
	// prec is the precision in bits of the constant expansions.
	prec uint
	// literals indicates that input which is already a valid float literal
	// is converted without constant substitution.
	literals bool
}

// Prec sets the precision in bits at which the expansions of π and e are
// computed before they are substituted into the input. Precision beyond 53
// bits only adds digits which are rounded away again by the conversion to
// float64. Panics if prec is zero.
func Prec(prec uint) ParseOption {
	if prec == 0 {
		panic("funcplot: zero precision")
	}
	return precopt(prec)
}

func (o precopt) parseOption(p parseconf) parseconf {
	p.prec = uint(o)
	return p
}

// PreferLiterals tells the parser to return input that is already a valid
// floating-point literal without substituting constants, so that scientific
// notation like "1e3" means 1000. By default, every "e" in the input is
// replaced by the expansion of Euler's number, so "1e3" reads as 12.71828….
func PreferLiterals() ParseOption {
	return literalsopt{}
}

func (literalsopt) parseOption(p parseconf) parseconf {
	p.literals = true
	return p
}
