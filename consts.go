package funcplot

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits at which constant expansions are
// computed by default. It is the float64 mantissa size, so the expansions are
// the shortest decimal strings that round-trip to math.Pi and math.E.
const DefaultPrec = 53

// constant computes a mathematical constant to a given precision.
type constant func(out *big.Float) *big.Float

var (
	constPi constant = bigfloat.Pi
	constE  constant = func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(out.Prec()).SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}
)

// guard is the number of extra bits carried while computing a constant so that
// the final rounding to the requested precision is exact.
const guard = 32

// expand returns the decimal expansion of c rounded to prec bits, using the
// fewest digits that identify the value uniquely at that precision.
func (c constant) expand(prec uint) string {
	w := new(big.Float).SetPrec(prec + guard)
	c(w)
	r := new(big.Float).SetPrec(prec).Set(w)
	return r.Text('f', -1)
}
