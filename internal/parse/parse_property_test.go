package parse

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFloatRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("formatted floats parse back to the same value", prop.ForAll(
		func(f float64) bool {
			for _, fmtc := range []byte{'f', 'e', 'g'} {
				got, err := Float(strconv.FormatFloat(f, fmtc, -1, 64))
				if err != nil || got != f {
					return false
				}
			}
			return true
		},
		gen.Float64(),
	))

	properties.Property("formatted ints parse back to the same value", prop.ForAll(
		func(n int64) bool {
			got, err := Int(strconv.FormatInt(n, 10))
			return err == nil && got == n
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestOperandsIndependenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a non-numeric operand never affects the other", prop.ForAll(
		func(garbage string, n int64) bool {
			a, b := Pair(Int, garbage, strconv.FormatInt(n, 10))
			return a.Err == ErrPreparse && b.OK() && b.Value == n
		},
		gen.AlphaString(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
