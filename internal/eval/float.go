package eval

import "math"

// Float returns a registry with IEEE 754 double precision semantics.
// Only division can fail; sqrt of a negative number is NaN.
func Float() *Registry[float64] {
	return newRegistry("float", map[string]Func[float64]{
		"+": func(a, b float64) (Result[float64], error) { return Result[float64]{Value: a + b}, nil },
		"-": func(a, b float64) (Result[float64], error) { return Result[float64]{Value: a - b}, nil },
		"*": func(a, b float64) (Result[float64], error) { return Result[float64]{Value: a * b}, nil },
		"/": func(a, b float64) (Result[float64], error) {
			if b == 0 {
				return Result[float64]{}, ErrDivideByZero
			}
			return Result[float64]{Value: a / b}, nil
		},
		"^":    func(a, b float64) (Result[float64], error) { return Result[float64]{Value: math.Pow(a, b)}, nil },
		"sqrt": func(a, _ float64) (Result[float64], error) { return Result[float64]{Value: math.Sqrt(a)}, nil },
	})
}
