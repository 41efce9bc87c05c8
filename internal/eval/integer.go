package eval

import "math"

// Integer returns a registry with checked int64 semantics. Division yields
// the truncated quotient and the remainder, and the exponent of ^ must fit
// in a uint32.
func Integer() *Registry[int64] {
	return newRegistry("int", map[string]Func[int64]{
		"+":    wrapInt(addInt),
		"-":    wrapInt(subInt),
		"*":    wrapInt(mulInt),
		"/":    divInt,
		"^":    wrapInt(powInt),
		"sqrt": wrapInt(isqrt),
	})
}

func wrapInt(fn func(a, b int64) (int64, error)) Func[int64] {
	return func(a, b int64) (Result[int64], error) {
		v, err := fn(a, b)
		if err != nil {
			return Result[int64]{}, err
		}
		return Result[int64]{Value: v}, nil
	}
}

func addInt(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func subInt(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, ErrOverflow
	}
	return a - b, nil
}

func mulInt(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}
	return c, nil
}

func divInt(a, b int64) (Result[int64], error) {
	if b == 0 {
		return Result[int64]{}, ErrDivideByZero
	}
	if a == math.MinInt64 && b == -1 {
		return Result[int64]{}, ErrOverflow
	}
	return Result[int64]{Value: a / b, Remainder: a % b}, nil
}

func powInt(base, exp int64) (int64, error) {
	if exp < 0 || exp > math.MaxUint32 {
		return 0, ErrExponentRange
	}
	switch base {
	case 0:
		if exp == 0 {
			return 1, nil
		}
		return 0, nil
	case 1:
		return 1, nil
	case -1:
		if exp%2 == 0 {
			return 1, nil
		}
		return -1, nil
	}
	// |base| >= 2 overflows beyond 2^63.
	if exp > 63 {
		return 0, ErrOverflow
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		var err error
		if result, err = mulInt(result, base); err != nil {
			return 0, err
		}
	}
	return result, nil
}

// isqrt is the floor of the square root of a.
func isqrt(a, _ int64) (int64, error) {
	if a < 0 {
		return 0, ErrNegativeRoot
	}
	if a < 2 {
		return a, nil
	}
	r := int64(math.Sqrt(float64(a)))
	for r > a/r {
		r--
	}
	for r+1 <= a/(r+1) {
		r++
	}
	return r, nil
}
