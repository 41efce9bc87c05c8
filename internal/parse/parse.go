// Package parse turns operand tokens into numbers.
//
// Parsing happens in two steps. A cheap validator first checks that a
// token contains at least one numeric character; when it does not, the
// operand fails with ErrPreparse and no numeric parse is attempted. The
// numeric parse proper is the source of truth for validity, so tokens such
// as "12x" pass the validator and are rejected afterwards.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrSyntax is matched by every failure caused by a malformed token.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange is matched by failures where the token is well formed but
	// the value does not fit the target type.
	ErrRange = errors.New("value out of range")
	// ErrPreparse is the failure shared by every operand the validator
	// rejects.
	ErrPreparse = &Error{Kind: KindPreparse}
)

// Kind classifies a parse failure.
type Kind int

const (
	KindPreparse Kind = iota + 1
	KindEmpty
	KindInvalidFloat
	KindInvalidInt
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindPreparse:
		return "pre-parse validation failed"
	case KindEmpty:
		return "cannot parse number from empty string"
	case KindInvalidFloat:
		return "invalid float literal"
	case KindInvalidInt:
		return "invalid digit found in string"
	case KindRange:
		return "number too large to fit in target type"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the failure value of a single operand.
type Error struct {
	Input string
	Kind  Kind
}

func (e *Error) Error() string {
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	if e.Kind == KindRange {
		return ErrRange
	}
	return ErrSyntax
}

// Result is the outcome of parsing one operand.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the operand parsed successfully.
func (r Result[T]) OK() bool { return r.Err == nil }

// Func parses a single token.
type Func[T any] func(string) (T, error)

// ContainsNumeric reports whether s has at least one Unicode numeric
// character (categories Nd, Nl and No).
func ContainsNumeric(s string) bool {
	return strings.IndexFunc(s, unicode.IsNumber) >= 0
}

// Validate reports whether every token contains a numeric character.
func Validate(tokens ...string) bool {
	for _, tok := range tokens {
		if !ContainsNumeric(tok) {
			return false
		}
	}
	return true
}

// Operands parses each token independently with fn, so that a failure in
// one operand never hides the outcome of another. Tokens without a numeric
// character are not handed to fn; their result carries ErrPreparse.
func Operands[T any](fn Func[T], tokens ...string) []Result[T] {
	results := make([]Result[T], len(tokens))
	for i, tok := range tokens {
		if !ContainsNumeric(tok) {
			results[i].Err = ErrPreparse
			continue
		}
		v, err := fn(tok)
		results[i] = Result[T]{Value: v, Err: err}
	}
	return results
}

// Pair is Operands for the common two-operand case.
func Pair[T any](fn Func[T], a, b string) (Result[T], Result[T]) {
	rs := Operands(fn, a, b)
	return rs[0], rs[1]
}

var floatLiteral = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Float parses a decimal floating-point literal after trimming surrounding
// whitespace. Hexadecimal forms, digit separators and the inf/nan
// spellings are rejected.
func Float(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &Error{Input: s, Kind: KindEmpty}
	}
	if !floatLiteral.MatchString(s) {
		return 0, &Error{Input: s, Kind: KindInvalidFloat}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{Input: s, Kind: KindRange}
		}
		return 0, &Error{Input: s, Kind: KindInvalidFloat}
	}
	return v, nil
}

// Int parses a base-10 signed 64-bit integer after trimming surrounding
// whitespace.
func Int(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &Error{Input: s, Kind: KindEmpty}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{Input: s, Kind: KindRange}
		}
		return 0, &Error{Input: s, Kind: KindInvalidInt}
	}
	return v, nil
}
