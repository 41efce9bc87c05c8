// Package calc binds a numeric mode to the parse and eval packages,
// giving the session a single pipeline to call per input line.
package calc

import (
	"errors"
	"fmt"

	"github.com/podhmo/calc/internal/eval"
	"github.com/podhmo/calc/internal/metadata"
	"github.com/podhmo/calc/internal/parse"
)

// Mode selects the numeric type of operands.
type Mode string

const (
	ModeFloat Mode = "float"
	ModeInt   Mode = "int"
)

// Modes lists the supported modes, default first.
var Modes = []Mode{ModeFloat, ModeInt}

// Expression is one input line split into operator and operands.
// Operands holds one token for a unary operator written in two-token
// form, two tokens otherwise.
type Expression struct {
	Operator string
	Operands []string
}

// OperandError reports an operand that could not be parsed.
type OperandError struct {
	Position int // 1-based
	Token    string
	Err      error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s value %q: %v", e.Ordinal(), e.Token, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// Ordinal names the operand position ("first", "second").
func (e *OperandError) Ordinal() string {
	switch e.Position {
	case 1:
		return "first"
	case 2:
		return "second"
	default:
		return fmt.Sprintf("#%d", e.Position)
	}
}

// Engine evaluates expressions in one numeric mode.
type Engine interface {
	Mode() Mode
	Arity(symbol string) (metadata.Arity, bool)
	Operators() []*metadata.OperatorMetadata
	// Evaluate parses the operands and applies the operator, returning the
	// formatted result. Operand failures are reported together as joined
	// *OperandError values; operator failures are *eval.OperationError.
	Evaluate(expr Expression) (string, error)
}

// New returns the engine for mode.
func New(mode Mode) (Engine, error) {
	switch mode {
	case ModeFloat, "":
		return &engine[float64]{mode: ModeFloat, reg: eval.Float(), parse: parse.Float}, nil
	case ModeInt:
		return &engine[int64]{mode: ModeInt, reg: eval.Integer(), parse: parse.Int}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (allowed: %q, %q)", mode, ModeFloat, ModeInt)
	}
}

type engine[T eval.Number] struct {
	mode  Mode
	reg   *eval.Registry[T]
	parse parse.Func[T]
}

func (e *engine[T]) Mode() Mode { return e.mode }

func (e *engine[T]) Arity(symbol string) (metadata.Arity, bool) {
	return e.reg.Arity(symbol)
}

func (e *engine[T]) Operators() []*metadata.OperatorMetadata {
	return e.reg.Operators()
}

func (e *engine[T]) Evaluate(expr Expression) (string, error) {
	results := parse.Operands(e.parse, expr.Operands...)

	var errs []error
	values := make([]T, len(results))
	for i, r := range results {
		if !r.OK() {
			errs = append(errs, &OperandError{Position: i + 1, Token: expr.Operands[i], Err: r.Err})
			continue
		}
		values[i] = r.Value
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}

	res, err := e.reg.Apply(expr.Operator, values...)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}
