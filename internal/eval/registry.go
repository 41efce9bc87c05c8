// Package eval maps operator symbols to arithmetic and computes results.
//
// A Registry is bound to one numeric type. The float64 registry returned by
// Float is the default; Integer provides checked int64 arithmetic where
// division also yields a remainder.
package eval

import (
	"fmt"

	"github.com/podhmo/calc/internal/metadata"
	"github.com/podhmo/calc/internal/utils/stringutils"
)

// Number is the set of operand types a Registry can be bound to.
type Number interface {
	int64 | float64
}

// Result is a computed value. Remainder is non-zero only for integer
// division that does not divide evenly.
type Result[T Number] struct {
	Value     T
	Remainder T
}

// String renders the value, followed by " R<remainder>" when the remainder
// is non-zero.
func (r Result[T]) String() string {
	if r.Remainder != 0 {
		return Format(r.Value) + " R" + Format(r.Remainder)
	}
	return Format(r.Value)
}

// Func computes an operator. Unary operators ignore b.
type Func[T Number] func(a, b T) (Result[T], error)

// Operator is a registry entry.
type Operator[T Number] struct {
	metadata.OperatorMetadata
	Apply Func[T]
}

// Registry maps operator symbols to operators.
type Registry[T Number] struct {
	mode  string
	ops   map[string]*Operator[T]
	order []string
}

// NewRegistry returns an empty registry for the named numeric mode.
func NewRegistry[T Number](mode string) *Registry[T] {
	return &Registry[T]{mode: mode, ops: map[string]*Operator[T]{}}
}

// Mode returns the name of the numeric mode.
func (r *Registry[T]) Mode() string { return r.mode }

// Register adds an operator. Symbols must be unique and non-empty, and the
// arity must be Unary or Binary.
func (r *Registry[T]) Register(op *Operator[T]) error {
	if op == nil || op.Symbol == "" {
		return fmt.Errorf("operator must have a symbol")
	}
	if op.Apply == nil {
		return fmt.Errorf("operator %q has no function", op.Symbol)
	}
	if op.Arity != metadata.Unary && op.Arity != metadata.Binary {
		return fmt.Errorf("operator %q has unsupported arity %d", op.Symbol, op.Arity)
	}
	if _, exists := r.ops[op.Symbol]; exists {
		return fmt.Errorf("operator %q is already registered", op.Symbol)
	}
	if op.CliName == "" {
		op.CliName = stringutils.ToKebabCase(op.Name)
	}
	r.ops[op.Symbol] = op
	r.order = append(r.order, op.Symbol)
	return nil
}

func (r *Registry[T]) mustRegister(op *Operator[T]) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// Lookup returns the operator registered under symbol.
func (r *Registry[T]) Lookup(symbol string) (*Operator[T], bool) {
	op, ok := r.ops[symbol]
	return op, ok
}

// Arity returns the arity of symbol, or false if it is not registered.
func (r *Registry[T]) Arity(symbol string) (metadata.Arity, bool) {
	op, ok := r.ops[symbol]
	if !ok {
		return 0, false
	}
	return op.Arity, true
}

// Operators returns the metadata of every operator in registration order.
func (r *Registry[T]) Operators() []*metadata.OperatorMetadata {
	mds := make([]*metadata.OperatorMetadata, 0, len(r.order))
	for _, sym := range r.order {
		md := r.ops[sym].OperatorMetadata
		mds = append(mds, &md)
	}
	return mds
}

// Evaluate computes a op b. For unary operators b is ignored. Unknown
// symbols yield ErrInvalidOperation; every error is an *OperationError.
func (r *Registry[T]) Evaluate(a T, symbol string, b T) (Result[T], error) {
	op, ok := r.ops[symbol]
	if !ok {
		return Result[T]{}, &OperationError{Op: symbol, Err: ErrInvalidOperation}
	}
	res, err := op.Apply(a, b)
	if err != nil {
		return Result[T]{}, &OperationError{Op: symbol, Err: err}
	}
	return res, nil
}

// Apply evaluates symbol over operands, which must number at least the
// operator's arity. Extra operands of a unary operator are ignored.
func (r *Registry[T]) Apply(symbol string, operands ...T) (Result[T], error) {
	op, ok := r.ops[symbol]
	if !ok {
		return Result[T]{}, &OperationError{Op: symbol, Err: ErrInvalidOperation}
	}
	if len(operands) < int(op.Arity) {
		return Result[T]{}, &OperationError{Op: symbol, Err: fmt.Errorf("want %d operands, got %d", op.Arity, len(operands))}
	}
	var b T
	if len(operands) > 1 {
		b = operands[1]
	}
	return r.Evaluate(operands[0], symbol, b)
}
