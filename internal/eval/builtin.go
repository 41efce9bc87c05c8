package eval

import "github.com/podhmo/calc/internal/metadata"

// builtin describes the operators every mode provides, in display order.
var builtin = []metadata.OperatorMetadata{
	{Symbol: "+", Name: "Add", Arity: metadata.Binary, HelpText: "Sum of both operands", Example: "3 + 4"},
	{Symbol: "-", Name: "Subtract", Arity: metadata.Binary, HelpText: "First operand minus the second", Example: "10 - 4"},
	{Symbol: "*", Name: "Multiply", Arity: metadata.Binary, HelpText: "Product of both operands", Example: "6 * 7"},
	{Symbol: "/", Name: "Divide", Arity: metadata.Binary, HelpText: "First operand divided by the second", Example: "7 / 2"},
	{Symbol: "^", Name: "Power", Arity: metadata.Binary, HelpText: "First operand raised to the second", Example: "2 ^ 10"},
	{Symbol: "sqrt", Name: "SquareRoot", Arity: metadata.Unary, HelpText: "Square root of the operand", Example: "sqrt 16"},
}

func newRegistry[T Number](mode string, funcs map[string]Func[T]) *Registry[T] {
	r := NewRegistry[T](mode)
	for _, md := range builtin {
		r.mustRegister(&Operator[T]{OperatorMetadata: md, Apply: funcs[md.Symbol]})
	}
	return r
}
