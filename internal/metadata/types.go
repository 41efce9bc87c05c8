package metadata

// Arity is the number of operands an operator consumes.
type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// OperatorMetadata holds the descriptive part of an operator,
// independent of the numeric type it is evaluated with.
type OperatorMetadata struct {
	Symbol   string // Token that selects the operator (e.g., "+", "sqrt")
	Name     string // Go-style name (e.g., "SquareRoot")
	CliName  string // kebab-case name shown in help (e.g., "square-root")
	Arity    Arity  // Number of operands
	HelpText string // One-line description
	Example  string // Sample input line (e.g., "sqrt 16")
}

// IsUnary reports whether the operator takes a single operand.
func (om *OperatorMetadata) IsUnary() bool {
	return om.Arity == Unary
}

// CalculatorMetadata describes a calculator mode as a whole,
// typically rendered by the help command.
type CalculatorMetadata struct {
	Name        string // Name of the command (e.g., "calc")
	Mode        string // Numeric mode (e.g., "float", "int")
	Description string
	ExitKeyword string
	Operators   []*OperatorMetadata
}
