package metadata

import "testing"

func TestOperatorMetadata(t *testing.T) {
	t.Run("unary", func(t *testing.T) {
		md := OperatorMetadata{Symbol: "sqrt", Arity: Unary}
		if !md.IsUnary() {
			t.Errorf("expected %q to be unary", md.Symbol)
		}
	})
	t.Run("binary", func(t *testing.T) {
		md := OperatorMetadata{Symbol: "+", Arity: Binary}
		if md.IsUnary() {
			t.Errorf("expected %q to be binary", md.Symbol)
		}
	})
}
