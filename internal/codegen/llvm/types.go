package llvm

import (
	"tinygo.org/x/go-llvm"
)

// Function is an external function declared for a callee. Every parameter and
// the return value are i64.
type Function struct {
	Fn    llvm.Value
	Ty    llvm.Type
	Arity int
}

func NewFunctionValue(fn llvm.Value, ty llvm.Type, arity int) *Function {
	return &Function{Fn: fn, Ty: ty, Arity: arity}
}
