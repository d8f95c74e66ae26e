// Package llvm lowers the target tree to an LLVM IR module. Each callee is
// declared as an external function over i64 values and every top-level
// statement is evaluated, in order, inside main.
package llvm

import (
	"fmt"
	"strconv"

	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/target"
	"tinygo.org/x/go-llvm"
)

const entrypoint = "main"

type llvmCodegen struct {
	context llvm.Context
	module  llvm.Module
	builder llvm.Builder

	i64       llvm.Type
	functions map[string]*Function
}

func NewCG(moduleName string) *llvmCodegen {
	context := llvm.NewContext()
	module := context.NewModule(moduleName)
	builder := context.NewBuilder()

	defaultTargetTriple := llvm.DefaultTargetTriple()
	module.SetTarget(defaultTargetTriple)

	return &llvmCodegen{
		context:   context,
		module:    module,
		builder:   builder,
		i64:       context.Int64Type(),
		functions: make(map[string]*Function),
	}
}

// Generate is a one-shot helper that disposes of every LLVM object it creates.
func Generate(moduleName string, program *target.Program) (string, error) {
	c := NewCG(moduleName)
	defer c.Dispose()
	return c.Generate(program)
}

func (c *llvmCodegen) Dispose() {
	c.builder.Dispose()
	c.module.Dispose()
	c.context.Dispose()
}

func (c *llvmCodegen) Generate(program *target.Program) (string, error) {
	if program == nil {
		return "", diagnostics.NewGenerateError("nil %T", program)
	}

	for _, node := range program.Body {
		err := c.generateDeclarations(node)
		if err != nil {
			return "", err
		}
	}

	err := c.generateMain(program)
	if err != nil {
		return "", err
	}

	err = llvm.VerifyModule(c.module, llvm.ReturnStatusAction)
	if err != nil {
		return "", diagnostics.NewGenerateError("invalid module: %s", err)
	}

	return c.module.String(), nil
}

func (c *llvmCodegen) generateDeclarations(node target.Node) error {
	switch n := node.(type) {
	case *target.ExpressionStatement:
		if n == nil {
			return diagnostics.NewGenerateError("nil %T", n)
		}
		return c.generateDeclarations(n.Expression)
	case *target.CallExpression:
		if n == nil || n.Callee == nil {
			return diagnostics.NewGenerateError("call without a callee")
		}
		err := c.declareFn(n.Callee.Name, len(n.Arguments))
		if err != nil {
			return err
		}
		for _, arg := range n.Arguments {
			err := c.generateDeclarations(arg)
			if err != nil {
				return err
			}
		}
		return nil
	case *target.NumberLiteral:
		return nil
	default:
		return diagnostics.NewGenerateError("unrecognized node %T", node)
	}
}

func (c *llvmCodegen) declareFn(name string, arity int) error {
	if name == entrypoint {
		return diagnostics.NewGenerateError("%q is reserved for the entrypoint", name)
	}

	if fn, ok := c.functions[name]; ok {
		if fn.Arity != arity {
			return diagnostics.NewGenerateError(
				"%q called with %d arguments, but previously with %d",
				name, arity, fn.Arity,
			)
		}
		return nil
	}

	paramsTypes := make([]llvm.Type, arity)
	for i := range paramsTypes {
		paramsTypes[i] = c.i64
	}
	functionType := llvm.FunctionType(c.i64, paramsTypes, false)
	functionValue := llvm.AddFunction(c.module, name, functionType)
	c.functions[name] = NewFunctionValue(functionValue, functionType, arity)
	return nil
}

func (c *llvmCodegen) generateMain(program *target.Program) error {
	i32 := c.context.Int32Type()
	mainType := llvm.FunctionType(i32, nil, false)
	mainFn := llvm.AddFunction(c.module, entrypoint, mainType)

	entry := c.context.AddBasicBlock(mainFn, "entry")
	c.builder.SetInsertPointAtEnd(entry)

	for _, node := range program.Body {
		var err error
		switch n := node.(type) {
		case *target.ExpressionStatement:
			_, err = c.generateValue(n.Expression)
		default:
			_, err = c.generateValue(n)
		}
		if err != nil {
			return err
		}
	}

	c.builder.CreateRet(llvm.ConstInt(i32, 0, false))
	return nil
}

func (c *llvmCodegen) generateValue(node target.Node) (llvm.Value, error) {
	switch n := node.(type) {
	case *target.NumberLiteral:
		if n == nil {
			return llvm.Value{}, diagnostics.NewGenerateError("nil %T", n)
		}
		value, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return llvm.Value{}, diagnostics.NewGenerateError("number literal %s does not fit in i64", n.Value)
		}
		return llvm.ConstInt(c.i64, uint64(value), true), nil
	case *target.CallExpression:
		return c.generateFnCall(n)
	default:
		return llvm.Value{}, diagnostics.NewGenerateError("unrecognized node %s", describe(node))
	}
}

func (c *llvmCodegen) generateFnCall(call *target.CallExpression) (llvm.Value, error) {
	fn := c.functions[call.Callee.Name]

	args := make([]llvm.Value, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		value, err := c.generateValue(arg)
		if err != nil {
			return llvm.Value{}, err
		}
		args = append(args, value)
	}

	return c.builder.CreateCall(fn.Ty, fn.Fn, args, ""), nil
}

func describe(node target.Node) string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", node)
}
