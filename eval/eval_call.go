package eval

import (
	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/function"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
	"github.com/nova-lang/nova/token"
)

func (e *Evaluator) evalCall(n *parser.Call, env *environment.Environment) object.Value {
	callee := e.Eval(n.Callee, env)
	if object.IsError(callee) {
		return callee
	}
	args, errv := e.evalArgs(n.Args, env)
	if errv != nil {
		return errv
	}
	return e.invoke(callee, args, n.Pos())
}

func (e *Evaluator) evalArgs(argExprs []parser.Expr, env *environment.Environment) ([]object.Value, object.Value) {
	args := make([]object.Value, len(argExprs))
	for i, a := range argExprs {
		v := e.Eval(a, env)
		if object.IsError(v) {
			return nil, v
		}
		args[i] = v
	}
	return args, nil
}

// invoke implements spec §4.3.3's function call protocol: verify
// callability, check arity, bind parameters (plus `this` for a bound
// method) in a fresh child environment, evaluate the body, and unwrap a
// `return` completion into its value.
func (e *Evaluator) invoke(callee object.Value, args []object.Value, pos token.Position) object.Value {
	switch fn := callee.(type) {
	case *object.Builtin:
		return fn.Fn(e, toObjPos(pos), args...)
	case *function.Function:
		return e.callFunction(fn, args, pos)
	default:
		return e.errf(pos, "value of type %s is not callable", callee.Type())
	}
}

func (e *Evaluator) callFunction(fn *function.Function, args []object.Value, pos token.Position) object.Value {
	if len(args) != len(fn.Params) {
		return e.errf(pos, "wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}

	callEnv := environment.New(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	fr := frame{class: fn.DefiningClass}
	if fn.Receiver != nil {
		fr.receiver = fn.Receiver
		callEnv.Define("this", fn.Receiver)
	}
	e.frames = append(e.frames, fr)
	result := e.evalBlock(fn.Body, callEnv)
	e.frames = e.frames[:len(e.frames)-1]

	if object.IsError(result) {
		return result
	}
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Val
	}
	return result
}

// Call implements object.Runtime, letting a built-in invoke a Nova
// callable value without the object package importing eval.
func (e *Evaluator) Call(callee object.Value, args ...object.Value) object.Value {
	return e.invoke(callee, args, token.Position{})
}

// Write implements object.Runtime, backing `print` without the object or
// builtin packages depending on io/os directly.
func (e *Evaluator) Write(s string) {
	if e.Out != nil {
		e.Out(s)
	}
}
