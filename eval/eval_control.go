package eval

import (
	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
)

// evalBlock evaluates a block's statements in order; its value is the
// last statement's value, or Null if the block is empty or its last
// statement is not itself value-producing (spec §4.2). A `return`
// completion short-circuits the remaining statements and propagates
// unchanged to the caller, which is how unwinding to the enclosing
// function call works without host-level exceptions (spec §9).
func (e *Evaluator) evalBlock(block *parser.BlockExpr, env *environment.Environment) object.Value {
	var result object.Value = object.NullValue
	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)
		if object.IsError(result) {
			return result
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalReturn(n *parser.ReturnStmt, env *environment.Environment) object.Value {
	var val object.Value = object.NullValue
	if n.Value != nil {
		val = e.Eval(n.Value, env)
		if object.IsError(val) {
			return val
		}
	}
	return &object.ReturnValue{Val: val}
}

// evalIf implements spec §4.3.4: the condition's truthiness (spec
// §4.3.4's Truthy rule, not host boolean conversion) selects the branch;
// the chosen branch's value is the If's value.
func (e *Evaluator) evalIf(n *parser.IfExpr, env *environment.Environment) object.Value {
	cond := e.Eval(n.Cond, env)
	if object.IsError(cond) {
		return cond
	}
	if object.Truthy(cond) {
		return e.Eval(n.Then, env)
	}
	if n.Else != nil {
		return e.Eval(n.Else, env)
	}
	return object.NullValue
}

// evalWhile implements spec §4.3.4: repeated evaluation while the
// condition is truthy; the While expression's own value is always Null.
// A `return` from the body propagates out of the loop immediately.
func (e *Evaluator) evalWhile(n *parser.WhileExpr, env *environment.Environment) object.Value {
	for {
		cond := e.Eval(n.Cond, env)
		if object.IsError(cond) {
			return cond
		}
		if !object.Truthy(cond) {
			return object.NullValue
		}
		result := e.Eval(n.Body, env)
		if object.IsError(result) {
			return result
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
}

// evalFor implements spec §4.3.4: `e` is evaluated once and must be
// Array or String; each iteration binds Var in a fresh child scope (a
// `for` body that closes over the loop variable must not all share one
// mutable slot). The For expression's own value is always Null.
func (e *Evaluator) evalFor(n *parser.ForExpr, env *environment.Environment) object.Value {
	iter := e.Eval(n.Iter, env)
	if object.IsError(iter) {
		return iter
	}

	var elements []object.Value
	switch v := iter.(type) {
	case *object.Array:
		elements = v.Elements
	case *object.String:
		for _, r := range v.Val {
			elements = append(elements, &object.String{Val: string(r)})
		}
	default:
		return e.errf(n.Pos(), "'for' requires an array or string, got %s", iter.Type())
	}

	for _, elem := range elements {
		iterEnv := environment.New(env)
		iterEnv.Define(n.Var, elem)
		result := e.Eval(n.Body, iterEnv)
		if object.IsError(result) {
			return result
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
	return object.NullValue
}
