package eval

import (
	"math"

	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
	"github.com/nova-lang/nova/token"
)

func (e *Evaluator) evalUnary(n *parser.Unary, env *environment.Environment) object.Value {
	operand := e.Eval(n.Operand, env)
	if object.IsError(operand) {
		return operand
	}
	switch n.Op {
	case token.MINUS:
		num, ok := operand.(*object.Number)
		if !ok {
			return e.errf(n.Pos(), "unary '-' requires a number, got %s", operand.Type())
		}
		return &object.Number{Val: -num.Val}
	case token.BANG:
		return object.Bool(!object.Truthy(operand))
	default:
		return e.errf(n.Pos(), "internal error: unknown unary operator %s", n.Op)
	}
}

// evalLogical implements spec §4.3.2's short-circuit rule: the result is
// the deciding operand's own value, not coerced to a boolean.
func (e *Evaluator) evalLogical(n *parser.Logical, env *environment.Environment) object.Value {
	left := e.Eval(n.Left, env)
	if object.IsError(left) {
		return left
	}
	switch n.Op {
	case token.AND:
		if !object.Truthy(left) {
			return left
		}
		return e.Eval(n.Right, env)
	case token.OR:
		if object.Truthy(left) {
			return left
		}
		return e.Eval(n.Right, env)
	default:
		return e.errf(n.Pos(), "internal error: unknown logical operator %s", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *parser.Binary, env *environment.Environment) object.Value {
	left := e.Eval(n.Left, env)
	if object.IsError(left) {
		return left
	}
	right := e.Eval(n.Right, env)
	if object.IsError(right) {
		return right
	}

	switch n.Op {
	case token.EQ:
		return object.Bool(object.Equals(left, right))
	case token.NEQ:
		return object.Bool(!object.Equals(left, right))
	case token.PLUS:
		return e.evalAdd(n, left, right)
	case token.MINUS, token.STAR, token.SLASH, token.MOD:
		return e.evalArith(n, left, right)
	case token.LT, token.GT, token.LE, token.GE:
		return e.evalCompare(n, left, right)
	default:
		return e.errf(n.Pos(), "internal error: unknown binary operator %s", n.Op)
	}
}

// evalAdd implements spec §4.3.2: if either operand is a string, coerce
// the other to its canonical string form (spec §4.4's `str` contract,
// backed here by Value.String()) and concatenate; otherwise both operands
// must be numbers.
func (e *Evaluator) evalAdd(n *parser.Binary, left, right object.Value) object.Value {
	_, leftStr := left.(*object.String)
	_, rightStr := right.(*object.String)
	if leftStr || rightStr {
		return &object.String{Val: left.String() + right.String()}
	}
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return e.errf(n.Pos(), "'+' requires two numbers or a string operand, got %s and %s", left.Type(), right.Type())
	}
	return &object.Number{Val: ln.Val + rn.Val}
}

func (e *Evaluator) evalArith(n *parser.Binary, left, right object.Value) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return e.errf(n.Pos(), "'%s' requires two numbers, got %s and %s", n.Op, left.Type(), right.Type())
	}
	switch n.Op {
	case token.MINUS:
		return &object.Number{Val: ln.Val - rn.Val}
	case token.STAR:
		return &object.Number{Val: ln.Val * rn.Val}
	case token.SLASH:
		if rn.Val == 0 {
			return e.errf(n.Pos(), "division by zero")
		}
		return &object.Number{Val: ln.Val / rn.Val}
	case token.MOD:
		if rn.Val == 0 {
			return e.errf(n.Pos(), "division by zero")
		}
		// math.Mod's result takes the sign of the dividend, matching
		// spec §4.3.2's `%` contract directly.
		return &object.Number{Val: math.Mod(ln.Val, rn.Val)}
	default:
		return e.errf(n.Pos(), "internal error: unknown arithmetic operator %s", n.Op)
	}
}

func (e *Evaluator) evalCompare(n *parser.Binary, left, right object.Value) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return e.errf(n.Pos(), "'%s' requires two numbers, got %s and %s", n.Op, left.Type(), right.Type())
	}
	switch n.Op {
	case token.LT:
		return object.Bool(ln.Val < rn.Val)
	case token.GT:
		return object.Bool(ln.Val > rn.Val)
	case token.LE:
		return object.Bool(ln.Val <= rn.Val)
	case token.GE:
		return object.Bool(ln.Val >= rn.Val)
	default:
		return e.errf(n.Pos(), "internal error: unknown comparison operator %s", n.Op)
	}
}
