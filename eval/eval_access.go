package eval

import (
	"math"

	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/function"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
	"github.com/nova-lang/nova/token"
)

// evalAssign implements spec §4.3.2: the target may be an identifier, an
// index expression, or a member expression. Grounded in go-mix's
// eval_assignments.go pattern of a separate assign path per target shape,
// but trimmed to Nova's three target kinds only.
func (e *Evaluator) evalAssign(n *parser.Assign, env *environment.Environment) object.Value {
	val := e.Eval(n.Value, env)
	if object.IsError(val) {
		return val
	}

	switch target := n.Target.(type) {
	case *parser.Identifier:
		if !env.Assign(target.Name, val) {
			return e.errf(n.Pos(), "assignment to undefined identifier %q", target.Name)
		}
		return val
	case *parser.IndexExpr:
		return e.assignIndex(target, val, env)
	case *parser.MemberExpr:
		return e.assignMember(target, val, env)
	default:
		return e.errf(n.Pos(), "internal error: invalid assignment target %T", n.Target)
	}
}

func (e *Evaluator) assignIndex(target *parser.IndexExpr, val object.Value, env *environment.Environment) object.Value {
	obj := e.Eval(target.Obj, env)
	if object.IsError(obj) {
		return obj
	}
	idx := e.Eval(target.Index, env)
	if object.IsError(idx) {
		return idx
	}
	arr, ok := obj.(*object.Array)
	if !ok {
		return e.errf(target.Pos(), "index assignment requires an array, got %s", obj.Type())
	}
	i, ierr := e.indexOf(target.Pos(), idx, len(arr.Elements))
	if ierr != nil {
		return ierr
	}
	arr.Elements[i] = val
	return val
}

func (e *Evaluator) assignMember(target *parser.MemberExpr, val object.Value, env *environment.Environment) object.Value {
	obj := e.Eval(target.Obj, env)
	if object.IsError(obj) {
		return obj
	}
	inst, ok := obj.(*function.Instance)
	if !ok {
		return e.errf(target.Pos(), "field assignment requires an object, got %s", obj.Type())
	}
	inst.Set(target.Name, val)
	return val
}

// evalIndex implements spec §4.3.2: obj must be String or Array; idx must
// be an integer-valued number in range.
func (e *Evaluator) evalIndex(n *parser.IndexExpr, env *environment.Environment) object.Value {
	obj := e.Eval(n.Obj, env)
	if object.IsError(obj) {
		return obj
	}
	idx := e.Eval(n.Index, env)
	if object.IsError(idx) {
		return idx
	}

	switch v := obj.(type) {
	case *object.Array:
		i, ierr := e.indexOf(n.Pos(), idx, len(v.Elements))
		if ierr != nil {
			return ierr
		}
		return v.Elements[i]
	case *object.String:
		runes := []rune(v.Val)
		i, ierr := e.indexOf(n.Pos(), idx, len(runes))
		if ierr != nil {
			return ierr
		}
		return &object.String{Val: string(runes[i])}
	default:
		return e.errf(n.Pos(), "indexing requires a string or array, got %s", obj.Type())
	}
}

func (e *Evaluator) indexOf(pos token.Position, idx object.Value, length int) (int, *object.Error) {
	num, ok := idx.(*object.Number)
	if !ok || num.Val != math.Trunc(num.Val) {
		return 0, e.errf(pos, "index must be an integer, got %s", idx.Type())
	}
	i := int(num.Val)
	if i < 0 || i >= length {
		return 0, e.errf(pos, "index %d out of range [0, %d)", i, length)
	}
	return i, nil
}

// evalMember implements spec §4.3.2/§4.3.5: an Object's own field wins
// first; otherwise its class chain is searched for a method, which is
// returned bound to the receiver. A Class target only exposes static
// methods.
func (e *Evaluator) evalMember(n *parser.MemberExpr, env *environment.Environment) object.Value {
	obj := e.Eval(n.Obj, env)
	if object.IsError(obj) {
		return obj
	}

	switch v := obj.(type) {
	case *function.Instance:
		if field, ok := v.Get(n.Name); ok {
			return field
		}
		method, definer := v.Class.FindMethod(n.Name)
		if method == nil {
			return e.errf(n.Pos(), "undefined member %q on object of class %s", n.Name, v.Class.Name)
		}
		if method.Private && !e.privateVisible(definer) {
			return e.errf(n.Pos(), "method %q is private to class %s", n.Name, definer.Name)
		}
		return method.Bind(v)
	case *function.Class:
		method, _ := v.FindStatic(n.Name)
		if method == nil {
			return e.errf(n.Pos(), "undefined static member %q on class %s", n.Name, v.Name)
		}
		return method
	default:
		return e.errf(n.Pos(), "member access requires an object or class, got %s", obj.Type())
	}
}

// privateVisible implements spec §4.3.5 point 2: a private method is
// visible only when the lookup originates syntactically inside a method
// of the exact defining class.
func (e *Evaluator) privateVisible(definer *function.Class) bool {
	fr, ok := e.currentFrame()
	if !ok {
		return false
	}
	return fr.class == definer
}
