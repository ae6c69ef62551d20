package eval

import (
	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/function"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
)

// evalClassDecl implements spec §4.3.1: resolve the parent (if any) to a
// Class value, build a Class containing methods keyed by name with their
// visibility and static flag, and bind the class by name.
func (e *Evaluator) evalClassDecl(n *parser.ClassDecl, env *environment.Environment) object.Value {
	var parent *function.Class
	if n.Parent != "" {
		pv, ok := env.Get(n.Parent)
		if !ok {
			return e.errf(n.Pos(), "undefined parent class %q", n.Parent)
		}
		pc, ok := pv.(*function.Class)
		if !ok {
			return e.errf(n.Pos(), "%q is not a class", n.Parent)
		}
		parent = pc
	}

	class := &function.Class{Name: n.Name, Parent: parent, Methods: make(map[string]*function.Function)}
	for _, m := range n.Methods {
		class.Methods[m.Name] = &function.Function{
			Name:          m.Name,
			Params:        m.Params,
			Body:          m.Body,
			Env:           env,
			DefiningClass: class,
			Private:       m.Private,
			Static:        m.Static,
		}
	}
	env.Define(n.Name, class)
	return object.NullValue
}

// evalNew implements spec §4.3.2's `New` rule: create a fresh Instance
// linked to the class, run its constructor (walking the parent chain for
// an inherited one if the class itself defines none), and always yield
// the new Instance regardless of what the constructor returns.
func (e *Evaluator) evalNew(n *parser.NewExpr, env *environment.Environment) object.Value {
	cv, ok := env.Get(n.ClassName)
	if !ok {
		return e.errf(n.Pos(), "undefined class %q", n.ClassName)
	}
	class, ok := cv.(*function.Class)
	if !ok {
		return e.errf(n.Pos(), "%q is not a class", n.ClassName)
	}

	args, errv := e.evalArgs(n.Args, env)
	if errv != nil {
		return errv
	}

	inst := function.NewInstance(class)
	ctor, _ := class.FindConstructor()
	if ctor != nil {
		result := e.callFunction(ctor.Bind(inst), args, n.Pos())
		if object.IsError(result) {
			return result
		}
	} else if len(args) != 0 {
		return e.errf(n.Pos(), "class %s has no constructor but %d argument(s) given", class.Name, len(args))
	}
	return inst
}

// evalThis implements spec §4.3.2: `this` evaluates to the receiver
// inside a method body; elsewhere it is a runtime error.
func (e *Evaluator) evalThis(n *parser.This) object.Value {
	fr, ok := e.currentFrame()
	if !ok || fr.receiver == nil {
		return e.errf(n.Pos(), "'this' used outside a method body")
	}
	return fr.receiver
}

// evalSuperCall implements spec §4.3.2: `super.method(args)` invokes the
// named method starting the search at the defining class's parent (so an
// override does not shadow itself); bare `super(args)` invokes the parent
// constructor. Both keep `this` bound to the current receiver.
func (e *Evaluator) evalSuperCall(n *parser.SuperCall, env *environment.Environment) object.Value {
	fr, ok := e.currentFrame()
	if !ok || fr.receiver == nil || fr.class == nil {
		return e.errf(n.Pos(), "'super' used outside a method body")
	}
	parent := fr.class.Parent
	if parent == nil {
		return e.errf(n.Pos(), "class %s has no parent class for 'super'", fr.class.Name)
	}

	args, errv := e.evalArgs(n.Args, env)
	if errv != nil {
		return errv
	}

	if n.Method == "" {
		ctor, _ := parent.FindConstructor()
		if ctor == nil {
			if len(args) != 0 {
				return e.errf(n.Pos(), "class %s has no constructor but %d argument(s) given to super(...)", parent.Name, len(args))
			}
			return object.NullValue
		}
		return e.callFunction(ctor.Bind(fr.receiver), args, n.Pos())
	}

	method, _ := parent.FindMethod(n.Method)
	if method == nil {
		return e.errf(n.Pos(), "undefined member %q on %s", n.Method, parent.Name)
	}
	return e.callFunction(method.Bind(fr.receiver), args, n.Pos())
}
