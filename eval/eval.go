// Package eval walks a Nova AST against an environment chain (spec §4.3),
// grounded in go-mix's eval package (Evaluator.CallFunction,
// RegisterFunction, CreateError) but restructured around a single
// type-switching Eval method instead of go-mix's visitor dispatch, to
// match the lighter Node interface parser.Node chose (see parser/node.go
// doc comment).
package eval

import (
	"github.com/nova-lang/nova/builtin"
	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/function"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
	"github.com/nova-lang/nova/token"
)

// frame tracks the receiver and defining class for the method body
// currently executing, so `this`, `super`, and private-visibility checks
// (spec §4.3.2, §4.3.5) can be resolved without threading extra
// parameters through every recursive Eval call. It is pushed/popped
// around every function invocation — plain function calls push a frame
// with both fields nil.
type frame struct {
	receiver *function.Instance
	class    *function.Class // the class the executing method is defined on
}

// Evaluator holds the single top-level environment (spec §3.2) and the
// registered built-ins (spec §4.4). It is single-threaded and
// non-reentrant (spec §5): one Evaluator must not be driven by two
// goroutines concurrently.
type Evaluator struct {
	Global   *environment.Environment
	Builtins map[string]*object.Builtin
	Out      func(string)

	frames []frame
}

// New constructs an Evaluator with a fresh top-level environment seeded
// with the minimum built-in set (spec §4.4). The out callback receives
// each line `print` emits; the CLI driver passes os.Stdout, tests pass a
// buffer.
func New(out func(string)) *Evaluator {
	e := &Evaluator{
		Global:   environment.New(nil),
		Builtins: make(map[string]*object.Builtin),
		Out:      out,
	}
	builtin.Register(e.Builtins)
	for name, b := range e.Builtins {
		e.Global.Define(name, b)
	}
	return e
}

func toObjPos(p token.Position) object.Position {
	return object.Position{Line: p.Line, Column: p.Column}
}

func (e *Evaluator) errf(pos token.Position, format string, args ...interface{}) *object.Error {
	return object.NewError(toObjPos(pos), format, args...)
}

func (e *Evaluator) currentFrame() (frame, bool) {
	if len(e.frames) == 0 {
		return frame{}, false
	}
	return e.frames[len(e.frames)-1], true
}

// Run parses and evaluates src against the Evaluator's global scope,
// satisfying the "evaluate(AST, top-env) -> value | error" contract
// (spec §6.2) from source text directly — the common case for both the
// file driver and the REPL.
func (e *Evaluator) Run(src string) (object.Value, error) {
	prog, perr := parser.Parse(src)
	if perr != nil {
		return nil, perr
	}
	return e.EvalProgram(prog), nil
}

// EvalProgram evaluates every top-level statement in order against the
// global scope, returning the last statement's value or the first error
// encountered (spec §7: every error aborts its containing phase).
func (e *Evaluator) EvalProgram(prog *parser.Program) object.Value {
	var result object.Value = object.NullValue
	for _, stmt := range prog.Statements {
		result = e.Eval(stmt, e.Global)
		if object.IsError(result) {
			return result
		}
		if rv, ok := result.(*object.ReturnValue); ok {
			// return at top level cannot happen (parser rejects it), but
			// unwrap defensively rather than leak the completion type.
			result = rv.Val
		}
	}
	return result
}

// Eval dispatches on node's concrete type. It is the single consumer of
// the AST that motivated collapsing go-mix's NodeVisitor into a type
// switch (see parser/node.go).
func (e *Evaluator) Eval(node parser.Node, env *environment.Environment) object.Value {
	switch n := node.(type) {

	// --- statements ---
	case *parser.LetStmt:
		return e.evalLet(n, env)
	case *parser.ClassDecl:
		return e.evalClassDecl(n, env)
	case *parser.ReturnStmt:
		return e.evalReturn(n, env)
	case *parser.ExprStmt:
		return e.Eval(n.Value, env)
	case *parser.BlockExpr:
		return e.evalBlock(n, environment.New(env))
	case *parser.IfExpr:
		return e.evalIf(n, env)
	case *parser.WhileExpr:
		return e.evalWhile(n, env)
	case *parser.ForExpr:
		return e.evalFor(n, env)

	// --- literals ---
	case *parser.NumberLit:
		return &object.Number{Val: n.Value}
	case *parser.StringLit:
		return &object.String{Val: n.Value}
	case *parser.BoolLit:
		return object.Bool(n.Value)
	case *parser.NullLit:
		return object.NullValue
	case *parser.ArrayLit:
		return e.evalArrayLit(n, env)
	case *parser.FnLit:
		return &function.Function{Params: n.Params, Body: n.Body, Env: env}

	// --- expressions ---
	case *parser.Identifier:
		return e.evalIdentifier(n, env)
	case *parser.Assign:
		return e.evalAssign(n, env)
	case *parser.Binary:
		return e.evalBinary(n, env)
	case *parser.Logical:
		return e.evalLogical(n, env)
	case *parser.Unary:
		return e.evalUnary(n, env)
	case *parser.Call:
		return e.evalCall(n, env)
	case *parser.IndexExpr:
		return e.evalIndex(n, env)
	case *parser.MemberExpr:
		return e.evalMember(n, env)
	case *parser.NewExpr:
		return e.evalNew(n, env)
	case *parser.This:
		return e.evalThis(n)
	case *parser.SuperCall:
		return e.evalSuperCall(n, env)

	default:
		return e.errf(node.Pos(), "internal error: unhandled node type %T", node)
	}
}

func (e *Evaluator) evalLet(n *parser.LetStmt, env *environment.Environment) object.Value {
	if n.SelfBind {
		// FnDecl sugar (spec §9, "recursive function scoping"): bind the
		// name in the defining scope before evaluating the closure, so a
		// function can look itself up by name inside its own body. env is
		// a live pointer shared with the Function value's captured Env, so
		// this Define is visible from inside the body regardless of
		// evaluation order, but binding first keeps the declared intent
		// explicit rather than relying on that aliasing incidentally.
		env.Define(n.Name, object.NullValue)
	}
	val := e.Eval(n.Value, env)
	if object.IsError(val) {
		return val
	}
	if fn, ok := val.(*function.Function); ok && n.SelfBind {
		fn.Name = n.Name
	}
	env.Define(n.Name, val)
	return object.NullValue
}

func (e *Evaluator) evalArrayLit(n *parser.ArrayLit, env *environment.Environment) object.Value {
	elems := make([]object.Value, len(n.Elements))
	for i, elemExpr := range n.Elements {
		v := e.Eval(elemExpr, env)
		if object.IsError(v) {
			return v
		}
		elems[i] = v
	}
	return &object.Array{Elements: elems}
}

func (e *Evaluator) evalIdentifier(n *parser.Identifier, env *environment.Environment) object.Value {
	if v, ok := env.Get(n.Name); ok {
		return v
	}
	return e.errf(n.Pos(), "undefined identifier %q", n.Name)
}
