// Package object defines Nova's runtime value universe: the closed tagged
// set of values an evaluated program can produce, plus the error and
// control-flow completion values the evaluator threads through a walk.
//
// This package is a leaf: it must not import environment or parser, so
// that environment (which holds object.Value bindings) and parser (whose
// function/class AST nodes are captured by Function/Class values) can both
// depend on it without a cycle. go-mix splits the same concern across
// objects/objects.go and std/struct.go; Nova collapses that split into one
// package plus a separate function package for the callable/class types
// that do need parser and environment.
package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type names the runtime tag of a Value, matching the set `type()` can
// return per the built-in contract.
type Type string

const (
	NUMBER   Type = "number"
	STRING   Type = "string"
	BOOLEAN  Type = "boolean"
	NULL     Type = "null"
	ARRAY    Type = "array"
	OBJECT   Type = "object"
	FUNCTION Type = "function"
	CLASS    Type = "class"
	BUILTIN  Type = "builtin"

	// RETURN_VALUE and ERROR are internal completion tags, not user-facing
	// value kinds; type() never reports them because the evaluator always
	// unwraps or propagates them before a value reaches user code.
	RETURN_VALUE Type = "return_value"
	ERROR        Type = "error"
)

// Value is satisfied by every runtime value and internal completion.
type Value interface {
	Type() Type
	String() string
}

// Number is Nova's sole numeric type: an IEEE-754 double. Integers are
// numbers with a zero fractional part, per spec §3.1.
type Number struct {
	Val float64
}

func (n *Number) Type() Type { return NUMBER }

func (n *Number) String() string {
	if n.Val == math.Trunc(n.Val) && !math.IsInf(n.Val, 0) {
		return strconv.FormatFloat(n.Val, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// String is Nova's immutable, codepoint-wise-compared text value.
type String struct {
	Val string
}

func (s *String) Type() Type   { return STRING }
func (s *String) String() string { return s.Val }

// Boolean wraps true/false.
type Boolean struct {
	Val bool
}

func (b *Boolean) Type() Type { return BOOLEAN }
func (b *Boolean) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Null is the unit/absence value. There is exactly one meaningful instance
// of it in practice (NullValue below), but the type itself carries no
// state so any zero value compares equal in behavior.
type Null struct{}

func (n *Null) Type() Type   { return NULL }
func (n *Null) String() string { return "null" }

// Shared singletons, mirroring go-mix's convention of reusing Boolean/Nil
// instances rather than allocating fresh ones per evaluation.
var (
	NullValue  = &Null{}
	TrueValue  = &Boolean{Val: true}
	FalseValue = &Boolean{Val: false}
)

// Bool returns the shared Boolean singleton for a host bool.
func Bool(v bool) *Boolean {
	if v {
		return TrueValue
	}
	return FalseValue
}

// Array has reference semantics: two bindings may share the same *Array,
// and mutation through one is visible through the other (spec §3.1).
type Array struct {
	Elements []Value
}

func (a *Array) Type() Type { return ARRAY }
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Error is both a Go error type and a Nova Value, mirroring go-mix's
// objects.Error: the evaluator returns *Error values up the call stack as
// its ordinary Value result and never as a value a live program can
// catch, since Nova has no try/catch (spec §7).
type Error struct {
	Message string
	Pos     Position
	Phase   string // "lexical" | "syntax" | "runtime"
}

// Position avoids importing the token package directly (token would be
// fine to import, but mirroring it locally keeps object a true leaf with
// zero non-stdlib imports, consistent with go-mix's objects package).
type Position struct {
	Line   int
	Column int
}

func (e *Error) Type() Type { return ERROR }
func (e *Error) String() string {
	return fmt.Sprintf("[%d:%d] %s error: %s", e.Pos.Line, e.Pos.Column, e.Phase, e.Message)
}
func (e *Error) Error() string { return e.String() }

// NewError builds a runtime-phase error at pos. Lexer and parser report
// their failures through their own types (lexer.LexError,
// parser.ParseError), not through Error.
func NewError(pos Position, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: pos, Phase: "runtime"}
}

// ReturnValue wraps a value mid-unwind from a `return` statement. It is an
// internal completion reason (spec §4.3, §9 "Evaluator control flow"), never
// observed by user code directly.
type ReturnValue struct {
	Val Value
}

func (r *ReturnValue) Type() Type   { return RETURN_VALUE }
func (r *ReturnValue) String() string { return r.Val.String() }

// IsError reports whether v is an *Error, the convention the evaluator uses
// throughout to check "did the last step fail" without a second return
// value at every call site — matching go-mix's eval package idiom.
func IsError(v Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == ERROR
}

// Truthy implements spec §4.3.4: only Null and false are falsy; everything
// else, including 0, "", and [], is truthy. Must never be inferred from a
// host language's own truthiness rules.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Null:
		return false
	case *Boolean:
		return val.Val
	default:
		return true
	}
}

// Equals implements spec §3.1's equality table: Numbers by IEEE equality,
// Strings by content, Booleans/Null by variant identity, everything else
// (Array, Object, Function, Class, Built-in) by reference identity.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Val == bv.Val
	case *String:
		bv, ok := b.(*String)
		return ok && av.Val == bv.Val
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Val == bv.Val
	case *Null:
		_, ok := b.(*Null)
		return ok
	default:
		return a == b
	}
}
