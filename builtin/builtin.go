// Package builtin implements Nova's minimum required built-in function
// set (spec §4.4): print, len, type, str, num, push, pop. It is grounded
// in go-mix's std package (a flat `Builtins []*Builtin` registry
// populated by one function per concern) but trimmed to the seven
// built-ins spec.md actually specifies, since go-mix's json/regex/http/
// crypto/time/file-I/O standard-library-alike surface has no counterpart
// in Nova's closed value set and is out of scope for the core (spec §1).
package builtin

import (
	"strconv"
	"strings"

	"github.com/nova-lang/nova/object"
)

// Register populates reg with the minimum required built-in set. Hosts
// may add further entries sharing the same BuiltinFunc convention (spec
// §4.4, "Hosts may register additional built-ins").
func Register(reg map[string]*object.Builtin) {
	for _, b := range []*object.Builtin{
		{Name: "print", Fn: builtinPrint},
		{Name: "len", Fn: builtinLen},
		{Name: "type", Fn: builtinType},
		{Name: "str", Fn: builtinStr},
		{Name: "num", Fn: builtinNum},
		{Name: "push", Fn: builtinPush},
		{Name: "pop", Fn: builtinPop},
	} {
		reg[b.Name] = b
	}
}

func arityError(pos object.Position, name string, want, got int) *object.Error {
	return object.NewError(pos, "%s expects %d argument(s), got %d", name, want, got)
}

// builtinPrint emits the string form of its argument followed by a
// newline and returns Null (spec §4.4).
func builtinPrint(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError(pos, "print", 1, len(args))
	}
	rt.Write(args[0].String() + "\n")
	return object.NullValue
}

// builtinLen reports codepoint count for a String, element count for an
// Array; any other type is a runtime error (spec §4.4).
func builtinLen(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError(pos, "len", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Number{Val: float64(len([]rune(v.Val)))}
	case *object.Array:
		return &object.Number{Val: float64(len(v.Elements))}
	default:
		return object.NewError(pos, "len requires a string or array, got %s", v.Type())
	}
}

// builtinType returns the runtime tag name of its argument, one of the
// nine variants spec §4.4 lists.
func builtinType(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError(pos, "type", 1, len(args))
	}
	return &object.String{Val: string(args[0].Type())}
}

// builtinStr returns the canonical string form of its argument (spec
// §4.4), identical to Value.String() for every variant.
func builtinStr(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError(pos, "str", 1, len(args))
	}
	return &object.String{Val: args[0].String()}
}

// builtinNum converts String (parsed, error on malformed), Number
// (itself), Boolean (1/0), and Null (0) to a Number (spec §4.4).
func builtinNum(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError(pos, "num", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Number:
		return v
	case *object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return object.NewError(pos, "num: %q is not a valid number", v.Val)
		}
		return &object.Number{Val: f}
	case *object.Boolean:
		if v.Val {
			return &object.Number{Val: 1}
		}
		return &object.Number{Val: 0}
	case *object.Null:
		return &object.Number{Val: 0}
	default:
		return object.NewError(pos, "num does not accept %s", v.Type())
	}
}

// builtinPush appends an element to an array in place and returns the
// array (spec §4.4) — the array's identity is preserved, so every other
// binding sharing it observes the mutation (spec §8 Property 6).
func builtinPush(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 2 {
		return arityError(pos, "push", 2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError(pos, "push requires an array as its first argument, got %s", args[0].Type())
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr
}

// builtinPop removes and returns the last element; an empty array is a
// runtime error (spec §4.4).
func builtinPop(rt object.Runtime, pos object.Position, args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError(pos, "pop", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError(pos, "pop requires an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NewError(pos, "pop: array is empty")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last
}
