package object

// Runtime is the narrow surface a built-in needs back into the evaluator:
// enough to invoke a Nova callback value (e.g. a future `sort`-with-
// comparator built-in) without the object package importing eval, the
// same inversion go-mix's std.Runtime interface performs for the same
// reason.
type Runtime interface {
	Call(callee Value, args ...Value) Value
	// Write emits s to the host's configured output sink, backing the
	// `print` built-in without this package depending on io or os.
	Write(s string)
}

// BuiltinFunc is the calling convention every host function shares:
// arguments in, a Value out. A returned *Error signals failure exactly
// like any other evaluator-produced error.
type BuiltinFunc func(rt Runtime, pos Position, args ...Value) Value

// Builtin is a named host callable, invoked identically to a user Function
// (spec §3.1, §4.4).
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Type() Type   { return BUILTIN }
func (b *Builtin) String() string { return "<builtin " + b.Name + ">" }
