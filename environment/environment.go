// Package environment implements Nova's lexical scope chain (spec §3.2).
// It depends on object (for the Value type bindings hold) but nothing
// else, so that the function package (Function/Class/Instance, which
// capture *Environment) can sit above both without a cycle — the same
// layering go-mix uses for scope.Scope depending on objects.GoMixObject.
package environment

import "github.com/nova-lang/nova/object"

// Environment is a mapping from identifier to value plus an optional link
// to an enclosing scope (spec §3.2). Closures hold a live pointer to the
// Environment that was current at their creation, so an Environment must
// survive its creating call frame — it is an ordinary heap object, never
// stack-allocated or pooled.
type Environment struct {
	vars   map[string]object.Value
	parent *Environment
}

// New creates a fresh scope; parent may be nil for the top-level scope.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), parent: parent}
}

// Get walks the chain from innermost outward, matching spec §3.2's name
// resolution rule.
func (e *Environment) Get(name string) (object.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define introduces or shadows a binding in this scope only — `let`
// always targets the current scope regardless of whether an outer scope
// already defines the name (spec §3.2, §4.3.1).
func (e *Environment) Define(name string, val object.Value) {
	e.vars[name] = val
}

// Assign mutates the innermost scope in the chain that already defines
// name, returning false if no scope defines it (spec §4.3.2's Assign rule:
// assigning to an undefined name is a runtime error, left for the caller
// to report with source position).
func (e *Environment) Assign(name string, val object.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = val
			return true
		}
	}
	return false
}

// Parent exposes the enclosing scope (nil for the top-level scope). The
// evaluator does not call it: `return` placement is checked by the
// parser, and `this`/`super` checks use the evaluator's frame stack.
func (e *Environment) Parent() *Environment { return e.parent }
