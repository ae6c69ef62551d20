// Package function holds the three Value kinds that need to reference
// both the AST (parser) and the lexical scope chain (environment):
// Function, Class, and Instance (spec §3.1). It sits above object,
// environment, and parser, mirroring go-mix's function package which
// depends on objects, scope, and parser for the same reason — avoiding a
// cycle where object values would otherwise need to import environment
// and vice versa.
package function

import (
	"strings"

	"github.com/nova-lang/nova/environment"
	"github.com/nova-lang/nova/object"
	"github.com/nova-lang/nova/parser"
)

// Function is a first-class Nova function: parameters, body AST, and the
// environment it closed over at creation (spec §3.1). Receiver is set
// when this Function is a "bound method" obtained from `instance.method`
// (spec §9 "Method binding") — nil for a plain function or an unbound
// class method as stored in a Class's method table.
type Function struct {
	Name          string // "" for an anonymous fn literal (including one bound with plain `let`)
	Params        []string
	Body          *parser.BlockExpr
	Env           *environment.Environment
	Receiver      *Instance // non-nil once bound to an instance
	DefiningClass *Class    // non-nil for class methods; backs super/private lookup
	Private       bool
	Static        bool
}

func (f *Function) Type() object.Type { return object.FUNCTION }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return "<fn " + name + ">"
}

// Bind returns a copy of f with Receiver set to recv, implementing spec
// §9's "Member expression on an instance yields a bound method": the
// result is an ordinary *Function, so `let g = obj.m; g();` behaves
// identically to `obj.m();`.
func (f *Function) Bind(recv *Instance) *Function {
	bound := *f
	bound.Receiver = recv
	return &bound
}

// Class is a Nova class value: name, optional parent, and its own method
// table (spec §3.1). Method tables are per-class, not per-instance (spec
// §9 "Class model"): Instance only carries field values and a link here.
type Class struct {
	Name    string
	Parent  *Class
	Methods map[string]*Function // keyed by name; includes "constructor" if defined
}

func (c *Class) Type() object.Type { return object.CLASS }
func (c *Class) String() string    { return "<class " + c.Name + ">" }

// FindMethod walks c then its parent chain, returning the first method
// with the given name and the class that defines it — the evaluator uses
// the defining class for the private-visibility check (spec §4.3.5);
// `super.method` starts from the executing method's DefiningClass instead.
func (c *Class) FindMethod(name string) (*Function, *Class) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, cur
		}
	}
	return nil, nil
}

// FindConstructor returns the nearest constructor in c's chain, per spec
// §8 Property 8 ("constructor chaining"): `new Child(...)` runs Child's
// own constructor if defined, else the nearest ancestor's.
func (c *Class) FindConstructor() (*Function, *Class) {
	return c.FindMethod("constructor")
}

// FindStatic walks c then its parent chain, returning the first method
// with the given name that is marked static; it backs member access on a
// Class value (spec §4.3.5 point 3). Member access on an instance goes
// through FindMethod, which does not filter on Static.
func (c *Class) FindStatic(name string) (*Function, *Class) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok && m.Static {
			return m, cur
		}
	}
	return nil, nil
}

// Instance is a Nova object: a mapping from field name to value plus a
// link to its class (spec §3.1). Instances have reference semantics.
type Instance struct {
	Class      *Class
	Fields     map[string]object.Value
	fieldOrder []string // insertion order, for a stable String() rendering
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]object.Value)}
}

func (o *Instance) Type() object.Type { return object.OBJECT }

func (o *Instance) Get(name string) (object.Value, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

func (o *Instance) Set(name string, val object.Value) {
	if _, exists := o.Fields[name]; !exists {
		o.fieldOrder = append(o.fieldOrder, name)
	}
	o.Fields[name] = val
}

func (o *Instance) String() string {
	parts := make([]string, len(o.fieldOrder))
	for i, k := range o.fieldOrder {
		parts[i] = k + ": " + o.Fields[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
