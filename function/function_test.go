package function

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nova-lang/nova/object"
)

func TestClass_FindMethod_WalksParentChain(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"greet": {Name: "greet", DefiningClass: nil},
	}}
	base.Methods["greet"].DefiningClass = base

	child := &Class{Name: "Child", Parent: base, Methods: map[string]*Function{}}

	m, definer := child.FindMethod("greet")
	require.NotNil(t, m)
	require.Same(t, base, definer)
}

func TestClass_FindMethod_ChildOverridesParent(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{}}
	base.Methods["m"] = &Function{Name: "m", DefiningClass: base}

	child := &Class{Name: "Child", Parent: base, Methods: map[string]*Function{}}
	child.Methods["m"] = &Function{Name: "m", DefiningClass: child}

	m, definer := child.FindMethod("m")
	require.Same(t, child.Methods["m"], m)
	require.Same(t, child, definer)
}

func TestClass_FindStatic_OnlyMatchesStaticMethods(t *testing.T) {
	c := &Class{Name: "C", Methods: map[string]*Function{
		"inst":  {Name: "inst", Static: false},
		"stat":  {Name: "stat", Static: true},
	}}
	m, _ := c.FindStatic("stat")
	require.NotNil(t, m)
	m2, _ := c.FindStatic("inst")
	require.Nil(t, m2)
}

func TestFunction_Bind_PreservesDefinitionButSetsReceiver(t *testing.T) {
	class := &Class{Name: "C"}
	fn := &Function{Name: "m", DefiningClass: class}
	inst := NewInstance(class)

	bound := fn.Bind(inst)
	require.Same(t, inst, bound.Receiver)
	require.Nil(t, fn.Receiver, "binding must not mutate the original method")
	require.Equal(t, class, bound.DefiningClass)
}

func TestInstance_SetAndGet(t *testing.T) {
	class := &Class{Name: "Point"}
	inst := NewInstance(class)
	inst.Set("x", &object.Number{Val: 1})
	inst.Set("y", &object.Number{Val: 2})

	v, ok := inst.Get("x")
	require.True(t, ok)
	require.Equal(t, "1", v.String())

	_, ok = inst.Get("missing")
	require.False(t, ok)
}

func TestInstance_String_PreservesInsertionOrder(t *testing.T) {
	class := &Class{Name: "Point"}
	inst := NewInstance(class)
	inst.Set("b", &object.Number{Val: 2})
	inst.Set("a", &object.Number{Val: 1})
	require.Equal(t, "{b: 2, a: 1}", inst.String())
}

func TestClass_FindConstructor_Inherited(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"constructor": {Name: "constructor"},
	}}
	child := &Class{Name: "Child", Parent: base, Methods: map[string]*Function{}}

	ctor, definer := child.FindConstructor()
	require.NotNil(t, ctor)
	require.Same(t, base, definer)
}
