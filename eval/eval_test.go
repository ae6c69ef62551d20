package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nova-lang/nova/object"
)

// run evaluates src against a fresh Evaluator, capturing everything
// `print` writes, and returns (printed lines joined, final value).
func run(t *testing.T, src string) (string, object.Value) {
	t.Helper()
	var out strings.Builder
	e := New(func(s string) { out.WriteString(s) })
	result, err := e.Run(src)
	require.Nil(t, err)
	require.False(t, object.IsError(result), "unexpected evaluator error: %v", result)
	return out.String(), result
}

// --- S1-S6 end-to-end scenarios (spec §8) ---

func TestS1_ArithmeticAndPrecedence(t *testing.T) {
	out, _ := run(t, `print(1 + 2 * 3); print((1 + 2) * 3);`)
	require.Equal(t, "7\n9\n", out)
}

func TestS2_Closures(t *testing.T) {
	out, _ := run(t, `
fn mk(n) { fn() { n } }
let f = mk(42);
print(f());
`)
	require.Equal(t, "42\n", out)
}

func TestS3_Recursion(t *testing.T) {
	out, _ := run(t, `
fn fact(n) { if (n <= 1) { 1 } else { n * fact(n - 1) } }
print(fact(5));
`)
	require.Equal(t, "120\n", out)
}

func TestS4_ArraysAndMutation(t *testing.T) {
	out, _ := run(t, `
let a = [1, 2, 3];
let b = a;
push(b, 4);
print(len(a));
print(a[3]);
`)
	require.Equal(t, "4\n4\n", out)
}

func TestS5_StringConcatenationWithCoercion(t *testing.T) {
	out, _ := run(t, `print("x=" + 3); print("ok=" + true);`)
	require.Equal(t, "x=3\nok=true\n", out)
}

func TestS6_ClassesWithInheritanceAndSuper(t *testing.T) {
	out, _ := run(t, `
class A { fn hi() { "A" } }
class B extends A { fn hi() { super.hi() + "B" } }
print(new B().hi());
`)
	require.Equal(t, "AB\n", out)
}

// --- Testable Properties (spec §8) ---

func TestProperty_Arithmetic_DivideThenMultiplyRoundTrips(t *testing.T) {
	_, v := run(t, `10 / 4 * 4;`)
	n, ok := v.(*object.Number)
	require.True(t, ok)
	require.InDelta(t, 10.0, n.Val, 1e-9)
}

func TestProperty_StringAdditiveCoercion(t *testing.T) {
	_, v1 := run(t, `"x" + 3;`)
	_, v2 := run(t, `"x" + str(3);`)
	require.Equal(t, v1.String(), v2.String())
}

func TestProperty_LexicalClosureObservesOuterMutation(t *testing.T) {
	out, _ := run(t, `
fn mk() {
  let x = 1;
  let get = fn() { x };
  x = 99;
  get()
}
print(mk());
`)
	// the closure observes the live binding, not a snapshot, matching the
	// environment's "live handle to its defining scope" design (spec §9).
	require.Equal(t, "99\n", out)
}

func TestProperty_SharedArrayReference(t *testing.T) {
	out, _ := run(t, `
let a = [1, 2];
let b = a;
push(b, 3);
print(len(a));
`)
	require.Equal(t, "3\n", out)
}

func TestProperty_MethodOverrideAndSuper(t *testing.T) {
	out, _ := run(t, `
class A { m() { "base" } }
class B extends A { m() { "child:" + super.m() } }
print(new B().m());
`)
	require.Equal(t, "child:base\n", out)
}

func TestProperty_ConstructorChaining_InheritedWhenAbsent(t *testing.T) {
	out, _ := run(t, `
class A { constructor(v) { this.v = v; } }
class B extends A {}
print(new B(7).v);
`)
	require.Equal(t, "7\n", out)
}

func TestProperty_Truthiness_OnlyNullAndFalseAreFalsy(t *testing.T) {
	out, _ := run(t, `
print(if (0) { "truthy" } else { "falsy" });
print(if ("") { "truthy" } else { "falsy" });
print(if ([]) { "truthy" } else { "falsy" });
print(if (null) { "truthy" } else { "falsy" });
print(if (false) { "truthy" } else { "falsy" });
`)
	require.Equal(t, "truthy\ntruthy\ntruthy\nfalsy\nfalsy\n", out)
}

func TestProperty_Arity_TooFewOrTooManyIsRuntimeError(t *testing.T) {
	e := New(func(string) {})
	result, err := e.Run(`fn f(a, b) { a + b } f(1);`)
	require.Nil(t, err)
	require.True(t, object.IsError(result))

	e2 := New(func(string) {})
	result2, err2 := e2.Run(`fn g() { 1 } g(1);`)
	require.Nil(t, err2)
	require.True(t, object.IsError(result2))
}

func TestProperty_ZeroArityFunctionAcceptsNoArguments(t *testing.T) {
	out, _ := run(t, `fn f() { 1 } print(f());`)
	require.Equal(t, "1\n", out)
}

// --- Additional behavior coverage ---

func TestEval_DivisionByZeroIsRuntimeError(t *testing.T) {
	e := New(func(string) {})
	result, err := e.Run(`1 / 0;`)
	require.Nil(t, err)
	require.True(t, object.IsError(result))
}

func TestEval_IndexOutOfRangeIsRuntimeError(t *testing.T) {
	e := New(func(string) {})
	result, err := e.Run(`let a = [1,2]; a[5];`)
	require.Nil(t, err)
	require.True(t, object.IsError(result))
}

func TestEval_UndefinedIdentifierIsRuntimeError(t *testing.T) {
	e := New(func(string) {})
	result, err := e.Run(`nope;`)
	require.Nil(t, err)
	require.True(t, object.IsError(result))
}

func TestEval_PrivateMethodNotVisibleOutsideClass(t *testing.T) {
	e := New(func(string) {})
	result, err := e.Run(`
class C { private secret() { 1; } }
new C().secret();
`)
	require.Nil(t, err)
	require.True(t, object.IsError(result))
}

func TestEval_PrivateMethodVisibleFromSiblingMethod(t *testing.T) {
	out, _ := run(t, `
class C {
  private secret() { 42 }
  reveal() { this.secret() }
}
print(new C().reveal());
`)
	require.Equal(t, "42\n", out)
}

func TestEval_BoundMethodIsOrdinaryCallable(t *testing.T) {
	out, _ := run(t, `
class C { greet() { "hi" } }
let c = new C();
let g = c.greet;
print(g());
`)
	require.Equal(t, "hi\n", out)
}

func TestEval_StaticMethodCalledThroughClass(t *testing.T) {
	out, _ := run(t, `
class C { static make() { 5 } }
print(C.make());
`)
	require.Equal(t, "5\n", out)
}

func TestEval_ForOverString(t *testing.T) {
	out, _ := run(t, `for c in "ab" { print(c); }`)
	require.Equal(t, "a\nb\n", out)
}

func TestEval_ModuloSignMatchesDividend(t *testing.T) {
	_, v := run(t, `-7 % 2;`)
	n := v.(*object.Number)
	require.Equal(t, -1.0, n.Val)
}
