package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nova-lang/nova/token"
)

func TestParse_LetAndArithmeticPrecedence(t *testing.T) {
	prog, err := Parse("let x = 1 + 2 * 3;")
	require.Nil(t, err)
	require.Len(t, prog.Statements, 1)

	let, ok := prog.Statements[0].(*LetStmt)
	require.True(t, ok)
	require.Equal(t, "x", let.Name)

	bin, ok := let.Value.(*Binary)
	require.True(t, ok)
	require.Equal(t, token.PLUS, bin.Op)

	// right side must be the tighter-binding 2 * 3, proving precedence
	// climbing grouped multiplication before the outer addition.
	rightBin, ok := bin.Right.(*Binary)
	require.True(t, ok)
	require.Equal(t, token.STAR, rightBin.Op)
}

func TestParse_ParenthesesOverridePrecedence(t *testing.T) {
	prog, err := Parse("let x = (1 + 2) * 3;")
	require.Nil(t, err)
	let := prog.Statements[0].(*LetStmt)
	bin := let.Value.(*Binary)
	require.Equal(t, token.STAR, bin.Op)
	_, ok := bin.Left.(*Binary)
	require.True(t, ok)
}

func TestParse_FnDeclLowersToSelfBindingLet(t *testing.T) {
	prog, err := Parse("fn add(a, b) { a + b }")
	require.Nil(t, err)
	let, ok := prog.Statements[0].(*LetStmt)
	require.True(t, ok)
	require.Equal(t, "add", let.Name)
	require.True(t, let.SelfBind)
	fnLit, ok := let.Value.(*FnLit)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, fnLit.Params)
}

func TestParse_ReturnOutsideFunctionIsSyntaxError(t *testing.T) {
	_, err := Parse("return 1;")
	require.NotNil(t, err)
}

func TestParse_ReturnInsideFunctionIsOK(t *testing.T) {
	_, err := Parse("fn f() { return 1; }")
	require.Nil(t, err)
}

func TestParse_ClassWithInheritanceAndModifiers(t *testing.T) {
	src := `
class Animal {
  constructor(name) { this.name = name; }
  public speak() { "..." }
  private helper() { 1; }
  static make() { new Animal("x") }
}
class Dog extends Animal {
  speak() { super.speak() + "!" }
}
`
	prog, err := Parse(src)
	require.Nil(t, err)
	require.Len(t, prog.Statements, 2)

	animal, ok := prog.Statements[0].(*ClassDecl)
	require.True(t, ok)
	require.Equal(t, "Animal", animal.Name)
	require.Equal(t, "", animal.Parent)
	require.Len(t, animal.Methods, 4)

	var ctor, speak, helper, makeFn *MethodDef
	for _, m := range animal.Methods {
		switch m.Name {
		case "constructor":
			ctor = m
		case "speak":
			speak = m
		case "helper":
			helper = m
		case "make":
			makeFn = m
		}
	}
	require.NotNil(t, ctor)
	require.True(t, ctor.IsCtor)
	require.NotNil(t, speak)
	require.False(t, speak.Private)
	require.NotNil(t, helper)
	require.True(t, helper.Private)
	require.NotNil(t, makeFn)
	require.True(t, makeFn.Static)

	dog, ok := prog.Statements[1].(*ClassDecl)
	require.True(t, ok)
	require.Equal(t, "Animal", dog.Parent)
}

func TestParse_DuplicateMemberIsSyntaxError(t *testing.T) {
	_, err := Parse(`class C { m() { 1; } m() { 2; } }`)
	require.NotNil(t, err)
}

func TestParse_AssignmentTargetMustBeLValue(t *testing.T) {
	_, err := Parse("1 = 2;")
	require.NotNil(t, err)
}

func TestParse_IndexAndMemberAndCallChain(t *testing.T) {
	prog, err := Parse("a.b[0](1, 2);")
	require.Nil(t, err)
	stmt := prog.Statements[0].(*ExprStmt)
	call, ok := stmt.Value.(*Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)

	idx, ok := call.Callee.(*IndexExpr)
	require.True(t, ok)

	member, ok := idx.Obj.(*MemberExpr)
	require.True(t, ok)
	require.Equal(t, "b", member.Name)
}

func TestParse_IfWhileForAsExpressions(t *testing.T) {
	_, err := Parse(`
let x = if (true) { 1 } else { 2 };
while (false) { 1; }
for v in [1, 2, 3] { v; }
`)
	require.Nil(t, err)
}

func TestParse_NewAndSuper(t *testing.T) {
	prog, err := Parse(`
class A { constructor() { 1; } }
class B extends A {
  constructor() { super(); }
  m() { super.missing(); }
}
new B();
`)
	require.Nil(t, err)
	require.Len(t, prog.Statements, 3)
}

func TestParse_UnexpectedTokenIsSyntaxError(t *testing.T) {
	_, err := Parse("let x = ;")
	require.NotNil(t, err)
}
