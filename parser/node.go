// Package parser turns a Nova token stream into an AST (spec §3.3) via
// recursive descent with Pratt-style precedence climbing (spec §4.2).
//
// go-mix's parser/node.go builds a full double-dispatch Visitor (a
// NodeVisitor interface with one Visit* method per node type, ~25 in
// all). Nova trades that for a lighter Node interface plus type-switch
// evaluation in the eval package: the visitor pattern earns its keep when
// many independent passes walk the same tree (go-mix ships a
// PrintingVisitor alongside the evaluator), but Nova has exactly one
// consumer of the AST (the evaluator), so a type switch is the simpler
// idiom for that shape and is recorded as a conscious simplification
// rather than an oversight.
package parser

import "github.com/nova-lang/nova/token"

// Node is implemented by every AST node. Pos anchors diagnostics to
// source text, per spec §3.3 "every node carries source position".
type Node interface {
	Pos() token.Position
}

// Stmt and Expr are marker interfaces distinguishing the two node
// families. Several forms (If, While, For, Block) implement both, since
// spec §4.2 makes them simultaneously statements and expressions whose
// value is the last expression evaluated, or Null.
type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed source file: a flat list of top-level
// statements (spec §6.1 `program := statement*`).
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{}
	}
	return p.Statements[0].Pos()
}

// --- Statements ---

// LetStmt is `let NAME = expr ;`.
type LetStmt struct {
	Token token.Token
	Name  string
	Value Expr
	// SelfBind marks a LetStmt synthesized from `fn NAME(...) BODY` sugar
	// (spec §4.2), so the evaluator can bind NAME in the defining scope
	// before the Function value closes over it (spec §9, "Open question —
	// recursive function scoping"). A plain `let f = fn() {...};` leaves
	// this false: only the FnDecl sugar form gets self-binding.
	SelfBind bool
}

func (s *LetStmt) Pos() token.Position { return s.Token.Pos }
func (s *LetStmt) stmtNode()           {}

// ClassDecl is `class NAME (extends SUPER)? { member* }`.
type ClassDecl struct {
	Token   token.Token
	Name    string
	Parent  string // "" if no `extends` clause
	Methods []*MethodDef
}

func (c *ClassDecl) Pos() token.Position { return c.Token.Pos }
func (c *ClassDecl) stmtNode()           {}

// MethodDef is a single class member: `constructor` or a named method,
// with visibility and static-ness (spec §3.3 "Class member node").
type MethodDef struct {
	Token      token.Token
	Name       string // "constructor" for the distinguished initializer
	Params     []string
	Body       *BlockExpr
	Private    bool
	Static     bool
	IsCtor     bool
}

func (m *MethodDef) Pos() token.Position { return m.Token.Pos }

// ReturnStmt is `return expr? ;`. The parser rejects this outside a
// function body (spec §4.2 "return outside a function is a parse error").
type ReturnStmt struct {
	Token token.Token
	Value Expr // nil if bare `return ;`
}

func (r *ReturnStmt) Pos() token.Position { return r.Token.Pos }
func (r *ReturnStmt) stmtNode()           {}

// ExprStmt is an expression statement, terminated with `;` (optional
// before `}` or end of input). Its value is the statement's value, so a
// block or program ending in one yields that expression's value.
type ExprStmt struct {
	Token token.Token
	Value Expr
}

func (e *ExprStmt) Pos() token.Position { return e.Token.Pos }
func (e *ExprStmt) stmtNode()           {}

// --- Expressions that are also statements: If, While, For, Block ---

// BlockExpr is `{ statement* }`; its value is its last statement's value
// (Null for an empty block or a trailing let/class declaration) (spec §4.2).
type BlockExpr struct {
	Token      token.Token
	Statements []Stmt
}

func (b *BlockExpr) Pos() token.Position { return b.Token.Pos }
func (b *BlockExpr) stmtNode()           {}
func (b *BlockExpr) exprNode()           {}

// IfExpr is `if (cond) then (else else)?`; both branches are
// statement-or-block forms per the grammar's `stmtOrBlock`.
type IfExpr struct {
	Token     token.Token
	Cond      Expr
	Then      Stmt
	Else      Stmt // nil if no else clause
}

func (i *IfExpr) Pos() token.Position { return i.Token.Pos }
func (i *IfExpr) stmtNode()           {}
func (i *IfExpr) exprNode()           {}

// WhileExpr is `while (cond) body`; always evaluates to Null (spec §4.3.4).
type WhileExpr struct {
	Token token.Token
	Cond  Expr
	Body  Stmt
}

func (w *WhileExpr) Pos() token.Position { return w.Token.Pos }
func (w *WhileExpr) stmtNode()           {}
func (w *WhileExpr) exprNode()           {}

// ForExpr is `for IDENT in expr body`; always evaluates to Null.
type ForExpr struct {
	Token token.Token
	Var   string
	Iter  Expr
	Body  Stmt
}

func (f *ForExpr) Pos() token.Position { return f.Token.Pos }
func (f *ForExpr) stmtNode()           {}
func (f *ForExpr) exprNode()           {}

// --- Literal and primary expressions ---

type NumberLit struct {
	Token token.Token
	Value float64
}

func (n *NumberLit) Pos() token.Position { return n.Token.Pos }
func (n *NumberLit) exprNode()           {}

type StringLit struct {
	Token token.Token
	Value string
}

func (s *StringLit) Pos() token.Position { return s.Token.Pos }
func (s *StringLit) exprNode()           {}

type BoolLit struct {
	Token token.Token
	Value bool
}

func (b *BoolLit) Pos() token.Position { return b.Token.Pos }
func (b *BoolLit) exprNode()           {}

type NullLit struct {
	Token token.Token
}

func (n *NullLit) Pos() token.Position { return n.Token.Pos }
func (n *NullLit) exprNode()           {}

// ArrayLit is `[ args? ]`; elements are evaluated left-to-right (spec §5).
type ArrayLit struct {
	Token    token.Token
	Elements []Expr
}

func (a *ArrayLit) Pos() token.Position { return a.Token.Pos }
func (a *ArrayLit) exprNode()           {}

type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) Pos() token.Position { return i.Token.Pos }
func (i *Identifier) exprNode()           {}

// Assign is `target = expr`; Target is validated post-parse to be an
// Identifier, IndexExpr, or MemberExpr (spec §4.3.2).
type Assign struct {
	Token  token.Token
	Target Expr
	Value  Expr
}

func (a *Assign) Pos() token.Position { return a.Token.Pos }
func (a *Assign) exprNode()           {}

// Binary covers + - * / % == != < > <= >=.
type Binary struct {
	Token token.Token
	Op    token.Type
	Left  Expr
	Right Expr
}

func (b *Binary) Pos() token.Position { return b.Token.Pos }
func (b *Binary) exprNode()           {}

// Logical covers `and`/`or`, evaluated separately from Binary so the
// evaluator can short-circuit (spec §4.3.2).
type Logical struct {
	Token token.Token
	Op    token.Type
	Left  Expr
	Right Expr
}

func (l *Logical) Pos() token.Position { return l.Token.Pos }
func (l *Logical) exprNode()           {}

// Unary covers prefix `-` and `!`.
type Unary struct {
	Token    token.Token
	Op       token.Type
	Operand  Expr
}

func (u *Unary) Pos() token.Position { return u.Token.Pos }
func (u *Unary) exprNode()           {}

// Call is `callee ( args? )`.
type Call struct {
	Token  token.Token
	Callee Expr
	Args   []Expr
}

func (c *Call) Pos() token.Position { return c.Token.Pos }
func (c *Call) exprNode()           {}

// IndexExpr is `obj [ idx ]`.
type IndexExpr struct {
	Token token.Token
	Obj   Expr
	Index Expr
}

func (ix *IndexExpr) Pos() token.Position { return ix.Token.Pos }
func (ix *IndexExpr) exprNode()           {}

// MemberExpr is `obj . name`.
type MemberExpr struct {
	Token token.Token
	Obj   Expr
	Name  string
}

func (m *MemberExpr) Pos() token.Position { return m.Token.Pos }
func (m *MemberExpr) exprNode()           {}

// NewExpr is `new IDENT ( args? )`.
type NewExpr struct {
	Token     token.Token
	ClassName string
	Args      []Expr
}

func (n *NewExpr) Pos() token.Position { return n.Token.Pos }
func (n *NewExpr) exprNode()           {}

// This is the `this` keyword; valid only inside a method body (checked by
// the evaluator, per spec §4.3.2).
type This struct {
	Token token.Token
}

func (t *This) Pos() token.Position { return t.Token.Pos }
func (t *This) exprNode()           {}

// SuperCall is `super.METHOD(args)` or the bare `super(args)` constructor
// form (spec §4.2, §4.3.2). Method == "" marks the constructor form.
type SuperCall struct {
	Token  token.Token
	Method string
	Args   []Expr
}

func (s *SuperCall) Pos() token.Position { return s.Token.Pos }
func (s *SuperCall) exprNode()           {}

// FnLit is an anonymous `fn (params) body` expression. Unlike the FnDecl
// sugar (lowered to a self-binding LetStmt at parse time), FnLit never
// self-binds.
type FnLit struct {
	Token  token.Token
	Params []string
	Body   *BlockExpr
}

func (f *FnLit) Pos() token.Position { return f.Token.Pos }
func (f *FnLit) exprNode()           {}
