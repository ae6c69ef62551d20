package parser

import "github.com/nova-lang/nova/token"

// parseStatement dispatches on the leading keyword (spec §4.2), or falls
// through to an expression statement.
func (p *Parser) parseStatement() Stmt {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetStmt()
	case token.FN:
		// `fn NAME(...) BODY` is the FnDecl sugar; a bare `fn(...) BODY`
		// with no following identifier is an anonymous fn literal used in
		// expression position (e.g. as a block's tail expression).
		if p.peekIs(token.IDENT) {
			return p.parseFnDecl()
		}
		return p.parseExprStmt()
	case token.CLASS:
		return p.parseClassDecl()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.IF:
		return p.parseIfExpr()
	case token.WHILE:
		return p.parseWhileExpr()
	case token.FOR:
		return p.parseForExpr()
	case token.LBRACE:
		return p.parseBlockExpr()
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses `let NAME = expr ;`.
func (p *Parser) parseLetStmt() Stmt {
	tok := p.expect(token.LET)
	name := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	p.expect(token.SEMI)
	return &LetStmt{Token: tok, Name: name.Literal, Value: value}
}

// parseFnDecl parses `fn NAME(params) BODY`, lowered to `let NAME = fn(params) BODY`
// with self-binding enabled (spec §4.2, §9 recursive-function-scoping).
func (p *Parser) parseFnDecl() Stmt {
	tok := p.expect(token.FN)
	name := p.expect(token.IDENT)
	params := p.parseParamList()
	p.fnDepth++
	body := p.parseBlockExpr()
	p.fnDepth--
	fnLit := &FnLit{Token: tok, Params: params, Body: body}
	return &LetStmt{Token: tok, Name: name.Literal, Value: fnLit, SelfBind: true}
}

// parseReturnStmt parses `return expr? ;`, rejecting use outside a
// function body.
func (p *Parser) parseReturnStmt() Stmt {
	tok := p.expect(token.RETURN)
	if p.fnDepth == 0 {
		p.fail(tok.Pos, "'return' outside a function body")
	}
	var value Expr
	if !p.curIs(token.SEMI) {
		value = p.parseExpression()
	}
	p.expect(token.SEMI)
	return &ReturnStmt{Token: tok, Value: value}
}

// parseExprStmt parses `expr ;`. The trailing `;` is optional when the
// expression is the last statement of its enclosing block (it is
// immediately followed by `}` or end of input) — the tail-expression
// convenience spec §4.2 relies on for a block's "value of the last
// expression" rule (e.g. `fn fact(n) { ... else { n * fact(n - 1) } }`
// has no semicolon on that final expression).
func (p *Parser) parseExprStmt() Stmt {
	tok := p.cur
	value := p.parseExpression()
	if p.curIs(token.SEMI) {
		p.advance()
	} else if !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		p.fail(p.cur.Pos, "expected %s, got %s (%q)", token.SEMI, p.cur.Type, p.cur.Literal)
	}
	return &ExprStmt{Token: tok, Value: value}
}

// parseBlockExpr parses `{ statement* }`. It returns the concrete type (not
// Stmt or Expr) because BlockExpr, IfExpr, WhileExpr, and ForExpr all
// implement both interfaces via distinct unexported marker methods
// (stmtNode/exprNode); returning the concrete pointer lets callers use it as
// either without a static interface-to-interface conversion, which Go does
// not allow between two interface types whose method sets merely overlap.
func (p *Parser) parseBlockExpr() *BlockExpr {
	tok := p.expect(token.LBRACE)
	block := &BlockExpr{Token: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && !p.failed() {
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return block
}

// parseIfExpr parses `if (cond) stmtOrBlock (else stmtOrBlock)?`.
func (p *Parser) parseIfExpr() *IfExpr {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	then := p.parseStatement()
	var elseBranch Stmt
	if p.curIs(token.ELSE) {
		p.advance()
		elseBranch = p.parseStatement()
	}
	return &IfExpr{Token: tok, Cond: cond, Then: then, Else: elseBranch}
}

// parseWhileExpr parses `while (cond) body`.
func (p *Parser) parseWhileExpr() *WhileExpr {
	tok := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return &WhileExpr{Token: tok, Cond: cond, Body: body}
}

// parseForExpr parses `for IDENT in expr body`.
func (p *Parser) parseForExpr() *ForExpr {
	tok := p.expect(token.FOR)
	name := p.expect(token.IDENT)
	p.expect(token.IN)
	iter := p.parseExpression()
	body := p.parseStatement()
	return &ForExpr{Token: tok, Var: name.Literal, Iter: iter, Body: body}
}
