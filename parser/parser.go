package parser

import (
	"fmt"

	"github.com/nova-lang/nova/lexer"
	"github.com/nova-lang/nova/token"
)

// ParseError is a parse-phase failure (spec §7): a grammar violation or
// structural constraint (Phase "syntax"), or a lexical error surfaced
// through the lexer (Phase "lexical"), with position. The parser does not
// attempt error recovery (spec §4.2): the first error aborts parsing.
type ParseError struct {
	Message string
	Pos     token.Position
	Phase   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %s error: %s", e.Pos.String(), e.Phase, e.Message)
}

// Parser is a recursive-descent parser with Pratt-style precedence
// climbing for binary expressions (spec §4.2), grounded in go-mix's
// parser.Parser but with the unary/binary function-table indirection
// collapsed into plain recursive methods per precedence level — go-mix's
// table is earning its keep across a much larger operator set (bitwise,
// compound assignment, ranges) that Nova does not have.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	err *ParseError // first error encountered; parsing stops here

	// fnDepth tracks lexical nesting inside function/method bodies, so
	// `return` outside a function can be rejected at parse time (spec
	// §4.2: "return outside a function body is a parse error").
	fnDepth int
}

// New constructs a Parser over src, priming the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	tok, lexErr := p.lex.NextToken()
	if lexErr != nil {
		if p.err == nil {
			p.err = &ParseError{Message: lexErr.Message, Pos: lexErr.Pos, Phase: "lexical"}
		}
		p.peek = token.New(token.EOF, "", lexErr.Pos)
		return
	}
	p.peek = tok
}

func (p *Parser) fail(pos token.Position, format string, args ...interface{}) {
	if p.err == nil {
		p.err = &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos, Phase: "syntax"}
	}
}

func (p *Parser) failed() bool { return p.err != nil }

// expect advances past cur if it matches typ, else records an error and
// leaves the cursor in place.
func (p *Parser) expect(typ token.Type) token.Token {
	tok := p.cur
	if p.cur.Type != typ {
		p.fail(p.cur.Pos, "expected %s, got %s (%q)", typ, p.cur.Type, p.cur.Literal)
		return tok
	}
	p.advance()
	return tok
}

func (p *Parser) curIs(typ token.Type) bool  { return p.cur.Type == typ }
func (p *Parser) peekIs(typ token.Type) bool { return p.peek.Type == typ }

// Parse parses the whole token stream into a Program, or returns the
// first lexical or syntax error encountered (spec §4.2: no recovery).
func Parse(src string) (*Program, *ParseError) {
	p := New(src)
	prog := p.parseProgram()
	if p.failed() {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) parseProgram() *Program {
	prog := &Program{}
	for !p.curIs(token.EOF) && !p.failed() {
		stmt := p.parseStatement()
		if p.failed() {
			break
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}

// --- Pratt expression parsing ---

func (p *Parser) parseExpression() Expr {
	return p.parseAssign()
}

func (p *Parser) parseAssign() Expr {
	left := p.parseOr()
	if p.failed() {
		return left
	}
	if p.curIs(token.ASSIGN) {
		tok := p.cur
		p.advance()
		switch left.(type) {
		case *Identifier, *IndexExpr, *MemberExpr:
		default:
			p.fail(tok.Pos, "invalid assignment target")
			return left
		}
		value := p.parseAssign()
		return &Assign{Token: tok, Target: left, Value: value}
	}
	return left
}

func (p *Parser) parseOr() Expr {
	left := p.parseAnd()
	for !p.failed() && p.curIs(token.OR) {
		tok := p.cur
		p.advance()
		right := p.parseAnd()
		left = &Logical{Token: tok, Op: token.OR, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() Expr {
	left := p.parseEquality()
	for !p.failed() && p.curIs(token.AND) {
		tok := p.cur
		p.advance()
		right := p.parseEquality()
		left = &Logical{Token: tok, Op: token.AND, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() Expr {
	left := p.parseComparison()
	for !p.failed() && (p.curIs(token.EQ) || p.curIs(token.NEQ)) {
		tok := p.cur
		op := tok.Type
		p.advance()
		right := p.parseComparison()
		left = &Binary{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() Expr {
	left := p.parseAdd()
	for !p.failed() && (p.curIs(token.LT) || p.curIs(token.GT) || p.curIs(token.LE) || p.curIs(token.GE)) {
		tok := p.cur
		op := tok.Type
		p.advance()
		right := p.parseAdd()
		left = &Binary{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdd() Expr {
	left := p.parseMul()
	for !p.failed() && (p.curIs(token.PLUS) || p.curIs(token.MINUS)) {
		tok := p.cur
		op := tok.Type
		p.advance()
		right := p.parseMul()
		left = &Binary{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMul() Expr {
	left := p.parseUnary()
	for !p.failed() && (p.curIs(token.STAR) || p.curIs(token.SLASH) || p.curIs(token.MOD)) {
		tok := p.cur
		op := tok.Type
		p.advance()
		right := p.parseUnary()
		left = &Binary{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() Expr {
	if p.curIs(token.MINUS) || p.curIs(token.BANG) {
		tok := p.cur
		op := tok.Type
		p.advance()
		operand := p.parseUnary()
		return &Unary{Token: tok, Op: op, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() Expr {
	expr := p.parsePrimary()
	for !p.failed() {
		switch {
		case p.curIs(token.LPAREN):
			expr = p.parseCall(expr)
		case p.curIs(token.LBRACKET):
			expr = p.parseIndex(expr)
		case p.curIs(token.DOT):
			expr = p.parseMember(expr)
		default:
			return expr
		}
	}
	return expr
}

func (p *Parser) parseCall(callee Expr) Expr {
	tok := p.expect(token.LPAREN)
	args := p.parseArgs()
	p.expect(token.RPAREN)
	return &Call{Token: tok, Callee: callee, Args: args}
}

func (p *Parser) parseIndex(obj Expr) Expr {
	tok := p.expect(token.LBRACKET)
	idx := p.parseExpression()
	p.expect(token.RBRACKET)
	return &IndexExpr{Token: tok, Obj: obj, Index: idx}
}

func (p *Parser) parseMember(obj Expr) Expr {
	tok := p.expect(token.DOT)
	name := p.expect(token.IDENT)
	return &MemberExpr{Token: tok, Obj: obj, Name: name.Literal}
}

func (p *Parser) parseArgs() []Expr {
	var args []Expr
	if p.curIs(token.RPAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.curIs(token.COMMA) && !p.failed() {
		p.advance()
		args = append(args, p.parseExpression())
	}
	return args
}

func (p *Parser) parsePrimary() Expr {
	tok := p.cur
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		var v float64
		if _, err := fmt.Sscanf(tok.Literal, "%g", &v); err != nil {
			p.fail(tok.Pos, "invalid number literal %q", tok.Literal)
		}
		return &NumberLit{Token: tok, Value: v}
	case token.STRING:
		p.advance()
		return &StringLit{Token: tok, Value: tok.Literal}
	case token.TRUE:
		p.advance()
		return &BoolLit{Token: tok, Value: true}
	case token.FALSE:
		p.advance()
		return &BoolLit{Token: tok, Value: false}
	case token.NULL:
		p.advance()
		return &NullLit{Token: tok}
	case token.THIS:
		p.advance()
		return &This{Token: tok}
	case token.SUPER:
		return p.parseSuper()
	case token.NEW:
		return p.parseNew()
	case token.IDENT:
		p.advance()
		return &Identifier{Token: tok, Name: tok.Literal}
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.FN:
		return p.parseFnLit()
	case token.IF:
		return p.parseIfExpr()
	case token.WHILE:
		return p.parseWhileExpr()
	case token.FOR:
		return p.parseForExpr()
	case token.LBRACE:
		return p.parseBlockExpr()
	default:
		p.fail(tok.Pos, "unexpected token %s (%q)", tok.Type, tok.Literal)
		p.advance()
		return &NullLit{Token: tok}
	}
}

func (p *Parser) parseArrayLit() Expr {
	tok := p.expect(token.LBRACKET)
	elems := p.parseArrayArgs()
	p.expect(token.RBRACKET)
	return &ArrayLit{Token: tok, Elements: elems}
}

func (p *Parser) parseArrayArgs() []Expr {
	var elems []Expr
	if p.curIs(token.RBRACKET) {
		return elems
	}
	elems = append(elems, p.parseExpression())
	for p.curIs(token.COMMA) && !p.failed() {
		p.advance()
		elems = append(elems, p.parseExpression())
	}
	return elems
}

func (p *Parser) parseSuper() Expr {
	tok := p.expect(token.SUPER)
	if p.curIs(token.LPAREN) {
		p.advance()
		args := p.parseArgs()
		p.expect(token.RPAREN)
		return &SuperCall{Token: tok, Method: "", Args: args}
	}
	p.expect(token.DOT)
	name := p.expect(token.IDENT)
	p.expect(token.LPAREN)
	args := p.parseArgs()
	p.expect(token.RPAREN)
	return &SuperCall{Token: tok, Method: name.Literal, Args: args}
}

func (p *Parser) parseNew() Expr {
	tok := p.expect(token.NEW)
	name := p.expect(token.IDENT)
	var args []Expr
	if p.curIs(token.LPAREN) {
		p.advance()
		args = p.parseArgs()
		p.expect(token.RPAREN)
	}
	return &NewExpr{Token: tok, ClassName: name.Literal, Args: args}
}

func (p *Parser) parseFnLit() Expr {
	tok := p.expect(token.FN)
	params := p.parseParamList()
	p.fnDepth++
	body := p.parseBlockExpr()
	p.fnDepth--
	return &FnLit{Token: tok, Params: params, Body: body}
}

func (p *Parser) parseParamList() []string {
	p.expect(token.LPAREN)
	var params []string
	if !p.curIs(token.RPAREN) {
		params = append(params, p.expect(token.IDENT).Literal)
		for p.curIs(token.COMMA) && !p.failed() {
			p.advance()
			params = append(params, p.expect(token.IDENT).Literal)
		}
	}
	p.expect(token.RPAREN)
	return params
}
