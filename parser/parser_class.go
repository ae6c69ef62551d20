package parser

import "github.com/nova-lang/nova/token"

// parseClassDecl parses `class NAME (extends SUPER)? { member* }`
// (spec §4.2, §6.1).
func (p *Parser) parseClassDecl() Stmt {
	tok := p.expect(token.CLASS)
	name := p.expect(token.IDENT)

	var parent string
	if p.curIs(token.EXTENDS) {
		p.advance()
		parent = p.expect(token.IDENT).Literal
	}

	p.expect(token.LBRACE)
	decl := &ClassDecl{Token: tok, Name: name.Literal, Parent: parent}
	seen := make(map[string]bool)
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && !p.failed() {
		m := p.parseMethodDef()
		if seen[m.Name] {
			p.fail(m.Pos(), "duplicate member %q in class %s", m.Name, name.Literal)
			break
		}
		seen[m.Name] = true
		decl.Methods = append(decl.Methods, m)
	}
	p.expect(token.RBRACE)
	return decl
}

// parseMethodDef parses one `member` production: optional modifiers, then
// either `constructor` or a named method, params, and a block body.
func (p *Parser) parseMethodDef() *MethodDef {
	m := &MethodDef{Token: p.cur}
	for {
		switch p.cur.Type {
		case token.STATIC:
			m.Static = true
			p.advance()
			continue
		case token.PUBLIC:
			m.Private = false
			p.advance()
			continue
		case token.PRIVATE:
			m.Private = true
			p.advance()
			continue
		}
		break
	}

	// Method bodies are conventionally written with a leading `fn`, same
	// as a top-level function declaration (spec §8 scenario S6); the
	// keyword carries no meaning here (member syntax has no separate
	// "anonymous" form to disambiguate from) so it is simply skipped when
	// present.
	if p.curIs(token.FN) {
		p.advance()
	}

	if p.curIs(token.CONSTRUCTOR) {
		m.Name = "constructor"
		m.IsCtor = true
		p.advance()
	} else {
		name := p.expect(token.IDENT)
		m.Name = name.Literal
	}

	m.Params = p.parseParamList()
	p.fnDepth++
	m.Body = p.parseBlockExpr()
	p.fnDepth--
	return m
}
