package parser

import (
	"strconv"

	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/token"
)

// Precedence ladder, loosest binding first:
// or → and → equality → comparison → addition → multiplication → unary →
// call/index → primary.

func (p *Parser) expression() ast.Expr {
	return p.or()
}

func (p *Parser) or() ast.Expr {
	left := p.and()
	for p.peek().Type == token.PIPE && !p.failed() {
		op := p.next()
		right := p.and()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) and() ast.Expr {
	left := p.equality()
	for p.peek().Type == token.AMPERSAND && !p.failed() {
		op := p.next()
		right := p.equality()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) equality() ast.Expr {
	left := p.comparison()
	for (p.peek().Type == token.EQ || p.peek().Type == token.NOT_EQ) && !p.failed() {
		op := p.next()
		right := p.comparison()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) comparison() ast.Expr {
	left := p.addition()
	for !p.failed() {
		switch p.peek().Type {
		case token.LT, token.LTE, token.GT, token.GTE:
			op := p.next()
			right := p.addition()
			left = &ast.Binary{Pos: p.pos(op), Op: op.Type, Left: left, Right: right}
		default:
			return left
		}
	}
	return left
}

func (p *Parser) addition() ast.Expr {
	left := p.multiplication()
	for (p.peek().Type == token.PLUS || p.peek().Type == token.MINUS) && !p.failed() {
		op := p.next()
		right := p.multiplication()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) multiplication() ast.Expr {
	left := p.unary()
	for !p.failed() {
		switch p.peek().Type {
		case token.ASTERISK, token.SLASH, token.PERCENT:
			op := p.next()
			right := p.unary()
			left = &ast.Binary{Pos: p.pos(op), Op: op.Type, Left: left, Right: right}
		default:
			return left
		}
	}
	return left
}

func (p *Parser) unary() ast.Expr {
	if p.peek().Type == token.BANG || p.peek().Type == token.MINUS {
		op := p.next()
		right := p.unary()
		return &ast.Unary{Pos: p.pos(op), Op: op.Type, Right: right}
	}
	return p.callIndex()
}

func (p *Parser) callIndex() ast.Expr {
	expr := p.primary()
	for !p.failed() {
		switch p.peek().Type {
		case token.LPAREN:
			lparen := p.next()
			var args []ast.Expr
			for p.peek().Type != token.RPAREN && !p.failed() {
				args = append(args, p.expression())
				if p.peek().Type == token.COMMA {
					p.next()
					continue
				}
				break
			}
			if _, ok := p.expect(token.RPAREN, "')'"); !ok {
				return expr
			}
			expr = &ast.Call{Pos: p.pos(lparen), Callee: expr, Args: args}
		case token.LBRACKET:
			lbracket := p.next()
			idx := p.expression()
			if _, ok := p.expect(token.RBRACKET, "']'"); !ok {
				return expr
			}
			expr = &ast.Index{Pos: p.pos(lbracket), Target: expr, Idx: idx}
		default:
			return expr
		}
	}
	return expr
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case token.NUM:
		p.next()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(tok, "malformed number %q", tok.Lexeme)
			return &ast.NilLit{Pos: p.pos(tok)}
		}
		return &ast.Num{Pos: p.pos(tok), Value: value}
	case token.STRING:
		p.next()
		return &ast.Str{Pos: p.pos(tok), Value: tok.Literal}
	case token.TRUE:
		p.next()
		return &ast.Boolean{Pos: p.pos(tok), Value: true}
	case token.FALSE:
		p.next()
		return &ast.Boolean{Pos: p.pos(tok), Value: false}
	case token.IDENT:
		p.next()
		return &ast.Var{Pos: p.pos(tok), Name: tok.Lexeme}
	case token.LPAREN:
		p.next()
		expr := p.expression()
		if _, ok := p.expect(token.RPAREN, "')'"); !ok {
			return expr
		}
		return &ast.Group{Pos: p.pos(tok), Expr: expr}
	case token.LBRACKET:
		return p.listLiteral()
	case token.AT:
		return p.recordLiteral()
	default:
		p.errorf(tok, "unexpected token %q", tok.Lexeme)
		p.next()
		return &ast.NilLit{Pos: p.pos(tok)}
	}
}

func (p *Parser) listLiteral() ast.Expr {
	tok := p.next() // '['
	var elements []ast.Expr
	for p.peek().Type != token.RBRACKET && !p.failed() {
		elements = append(elements, p.expression())
		if p.peek().Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RBRACKET, "']'"); !ok {
		return &ast.NilLit{Pos: p.pos(tok)}
	}
	return &ast.ListLit{Pos: p.pos(tok), Elements: elements}
}

func (p *Parser) recordLiteral() ast.Expr {
	tok := p.next() // '@'
	if _, ok := p.expect(token.LBRACE, "'{'"); !ok {
		return &ast.NilLit{Pos: p.pos(tok)}
	}

	var keys, values []ast.Expr
	for p.peek().Type != token.RBRACE && !p.failed() {
		keys = append(keys, p.expression())
		if _, ok := p.expect(token.ARROW, "'->'"); !ok {
			return &ast.NilLit{Pos: p.pos(tok)}
		}
		values = append(values, p.expression())
		if p.peek().Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RBRACE, "'}'"); !ok {
		return &ast.NilLit{Pos: p.pos(tok)}
	}
	return &ast.RecordLit{Pos: p.pos(tok), Keys: keys, Values: values}
}
