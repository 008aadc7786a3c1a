package parser

import (
	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/token"
)

func (p *Parser) statement() {
	switch p.peek().Type {
	case token.PRINT:
		p.printStatement(true)
	case token.PRINT_NO_EOL:
		p.printStatement(false)
	case token.VAR:
		p.varDeclaration()
	case token.IF:
		p.ifStatement()
	case token.LOOP:
		p.loopStatement()
	case token.BREAK:
		tok := p.next()
		if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
			return
		}
		p.emit(&ast.Break{Pos: p.pos(tok)})
	case token.CONTINUE:
		tok := p.next()
		if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
			return
		}
		p.emit(&ast.Continue{Pos: p.pos(tok)})
	case token.FUNCTION:
		p.functionDefinition()
	case token.RETURN:
		p.returnStatement()
	case token.LBRACE:
		p.block()
	case token.ELSE:
		p.errorf(p.peek(), "অথবা without a matching যদি")
	default:
		p.expressionStatement()
	}
}

func (p *Parser) printStatement(eol bool) {
	tok := p.next()
	expr := p.expression()
	if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
		return
	}
	if eol {
		p.emit(&ast.Print{Pos: p.pos(tok), Expr: expr})
	} else {
		p.emit(&ast.PrintNoEOL{Pos: p.pos(tok), Expr: expr})
	}
}

func (p *Parser) varDeclaration() {
	tok := p.next() // নাম keyword
	name, ok := p.expect(token.IDENT, "a variable name")
	if !ok {
		return
	}

	var init ast.Expr
	if p.peek().Type == token.ASSIGN {
		p.next()
		init = p.expression()
	}
	if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
		return
	}

	p.emit(&ast.Assignment{
		Pos:  p.pos(tok),
		Kind: ast.FirstAssignment,
		Name: name.Lexeme,
		Init: init,
	})
}

// expressionStatement handles both bare expression statements and
// reassignments: the target of `x[১] = মান;` parses as an ordinary
// index expression, so we parse first and decide on the `=` that follows.
func (p *Parser) expressionStatement() {
	startTok := p.peek()
	expr := p.expression()
	if p.failed() {
		return
	}

	if p.peek().Type == token.ASSIGN {
		p.next()
		init := p.expression()
		if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
			return
		}
		name, indexes, ok := assignTarget(expr)
		if !ok {
			p.errorf(startTok, "invalid assignment target")
			return
		}
		p.emit(&ast.Assignment{
			Pos:     p.pos(startTok),
			Kind:    ast.Reassignment,
			Name:    name,
			Indexes: indexes,
			Init:    init,
		})
		return
	}

	if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
		return
	}
	p.emit(&ast.Expression{Pos: p.pos(startTok), Expr: expr})
}

// assignTarget unwinds an index chain rooted at a variable into the name and
// the index expressions in left-to-right order.
func assignTarget(expr ast.Expr) (string, []ast.Expr, bool) {
	var indexes []ast.Expr
	for {
		switch e := expr.(type) {
		case *ast.Var:
			for i, j := 0, len(indexes)-1; i < j; i, j = i+1, j-1 {
				indexes[i], indexes[j] = indexes[j], indexes[i]
			}
			return e.Name, indexes, true
		case *ast.Index:
			indexes = append(indexes, e.Idx)
			expr = e.Target
		default:
			return "", nil, false
		}
	}
}

func (p *Parser) ifStatement() {
	tok := p.next()
	cond := p.expression()
	p.emit(&ast.If{Pos: p.pos(tok), Cond: cond})
	p.block()
	if p.failed() {
		return
	}

	if p.peek().Type == token.ELSE {
		elseTok := p.next()
		p.emit(&ast.Else{Pos: p.pos(elseTok)})
		p.block()
	}
}

func (p *Parser) loopStatement() {
	tok := p.next()
	p.emit(&ast.Loop{Pos: p.pos(tok)})
	p.block()
	if p.failed() {
		return
	}
	// the loop's back-edge; Break scans forward to it
	p.emit(&ast.Continue{Pos: p.pos(tok)})
}

func (p *Parser) functionDefinition() {
	tok := p.next() // ফাং keyword
	name, ok := p.expect(token.IDENT, "a function name")
	if !ok {
		return
	}
	if _, ok := p.expect(token.LPAREN, "'('"); !ok {
		return
	}

	var params []ast.Expr
	for p.peek().Type != token.RPAREN && !p.failed() {
		param, ok := p.expect(token.IDENT, "a parameter name")
		if !ok {
			return
		}
		params = append(params, &ast.Var{Pos: p.pos(param), Name: param.Lexeme})
		if p.peek().Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RPAREN, "')'"); !ok {
		return
	}

	// The header is an ordinary call expression: callee is the function
	// name, arguments are the parameter names. The definition is skipped at
	// run time; the body executes only when called.
	header := &ast.Call{
		Pos:    p.pos(name),
		Callee: &ast.Var{Pos: p.pos(name), Name: name.Lexeme},
		Args:   params,
	}
	p.emit(&ast.FuncDef{Pos: p.pos(tok)})
	p.emit(&ast.Expression{Pos: p.pos(name), Expr: header})
	p.block()
	if p.failed() {
		return
	}
	// closes the definition; a body that falls through returns nil
	p.emit(&ast.Return{Pos: p.pos(tok), Expr: &ast.NilLit{Pos: p.pos(tok)}})
}

func (p *Parser) returnStatement() {
	tok := p.next()
	var expr ast.Expr = &ast.NilLit{Pos: p.pos(tok)}
	if p.peek().Type != token.SEMICOLON {
		expr = p.expression()
	}
	if _, ok := p.expect(token.SEMICOLON, "';'"); !ok {
		return
	}
	p.emit(&ast.Return{Pos: p.pos(tok), Expr: expr})
}

func (p *Parser) block() {
	tok, ok := p.expect(token.LBRACE, "'{'")
	if !ok {
		return
	}
	p.emit(&ast.BlockStart{Pos: p.pos(tok)})

	for p.peek().Type != token.RBRACE && p.peek().Type != token.EOT && !p.failed() {
		p.statement()
	}

	end, ok := p.expect(token.RBRACE, "'}'")
	if !ok {
		return
	}
	p.emit(&ast.BlockEnd{Pos: p.pos(end)})
}
