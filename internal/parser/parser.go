package parser

import (
	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/pipeline"
	"github.com/pakhi-lang/pakhi/internal/token"
)

// Parser turns the token stream into the flat, jump-addressed statement
// list the evaluator executes. Blocks become BlockStart/BlockEnd markers,
// loops get a trailing Continue back-edge, and function definitions are
// closed by a trailing Return, so control flow can be done purely with
// program-counter arithmetic.
type Parser struct {
	tokens  []token.Token
	current int
	file    string
	ctx     *pipeline.Context
	stmts   []ast.Stmt
}

func New(tokens []token.Token, ctx *pipeline.Context) *Parser {
	return &Parser{tokens: tokens, ctx: ctx, file: ctx.FilePath}
}

func (p *Parser) ParseProgram() []ast.Stmt {
	for p.peek().Type != token.EOT && !p.failed() {
		p.statement()
	}
	p.emit(&ast.EOS{Pos: p.pos(p.peek())})
	return p.stmts
}

func (p *Parser) peek() token.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOT sentinel
	}
	return p.tokens[p.current]
}

func (p *Parser) next() token.Token {
	tok := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

func (p *Parser) expect(t token.Type, what string) (token.Token, bool) {
	if p.peek().Type != t {
		p.errorf(p.peek(), "expected %s, found %q", what, p.peek().Lexeme)
		return p.peek(), false
	}
	return p.next(), true
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewSyntaxError(tok.Line, p.file, format, args...))
}

func (p *Parser) failed() bool {
	return len(p.ctx.Errors) > 0
}

func (p *Parser) emit(stmt ast.Stmt) {
	p.stmts = append(p.stmts, stmt)
}

func (p *Parser) pos(tok token.Token) ast.Pos {
	return ast.Pos{LineNo: tok.Line, SrcFile: p.file}
}
