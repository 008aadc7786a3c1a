package lexer

import (
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/pipeline"
	"github.com/pakhi-lang/pakhi/internal/token"
)

type LexerProcessor struct{}

// Process tokenizes ctx.Source. Comment tokens are dropped here so the
// parser never sees them; illegal tokens become syntax errors.
func (lp *LexerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.Source)

	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.COMMENT:
			continue
		case token.ILLEGAL:
			ctx.Errors = append(ctx.Errors, diagnostics.NewSyntaxError(tok.Line, ctx.FilePath, "%s", tok.Literal))
			continue
		}
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOT {
			return ctx
		}
	}
}
