package parser

import (
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Tokens == nil {
		// Should not be hit if the lexer runs first, but as a safeguard:
		ctx.Errors = append(ctx.Errors, diagnostics.NewUnexpectedError("parser: token stream is nil"))
		return ctx
	}
	if len(ctx.Errors) > 0 {
		// Don't parse a token stream the lexer already rejected.
		return ctx
	}

	parser := New(ctx.Tokens, ctx)
	ctx.Statements = parser.ParseProgram()

	// Ensure all errors have the file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
