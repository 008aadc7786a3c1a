package pipeline

import (
	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/token"
)

// Context is the shared state threaded through the processing stages.
type Context struct {
	Source     string
	FilePath   string
	Tokens     []token.Token
	Statements []ast.Stmt
	Errors     []*diagnostics.Error
}

func NewContext(source string) *Context {
	return &Context{Source: source}
}

// Processor is one stage (lexing, parsing).
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Stages after a failed one still run so the
// context collects diagnostics from every stage that can produce them.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
