package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/pakhi-lang/pakhi/internal/config"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/evaluator"
	"github.com/pakhi-lang/pakhi/internal/lexer"
	"github.com/pakhi-lang/pakhi/internal/parser"
	"github.com/pakhi-lang/pakhi/internal/pipeline"
)

const usage = `pakhi - বাংলায় প্রোগ্রামিং

Usage:
  pakhi <file.pakhi>    run a source file
  pakhi                 run the main module named in pakhi.yaml
  pakhi help            show this help
`

// Run is the process entry point behind main. It reports through the given
// writers and returns the process exit code, so tests can drive it without
// forking.
func Run(args []string, stdout, stderr io.Writer) int {
	path := ""
	gcThreshold := 0

	switch {
	case len(args) == 0:
		project, err := config.LoadProject(config.ProjectFileName)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprint(stderr, usage)
				return 2
			}
			fmt.Fprintf(stderr, "%s %v\n", errorPrefix(stderr), err)
			return 1
		}
		path = project.Main
		gcThreshold = project.GC.Threshold
	case args[0] == "help" || args[0] == "-h" || args[0] == "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		path = args[0]
	}

	if !strings.HasSuffix(path, config.SourceFileExt) {
		fmt.Fprintf(stderr, "%s %s is not a %s file\n", errorPrefix(stderr), path, config.SourceFileExt)
		return 1
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", errorPrefix(stderr), err)
		return 1
	}

	ctx := pipeline.NewContext(string(source))
	ctx.FilePath = path
	pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		reportDiagnostics(stderr, ctx.Errors)
		return 1
	}

	ev := evaluator.New(ctx.Statements)
	ev.Out = stdout
	if gcThreshold > 0 {
		ev.GCThreshold = gcThreshold
	}
	if runErr := ev.Run(); runErr != nil {
		reportDiagnostics(stderr, []*diagnostics.Error{runErr})
		return 1
	}
	return 0
}

func reportDiagnostics(w io.Writer, errs []*diagnostics.Error) {
	prefix := errorPrefix(w)
	for _, err := range errs {
		fmt.Fprintf(w, "%s %s\n", prefix, err.Error())
	}
}

// errorPrefix colors the marker red when the destination is a terminal.
func errorPrefix(w io.Writer) string {
	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return "\x1b[31mত্রুটি:\x1b[0m"
		}
	}
	return "ত্রুটি:"
}
