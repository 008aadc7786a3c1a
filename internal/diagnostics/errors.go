package diagnostics

import "fmt"

// Kind classifies an engine error. Syntax errors mean the statement stream
// violated a structural invariant, type errors an operand kind mismatch,
// runtime errors everything that can only surface while the program runs
// (undeclared names, bad indices, filesystem failures, user-raised errors).
// Unexpected errors are internal invariant violations with no useful source
// location.
type Kind int

const (
	SyntaxError Kind = iota
	TypeError
	RuntimeError
	UnexpectedError
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case TypeError:
		return "TypeError"
	case RuntimeError:
		return "RuntimeError"
	case UnexpectedError:
		return "UnexpectedError"
	default:
		return "Error"
	}
}

// Error is the single error type surfaced to the host. The engine never
// terminates the process itself; the host decides how to report and exit.
type Error struct {
	Kind    Kind
	Line    int
	File    string
	Message string
}

func (e *Error) Error() string {
	if e.Kind == UnexpectedError || (e.File == "" && e.Line == 0) {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s at %s:%d: %s", e.Kind, e.File, e.Line, e.Message)
}

func NewSyntaxError(line int, file, format string, args ...interface{}) *Error {
	return &Error{Kind: SyntaxError, Line: line, File: file, Message: fmt.Sprintf(format, args...)}
}

func NewTypeError(line int, file, format string, args ...interface{}) *Error {
	return &Error{Kind: TypeError, Line: line, File: file, Message: fmt.Sprintf(format, args...)}
}

func NewRuntimeError(line int, file, format string, args ...interface{}) *Error {
	return &Error{Kind: RuntimeError, Line: line, File: file, Message: fmt.Sprintf(format, args...)}
}

func NewUnexpectedError(format string, args ...interface{}) *Error {
	return &Error{Kind: UnexpectedError, Message: fmt.Sprintf(format, args...)}
}
