package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/config"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
)

// Evaluator walks the flat statement list with an explicit program counter.
// Control flow never recurses over statements: blocks, loops and function
// bodies are entered and left by moving the counter, with skip scans that
// count BlockStart/BlockEnd nesting.
type Evaluator struct {
	Out         io.Writer
	In          io.Reader
	Fs          Filesystem
	GCThreshold int

	stmts  []ast.Stmt
	pc     int
	scopes *Scopes
	heap   *Heap

	loops   []loopFrame
	ifTaken []bool

	stdin *bufio.Reader
}

type loopFrame struct {
	start int // address of the Loop statement
	depth int // scope depth when the loop was entered
}

func New(stmts []ast.Stmt) *Evaluator {
	return &Evaluator{
		Out:         os.Stdout,
		In:          os.Stdin,
		Fs:          OsFilesystem{},
		GCThreshold: config.GCThreshold,
		stmts:       stmts,
		scopes:      NewScopes(),
		heap:        NewHeap(),
	}
}

// Run executes the program to its end-of-statements sentinel. Garbage is
// collected between top-level statements whenever allocation pressure
// crosses the threshold.
func (e *Evaluator) Run() *diagnostics.Error {
	for {
		if e.heap.Pressure() >= e.GCThreshold {
			e.collect()
		}

		if e.pc >= len(e.stmts) {
			return diagnostics.NewUnexpectedError("statement pointer ran past the end at %d", e.pc)
		}
		stmt := e.stmts[e.pc]
		if _, ok := stmt.(*ast.EOS); ok {
			return nil
		}
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
}

func (e *Evaluator) execute(stmt ast.Stmt) *diagnostics.Error {
	switch s := stmt.(type) {
	case *ast.Print:
		return e.execPrint(s.Expr, true, s.Line(), s.File())
	case *ast.PrintNoEOL:
		return e.execPrint(s.Expr, false, s.Line(), s.File())
	case *ast.Assignment:
		return e.execAssignment(s)
	case *ast.Expression:
		if _, err := e.eval(s.Expr); err != nil {
			return err
		}
		e.pc++
		return nil
	case *ast.If:
		return e.execIf(s)
	case *ast.Else:
		return e.execElse()
	case *ast.FuncDef:
		return e.execFuncDef(s)
	case *ast.Loop:
		e.loops = append(e.loops, loopFrame{start: e.pc, depth: e.scopes.Depth()})
		e.pc++
		return nil
	case *ast.Continue:
		if len(e.loops) == 0 {
			return diagnostics.NewRuntimeError(s.Line(), s.File(), "আবার লুপের বাইরে ব্যবহার করা যায় না")
		}
		l := e.loops[len(e.loops)-1]
		e.scopes.PopTo(l.depth)
		e.pc = l.start + 1
		return nil
	case *ast.Break:
		return e.execBreak(s)
	case *ast.BlockStart:
		e.scopes.Push()
		e.pc++
		return nil
	case *ast.BlockEnd:
		e.scopes.Pop()
		e.pc++
		return nil
	case *ast.Return:
		return diagnostics.NewRuntimeError(s.Line(), s.File(), "ফেরত ফাংশনের বাইরে ব্যবহার করা যায় না")
	default:
		return diagnostics.NewUnexpectedError("unknown statement %T at %d", stmt, e.pc)
	}
}

func (e *Evaluator) execPrint(expr ast.Expr, eol bool, line int, file string) *diagnostics.Error {
	v, err := e.eval(expr)
	if err != nil {
		return err
	}
	s, err := e.render(v, line, file)
	if err != nil {
		return err
	}
	if eol {
		fmt.Fprintln(e.Out, s)
	} else {
		fmt.Fprint(e.Out, s)
	}
	e.pc++
	return nil
}

func (e *Evaluator) execAssignment(s *ast.Assignment) *diagnostics.Error {
	if s.Kind == ast.FirstAssignment {
		if s.Init == nil {
			e.scopes.Declare(s.Name)
		} else {
			v, err := e.eval(s.Init)
			if err != nil {
				return err
			}
			e.scopes.Bind(s.Name, v)
		}
		e.pc++
		return nil
	}

	v, err := e.eval(s.Init)
	if err != nil {
		return err
	}
	if len(s.Indexes) == 0 {
		if !e.scopes.Assign(s.Name, v) {
			return diagnostics.NewRuntimeError(s.Line(), s.File(), "অজানা নাম %q", s.Name)
		}
		e.pc++
		return nil
	}
	if err := e.assignIndexed(s, v); err != nil {
		return err
	}
	e.pc++
	return nil
}

// assignIndexed descends the index chain reading containers, then mutates
// the final slot in place. Assigning a fresh record key creates it; a list
// index must already be in range.
func (e *Evaluator) assignIndexed(s *ast.Assignment, v Value) *diagnostics.Error {
	ptr, ok := e.scopes.Lookup(s.Name)
	if !ok {
		return diagnostics.NewRuntimeError(s.Line(), s.File(), "অজানা নাম %q", s.Name)
	}
	if ptr == nil {
		return diagnostics.NewRuntimeError(s.Line(), s.File(), "%q এর কোনো মান নেই", s.Name)
	}

	target := *ptr
	for _, idxExpr := range s.Indexes[:len(s.Indexes)-1] {
		idx, err := e.eval(idxExpr)
		if err != nil {
			return err
		}
		target, err = e.indexValue(target, idx, idxExpr.Line(), idxExpr.File())
		if err != nil {
			return err
		}
	}

	last := s.Indexes[len(s.Indexes)-1]
	idx, err := e.eval(last)
	if err != nil {
		return err
	}
	switch target.Kind {
	case KindList:
		if idx.Kind != KindNum {
			return diagnostics.NewTypeError(last.Line(), last.File(), "লিস্টের ইন্ডেক্স সংখ্যা হতে হবে, পাওয়া গেছে %s", idx.Kind.TypeName())
		}
		elems := e.heap.List(target.Handle)
		i := int(idx.Num)
		if i < 0 || i >= len(elems) {
			return diagnostics.NewRuntimeError(last.Line(), last.File(), "লিস্টের ইন্ডেক্স %s সীমার বাইরে", FormatNum(idx.Num))
		}
		elems[i] = v
		return nil
	case KindRecord:
		if idx.Kind != KindString {
			return diagnostics.NewTypeError(last.Line(), last.File(), "রেকর্ডের কী স্ট্রিং হতে হবে, পাওয়া গেছে %s", idx.Kind.TypeName())
		}
		e.heap.Record(target.Handle)[idx.Str] = v
		return nil
	default:
		return diagnostics.NewTypeError(s.Line(), s.File(), "%s এ ইন্ডেক্স করা যায় না", target.Kind.TypeName())
	}
}

func (e *Evaluator) execIf(s *ast.If) *diagnostics.Error {
	cond, err := e.eval(s.Cond)
	if err != nil {
		return err
	}
	if cond.Kind != KindBool {
		return diagnostics.NewTypeError(s.Line(), s.File(), "যদি এর শর্ত বুলিয়ান হতে হবে, পাওয়া গেছে %s", cond.Kind.TypeName())
	}

	e.ifTaken = append(e.ifTaken, cond.Bool)
	e.pc++
	if !cond.Bool {
		e.skipBlock()
		// no else coming, nothing will consume the marker
		if e.pc >= len(e.stmts) {
			e.ifTaken = e.ifTaken[:len(e.ifTaken)-1]
		} else if _, isElse := e.stmts[e.pc].(*ast.Else); !isElse {
			e.ifTaken = e.ifTaken[:len(e.ifTaken)-1]
		}
	}
	return nil
}

func (e *Evaluator) execElse() *diagnostics.Error {
	if len(e.ifTaken) == 0 {
		return diagnostics.NewUnexpectedError("else with no pending if at %d", e.pc)
	}
	taken := e.ifTaken[len(e.ifTaken)-1]
	e.ifTaken = e.ifTaken[:len(e.ifTaken)-1]
	e.pc++
	if taken {
		e.skipBlock()
	}
	return nil
}

// execFuncDef binds the function name and skips the definition: the header,
// the body block and the trailing Return.
func (e *Evaluator) execFuncDef(s *ast.FuncDef) *diagnostics.Error {
	if e.pc+1 >= len(e.stmts) {
		return diagnostics.NewUnexpectedError("malformed function definition at %d", e.pc)
	}
	header, ok := e.stmts[e.pc+1].(*ast.Expression)
	if !ok {
		return diagnostics.NewUnexpectedError("malformed function definition at %d", e.pc)
	}
	call, ok := header.Expr.(*ast.Call)
	if !ok {
		return diagnostics.NewUnexpectedError("malformed function header at %d", e.pc+1)
	}
	name := call.Callee.(*ast.Var).Name

	e.scopes.Bind(name, FuncValue(e.pc+1))
	e.pc += 2
	e.skipBlock()
	e.pc++ // trailing Return
	return nil
}

func (e *Evaluator) execBreak(s *ast.Break) *diagnostics.Error {
	if len(e.loops) == 0 {
		return diagnostics.NewRuntimeError(s.Line(), s.File(), "থামাও লুপের বাইরে ব্যবহার করা যায় না")
	}

	// Scan forward for the enclosing loop's back-edge Continue, skipping
	// one Continue per nested Loop opened along the way.
	nested := 0
	i := e.pc + 1
	for {
		if i >= len(e.stmts) {
			return diagnostics.NewUnexpectedError("unterminated loop at %d", e.pc)
		}
		switch e.stmts[i].(type) {
		case *ast.Loop:
			nested++
		case *ast.Continue:
			if nested == 0 {
				l := e.loops[len(e.loops)-1]
				e.loops = e.loops[:len(e.loops)-1]
				e.scopes.PopTo(l.depth)
				e.pc = i + 1
				return nil
			}
			nested--
		case *ast.EOS:
			return diagnostics.NewUnexpectedError("unterminated loop at %d", e.pc)
		}
		i++
	}
}

// skipBlock advances the counter past the block starting at it, balancing
// nested BlockStart/BlockEnd pairs.
func (e *Evaluator) skipBlock() {
	depth := 0
	for {
		if e.pc >= len(e.stmts) {
			return
		}
		switch e.stmts[e.pc].(type) {
		case *ast.BlockStart:
			depth++
		case *ast.BlockEnd:
			depth--
			if depth == 0 {
				e.pc++
				return
			}
		case *ast.EOS:
			return
		}
		e.pc++
	}
}

func (e *Evaluator) collect() {
	var roots []Value
	e.scopes.EachValue(func(v Value) {
		roots = append(roots, v)
	})
	e.heap.Collect(roots)
}

func (e *Evaluator) reader() *bufio.Reader {
	if e.stdin == nil {
		e.stdin = bufio.NewReader(e.In)
	}
	return e.stdin
}
