package evaluator

import (
	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
)

// evalCall dispatches a call expression. Built-in names are intercepted
// before variable lookup, so they cannot be shadowed.
func (e *Evaluator) evalCall(x *ast.Call) (Value, *diagnostics.Error) {
	if v, ok := x.Callee.(*ast.Var); ok {
		if fn, isBuiltin := builtins[v.Name]; isBuiltin {
			args, err := e.evalArgs(x.Args)
			if err != nil {
				return Value{}, err
			}
			return fn(e, args, x.Line(), x.File())
		}
	}

	callee, err := e.eval(x.Callee)
	if err != nil {
		return Value{}, err
	}
	if callee.Kind != KindFunction {
		return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "%s কে কল করা যায় না", callee.Kind.TypeName())
	}

	args, err := e.evalArgs(x.Args)
	if err != nil {
		return Value{}, err
	}
	return e.callUser(callee, args)
}

func (e *Evaluator) evalArgs(exprs []ast.Expr) ([]Value, *diagnostics.Error) {
	args := make([]Value, 0, len(exprs))
	for _, a := range exprs {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// callUser runs a user function body in place: the return address and scope
// depth are saved, a parameter frame is pushed, and statements execute under
// the same program counter until the body's Return. Missing arguments bind
// শূন্য; extra arguments are dropped.
func (e *Evaluator) callUser(fn Value, args []Value) (Value, *diagnostics.Error) {
	if fn.Fn >= len(e.stmts) {
		return Value{}, diagnostics.NewUnexpectedError("function entry %d is past the end", fn.Fn)
	}
	headerStmt, ok := e.stmts[fn.Fn].(*ast.Expression)
	if !ok {
		return Value{}, diagnostics.NewUnexpectedError("malformed function header at %d", fn.Fn)
	}
	header, ok := headerStmt.Expr.(*ast.Call)
	if !ok {
		return Value{}, diagnostics.NewUnexpectedError("malformed function header at %d", fn.Fn)
	}

	retAddr := e.pc
	depth := e.scopes.Depth()
	loopsLen := len(e.loops)
	ifLen := len(e.ifTaken)

	e.scopes.PushFnRoot()
	for i, p := range header.Args {
		name := p.(*ast.Var).Name
		if i < len(args) {
			e.scopes.Bind(name, args[i])
		} else {
			e.scopes.Bind(name, NilValue())
		}
	}

	e.pc = fn.Fn + 1
	for {
		if e.pc >= len(e.stmts) {
			return Value{}, diagnostics.NewUnexpectedError("statement pointer ran past the end at %d", e.pc)
		}
		stmt := e.stmts[e.pc]
		if ret, ok := stmt.(*ast.Return); ok {
			v, err := e.eval(ret.Expr)
			if err != nil {
				return Value{}, err
			}
			e.scopes.PopTo(depth)
			e.loops = e.loops[:loopsLen]
			e.ifTaken = e.ifTaken[:ifLen]
			e.pc = retAddr
			return v, nil
		}
		if err := e.execute(stmt); err != nil {
			return Value{}, err
		}
	}
}
