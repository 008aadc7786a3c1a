package evaluator

import (
	"math"

	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/token"
)

func (e *Evaluator) eval(expr ast.Expr) (Value, *diagnostics.Error) {
	switch x := expr.(type) {
	case *ast.Num:
		return NumValue(x.Value), nil
	case *ast.Str:
		return StrValue(x.Value), nil
	case *ast.Boolean:
		return BoolValue(x.Value), nil
	case *ast.NilLit:
		return NilValue(), nil
	case *ast.Var:
		ptr, ok := e.scopes.Lookup(x.Name)
		if !ok {
			return Value{}, diagnostics.NewRuntimeError(x.Line(), x.File(), "অজানা নাম %q", x.Name)
		}
		if ptr == nil {
			return Value{}, diagnostics.NewRuntimeError(x.Line(), x.File(), "%q এর কোনো মান নেই", x.Name)
		}
		return *ptr, nil
	case *ast.Group:
		return e.eval(x.Expr)
	case *ast.Unary:
		return e.evalUnary(x)
	case *ast.Binary:
		return e.evalBinary(x)
	case *ast.Call:
		return e.evalCall(x)
	case *ast.Index:
		target, err := e.eval(x.Target)
		if err != nil {
			return Value{}, err
		}
		idx, err := e.eval(x.Idx)
		if err != nil {
			return Value{}, err
		}
		return e.indexValue(target, idx, x.Line(), x.File())
	case *ast.ListLit:
		elems := make([]Value, 0, len(x.Elements))
		for _, el := range x.Elements {
			v, err := e.eval(el)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return ListValue(e.heap.AllocList(elems)), nil
	case *ast.RecordLit:
		fields := make(map[string]Value, len(x.Keys))
		for i := range x.Keys {
			key, err := e.eval(x.Keys[i])
			if err != nil {
				return Value{}, err
			}
			if key.Kind != KindString {
				return Value{}, diagnostics.NewTypeError(x.Keys[i].Line(), x.Keys[i].File(), "রেকর্ডের কী স্ট্রিং হতে হবে, পাওয়া গেছে %s", key.Kind.TypeName())
			}
			v, err := e.eval(x.Values[i])
			if err != nil {
				return Value{}, err
			}
			fields[key.Str] = v
		}
		return RecordValue(e.heap.AllocRecord(fields)), nil
	default:
		return Value{}, diagnostics.NewUnexpectedError("unknown expression %T", expr)
	}
}

func (e *Evaluator) evalUnary(x *ast.Unary) (Value, *diagnostics.Error) {
	v, err := e.eval(x.Right)
	if err != nil {
		return Value{}, err
	}
	switch x.Op {
	case token.MINUS:
		if v.Kind != KindNum {
			return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "- শুধু সংখ্যায় প্রযোজ্য, পাওয়া গেছে %s", v.Kind.TypeName())
		}
		return NumValue(-v.Num), nil
	case token.BANG:
		if v.Kind != KindBool {
			return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "! শুধু বুলিয়ানে প্রযোজ্য, পাওয়া গেছে %s", v.Kind.TypeName())
		}
		return BoolValue(!v.Bool), nil
	}
	return Value{}, diagnostics.NewUnexpectedError("unknown unary operator %q", x.Op)
}

// evalBinary always evaluates the left operand first and then the right,
// including & and |, which do not short-circuit.
func (e *Evaluator) evalBinary(x *ast.Binary) (Value, *diagnostics.Error) {
	left, err := e.eval(x.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := e.eval(x.Right)
	if err != nil {
		return Value{}, err
	}

	switch x.Op {
	case token.PLUS:
		switch {
		case left.Kind == KindNum && right.Kind == KindNum:
			return NumValue(left.Num + right.Num), nil
		case left.Kind == KindString && right.Kind == KindString:
			return StrValue(left.Str + right.Str), nil
		case left.Kind == KindList && right.Kind == KindList:
			a := e.heap.List(left.Handle)
			b := e.heap.List(right.Handle)
			joined := make([]Value, 0, len(a)+len(b))
			joined = append(joined, a...)
			joined = append(joined, b...)
			return ListValue(e.heap.AllocList(joined)), nil
		default:
			return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "%s এবং %s যোগ করা যায় না", left.Kind.TypeName(), right.Kind.TypeName())
		}
	case token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT:
		if left.Kind != KindNum || right.Kind != KindNum {
			return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "%q শুধু সংখ্যায় প্রযোজ্য, পাওয়া গেছে %s এবং %s", x.Op, left.Kind.TypeName(), right.Kind.TypeName())
		}
		switch x.Op {
		case token.MINUS:
			return NumValue(left.Num - right.Num), nil
		case token.ASTERISK:
			return NumValue(left.Num * right.Num), nil
		case token.SLASH:
			// IEEE semantics: division by zero yields Inf or NaN
			return NumValue(left.Num / right.Num), nil
		default:
			return NumValue(math.Mod(left.Num, right.Num)), nil
		}
	case token.LT, token.LTE, token.GT, token.GTE:
		if left.Kind != KindNum || right.Kind != KindNum {
			return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "%q শুধু সংখ্যায় প্রযোজ্য, পাওয়া গেছে %s এবং %s", x.Op, left.Kind.TypeName(), right.Kind.TypeName())
		}
		switch x.Op {
		case token.LT:
			return BoolValue(left.Num < right.Num), nil
		case token.LTE:
			return BoolValue(left.Num <= right.Num), nil
		case token.GT:
			return BoolValue(left.Num > right.Num), nil
		default:
			return BoolValue(left.Num >= right.Num), nil
		}
	case token.EQ, token.NOT_EQ:
		// values of different kinds are simply unequal
		eq := left.Equals(right)
		if x.Op == token.NOT_EQ {
			eq = !eq
		}
		return BoolValue(eq), nil
	case token.AMPERSAND, token.PIPE:
		if left.Kind != KindBool || right.Kind != KindBool {
			return Value{}, diagnostics.NewTypeError(x.Line(), x.File(), "%q শুধু বুলিয়ানে প্রযোজ্য, পাওয়া গেছে %s এবং %s", x.Op, left.Kind.TypeName(), right.Kind.TypeName())
		}
		if x.Op == token.AMPERSAND {
			return BoolValue(left.Bool && right.Bool), nil
		}
		return BoolValue(left.Bool || right.Bool), nil
	}
	return Value{}, diagnostics.NewUnexpectedError("unknown binary operator %q", x.Op)
}

// indexValue reads one element or field. List indexes truncate toward zero.
func (e *Evaluator) indexValue(target, idx Value, line int, file string) (Value, *diagnostics.Error) {
	switch target.Kind {
	case KindList:
		if idx.Kind != KindNum {
			return Value{}, diagnostics.NewTypeError(line, file, "লিস্টের ইন্ডেক্স সংখ্যা হতে হবে, পাওয়া গেছে %s", idx.Kind.TypeName())
		}
		elems := e.heap.List(target.Handle)
		i := int(idx.Num)
		if i < 0 || i >= len(elems) {
			return Value{}, diagnostics.NewRuntimeError(line, file, "লিস্টের ইন্ডেক্স %s সীমার বাইরে", FormatNum(idx.Num))
		}
		return elems[i], nil
	case KindRecord:
		if idx.Kind != KindString {
			return Value{}, diagnostics.NewTypeError(line, file, "রেকর্ডের কী স্ট্রিং হতে হবে, পাওয়া গেছে %s", idx.Kind.TypeName())
		}
		v, ok := e.heap.Record(target.Handle)[idx.Str]
		if !ok {
			return Value{}, diagnostics.NewRuntimeError(line, file, "রেকর্ডে %q কী নেই", idx.Str)
		}
		return v, nil
	default:
		return Value{}, diagnostics.NewTypeError(line, file, "%s এ ইন্ডেক্স করা যায় না", target.Kind.TypeName())
	}
}
