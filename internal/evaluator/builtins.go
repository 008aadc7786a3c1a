package evaluator

import (
	"strings"

	"github.com/pakhi-lang/pakhi/internal/config"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
)

type builtinFn func(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error)

var builtins = map[string]builtinFn{
	config.BuiltinToString:    builtinToString,
	config.BuiltinToNum:       builtinToNum,
	config.BuiltinListPush:    builtinListPush,
	config.BuiltinListPop:     builtinListPop,
	config.BuiltinListLen:     builtinListLen,
	config.BuiltinReadLine:    builtinReadLine,
	config.BuiltinError:       builtinError,
	config.BuiltinStringSplit: builtinStringSplit,
	config.BuiltinStringJoin:  builtinStringJoin,
	config.BuiltinType:        builtinType,
	config.BuiltinReadFile:    builtinReadFile,
	config.BuiltinWriteFile:   builtinWriteFile,
	config.BuiltinDeleteFile:  builtinDeleteFile,
	config.BuiltinCreateDir:   builtinCreateDir,
	config.BuiltinReadDir:     builtinReadDir,
	config.BuiltinDeleteDir:   builtinDeleteDir,
	config.BuiltinFileOrDir:   builtinFileOrDir,
}

func wantArity(name string, args []Value, n, line int, file string) *diagnostics.Error {
	if len(args) != n {
		return diagnostics.NewRuntimeError(line, file, "%s %dটি আর্গুমেন্ট নেয়, পাওয়া গেছে %dটি", name, n, len(args))
	}
	return nil
}

func wantString(name string, v Value, line int, file string) (string, *diagnostics.Error) {
	if v.Kind != KindString {
		return "", diagnostics.NewTypeError(line, file, "%s স্ট্রিং আর্গুমেন্ট নেয়, পাওয়া গেছে %s", name, v.Kind.TypeName())
	}
	return v.Str, nil
}

func wantList(name string, v Value, line int, file string) (int, *diagnostics.Error) {
	if v.Kind != KindList {
		return 0, diagnostics.NewTypeError(line, file, "%s লিস্ট আর্গুমেন্ট নেয়, পাওয়া গেছে %s", name, v.Kind.TypeName())
	}
	return v.Handle, nil
}

func builtinToString(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinToString, args, 1, line, file); err != nil {
		return Value{}, err
	}
	s, err := e.render(args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	return StrValue(s), nil
}

func builtinToNum(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinToNum, args, 1, line, file); err != nil {
		return Value{}, err
	}
	switch args[0].Kind {
	case KindNum:
		return args[0], nil
	case KindString:
		n, err := ParseNum(args[0].Str)
		if err != nil {
			return Value{}, diagnostics.NewTypeError(line, file, "%q সংখ্যা নয়", args[0].Str)
		}
		return NumValue(n), nil
	default:
		return Value{}, diagnostics.NewTypeError(line, file, "%s থেকে সংখ্যা বানানো যায় না", args[0].Kind.TypeName())
	}
}

// builtinListPush appends with two arguments; with three the middle argument
// is the insertion index.
func builtinListPush(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if len(args) != 2 && len(args) != 3 {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%s ২টি বা ৩টি আর্গুমেন্ট নেয়, পাওয়া গেছে %dটি", config.BuiltinListPush, len(args))
	}
	handle, err := wantList(config.BuiltinListPush, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	elems := e.heap.List(handle)

	if len(args) == 2 {
		e.heap.SetList(handle, append(elems, args[1]))
		return NilValue(), nil
	}

	if args[1].Kind != KindNum {
		return Value{}, diagnostics.NewTypeError(line, file, "%s এর ইন্ডেক্স সংখ্যা হতে হবে, পাওয়া গেছে %s", config.BuiltinListPush, args[1].Kind.TypeName())
	}
	i := int(args[1].Num)
	if i < 0 || i > len(elems) {
		return Value{}, diagnostics.NewRuntimeError(line, file, "লিস্টের ইন্ডেক্স %s সীমার বাইরে", FormatNum(args[1].Num))
	}
	elems = append(elems, Value{})
	copy(elems[i+1:], elems[i:])
	elems[i] = args[2]
	e.heap.SetList(handle, elems)
	return NilValue(), nil
}

// builtinListPop removes the last element, or the element at the given
// index. Popping an empty list is a no-op that yields শূন্য.
func builtinListPop(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if len(args) != 1 && len(args) != 2 {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%s ১টি বা ২টি আর্গুমেন্ট নেয়, পাওয়া গেছে %dটি", config.BuiltinListPop, len(args))
	}
	handle, err := wantList(config.BuiltinListPop, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	elems := e.heap.List(handle)

	if len(args) == 1 {
		if len(elems) == 0 {
			return NilValue(), nil
		}
		popped := elems[len(elems)-1]
		e.heap.SetList(handle, elems[:len(elems)-1])
		return popped, nil
	}

	if args[1].Kind != KindNum {
		return Value{}, diagnostics.NewTypeError(line, file, "%s এর ইন্ডেক্স সংখ্যা হতে হবে, পাওয়া গেছে %s", config.BuiltinListPop, args[1].Kind.TypeName())
	}
	i := int(args[1].Num)
	if i < 0 || i >= len(elems) {
		return Value{}, diagnostics.NewRuntimeError(line, file, "লিস্টের ইন্ডেক্স %s সীমার বাইরে", FormatNum(args[1].Num))
	}
	popped := elems[i]
	e.heap.SetList(handle, append(elems[:i], elems[i+1:]...))
	return popped, nil
}

func builtinListLen(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinListLen, args, 1, line, file); err != nil {
		return Value{}, err
	}
	handle, err := wantList(config.BuiltinListLen, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	return NumValue(float64(len(e.heap.List(handle)))), nil
}

func builtinReadLine(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinReadLine, args, 0, line, file); err != nil {
		return Value{}, err
	}
	s, err := e.reader().ReadString('\n')
	if err != nil && s == "" {
		return StrValue(""), nil
	}
	s = strings.TrimRight(s, "\r\n")
	return StrValue(s), nil
}

func builtinError(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinError, args, 1, line, file); err != nil {
		return Value{}, err
	}
	msg, err := wantString(config.BuiltinError, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	return Value{}, diagnostics.NewRuntimeError(line, file, "%s", msg)
}

// builtinStringSplit drops the empty leading and trailing parts that appear
// when the separator both starts and ends the string, or equals it.
func builtinStringSplit(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinStringSplit, args, 2, line, file); err != nil {
		return Value{}, err
	}
	s, err := wantString(config.BuiltinStringSplit, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	sep, err := wantString(config.BuiltinStringSplit, args[1], line, file)
	if err != nil {
		return Value{}, err
	}

	parts := strings.Split(s, sep)
	if len(parts) >= 2 && parts[0] == "" && parts[len(parts)-1] == "" {
		parts = parts[1 : len(parts)-1]
	}
	elems := make([]Value, 0, len(parts))
	for _, p := range parts {
		elems = append(elems, StrValue(p))
	}
	return ListValue(e.heap.AllocList(elems)), nil
}

func builtinStringJoin(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinStringJoin, args, 2, line, file); err != nil {
		return Value{}, err
	}
	handle, err := wantList(config.BuiltinStringJoin, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	sep, err := wantString(config.BuiltinStringJoin, args[1], line, file)
	if err != nil {
		return Value{}, err
	}

	elems := e.heap.List(handle)
	parts := make([]string, 0, len(elems))
	for _, v := range elems {
		if v.Kind != KindString {
			return Value{}, diagnostics.NewTypeError(line, file, "%s শুধু স্ট্রিংয়ের লিস্ট নেয়, পাওয়া গেছে %s", config.BuiltinStringJoin, v.Kind.TypeName())
		}
		parts = append(parts, v.Str)
	}
	return StrValue(strings.Join(parts, sep)), nil
}

func builtinType(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinType, args, 1, line, file); err != nil {
		return Value{}, err
	}
	return StrValue(args[0].Kind.TypeName()), nil
}
