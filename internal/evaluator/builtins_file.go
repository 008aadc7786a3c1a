package evaluator

import (
	"github.com/pakhi-lang/pakhi/internal/config"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
)

func builtinReadFile(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinReadFile, args, 1, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinReadFile, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	data, ioErr := e.Fs.ReadFile(path)
	if ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q পড়া যায়নি: %v", path, ioErr)
	}
	return StrValue(string(data)), nil
}

func builtinWriteFile(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinWriteFile, args, 2, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinWriteFile, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	content, err := wantString(config.BuiltinWriteFile, args[1], line, file)
	if err != nil {
		return Value{}, err
	}
	if ioErr := e.Fs.WriteFile(path, []byte(content)); ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q লেখা যায়নি: %v", path, ioErr)
	}
	return NilValue(), nil
}

func builtinDeleteFile(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinDeleteFile, args, 1, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinDeleteFile, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	if ioErr := e.Fs.Remove(path); ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q মুছা যায়নি: %v", path, ioErr)
	}
	return NilValue(), nil
}

func builtinCreateDir(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinCreateDir, args, 1, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinCreateDir, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	if ioErr := e.Fs.MkdirAll(path); ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q বানানো যায়নি: %v", path, ioErr)
	}
	return NilValue(), nil
}

func builtinReadDir(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinReadDir, args, 1, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinReadDir, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	names, ioErr := e.Fs.ReadDir(path)
	if ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q পড়া যায়নি: %v", path, ioErr)
	}
	elems := make([]Value, 0, len(names))
	for _, name := range names {
		elems = append(elems, StrValue(name))
	}
	return ListValue(e.heap.AllocList(elems)), nil
}

func builtinDeleteDir(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinDeleteDir, args, 1, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinDeleteDir, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	if ioErr := e.Fs.RemoveAll(path); ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q মুছা যায়নি: %v", path, ioErr)
	}
	return NilValue(), nil
}

func builtinFileOrDir(e *Evaluator, args []Value, line int, file string) (Value, *diagnostics.Error) {
	if err := wantArity(config.BuiltinFileOrDir, args, 1, line, file); err != nil {
		return Value{}, err
	}
	path, err := wantString(config.BuiltinFileOrDir, args[0], line, file)
	if err != nil {
		return Value{}, err
	}
	isDir, ioErr := e.Fs.Stat(path)
	if ioErr != nil {
		return Value{}, diagnostics.NewRuntimeError(line, file, "%q পাওয়া যায়নি: %v", path, ioErr)
	}
	if isDir {
		return StrValue(config.StatDir), nil
	}
	return StrValue(config.StatFile), nil
}
