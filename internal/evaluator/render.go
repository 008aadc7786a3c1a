package evaluator

import (
	"sort"
	"strings"

	"github.com/pakhi-lang/pakhi/internal/diagnostics"
)

type renderMark struct {
	kind   Kind
	handle int
}

// render turns a value into its দেখাও form. Containers render recursively:
// nested strings are quoted, record fields come out in sorted key order so
// output is deterministic. Functions and শূন্য have no printable form. The
// walk tracks the containers on the current path, so a self-referential
// container is reported instead of recursing forever.
func (e *Evaluator) render(v Value, line int, file string) (string, *diagnostics.Error) {
	return e.renderValue(v, line, file, make(map[renderMark]bool))
}

func (e *Evaluator) renderValue(v Value, line int, file string, seen map[renderMark]bool) (string, *diagnostics.Error) {
	switch v.Kind {
	case KindNum:
		return FormatNum(v.Num), nil
	case KindBool:
		return FormatBool(v.Bool), nil
	case KindString:
		return v.Str, nil
	case KindList:
		mark := renderMark{KindList, v.Handle}
		if seen[mark] {
			return "", diagnostics.NewRuntimeError(line, file, "চক্রাকার %s দেখানো যায় না", v.Kind.TypeName())
		}
		seen[mark] = true

		var b strings.Builder
		b.WriteString("[")
		for i, elem := range e.heap.List(v.Handle) {
			if i > 0 {
				b.WriteString(", ")
			}
			s, err := e.renderNested(elem, line, file, seen)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		b.WriteString("]")

		delete(seen, mark)
		return b.String(), nil
	case KindRecord:
		mark := renderMark{KindRecord, v.Handle}
		if seen[mark] {
			return "", diagnostics.NewRuntimeError(line, file, "চক্রাকার %s দেখানো যায় না", v.Kind.TypeName())
		}
		seen[mark] = true

		fields := e.heap.Record(v.Handle)
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString("@{")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("\"")
			b.WriteString(k)
			b.WriteString("\" -> ")
			s, err := e.renderNested(fields[k], line, file, seen)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		b.WriteString("}")

		delete(seen, mark)
		return b.String(), nil
	default:
		return "", diagnostics.NewTypeError(line, file, "%s দেখানো যায় না", v.Kind.TypeName())
	}
}

func (e *Evaluator) renderNested(v Value, line int, file string, seen map[renderMark]bool) (string, *diagnostics.Error) {
	if v.Kind == KindString {
		return "\"" + v.Str + "\"", nil
	}
	return e.renderValue(v, line, file, seen)
}
