package evaluator

import "github.com/pakhi-lang/pakhi/internal/config"

// Kind tags a runtime value.
type Kind uint8

const (
	KindNil Kind = iota
	KindNum
	KindBool
	KindString
	KindList
	KindRecord
	KindFunction
)

// TypeName returns the surface-language name of the kind.
func (k Kind) TypeName() string {
	switch k {
	case KindNum:
		return config.TypeNameNum
	case KindBool:
		return config.TypeNameBool
	case KindString:
		return config.TypeNameString
	case KindList:
		return config.TypeNameList
	case KindRecord:
		return config.TypeNameRecord
	case KindFunction:
		return config.TypeNameFunction
	default:
		return config.TypeNameNil
	}
}

// Value is a tagged union. Lists and records live on the heap and are
// referenced by handle, so copying a Value copies the reference, never the
// container. Functions are referenced by the address of their header
// statement.
type Value struct {
	Kind   Kind
	Num    float64
	Bool   bool
	Str    string
	Handle int
	Fn     int
}

func NilValue() Value          { return Value{Kind: KindNil} }
func NumValue(n float64) Value { return Value{Kind: KindNum, Num: n} }
func BoolValue(b bool) Value   { return Value{Kind: KindBool, Bool: b} }
func StrValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func ListValue(h int) Value    { return Value{Kind: KindList, Handle: h} }
func RecordValue(h int) Value  { return Value{Kind: KindRecord, Handle: h} }
func FuncValue(addr int) Value { return Value{Kind: KindFunction, Fn: addr} }

// Equals compares values of the same kind. Containers compare by handle:
// two lists are equal only when they are the same list.
func (v Value) Equals(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindNum:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	case KindString:
		return v.Str == o.Str
	case KindList, KindRecord:
		return v.Handle == o.Handle
	case KindFunction:
		return v.Fn == o.Fn
	}
	return false
}
