package bytecode

import "strconv"

type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindFunction
)

// Value is the runtime value: a tagged union of boolean, number, string
// and the reserved function variant. The zero Value is the boolean
// false, which doubles as the canonical nil.
type Value struct {
	Kind Kind
	B    bool
	Num  float64
	Str  string
	Fn   *Function
}

// Function is a compiled callable. The variant is reserved: neither the
// compiler nor the VM produce or consume it yet, there is no call
// opcode and no call-frame stack.
type Function struct {
	Name  string
	Arity int
	Chunk *Chunk
}

// Boolean wraps a bool as a Value
func Boolean(b bool) Value {
	return Value{Kind: KindBool, B: b}
}

// Number wraps a float64 as a Value
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// String wraps a string as a Value
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Nil is the value an uninitialized variable holds
func Nil() Value {
	return Value{}
}

// Equal reports structural equality. Values of different kinds are
// never equal; functions compare by identity.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindBool:
		return v.B == o.B
	case KindNumber:
		return v.Num == o.Num
	case KindString:
		return v.Str == o.Str
	case KindFunction:
		return v.Fn == o.Fn
	default:
		return false
	}
}

// Falsey reports whether the value is treated as false in conditions:
// only the boolean false and the number 0 are falsey. Every string,
// the empty one included, is truthy.
func (v Value) Falsey() bool {
	switch v.Kind {
	case KindBool:
		return !v.B
	case KindNumber:
		return v.Num == 0
	default:
		return false
	}
}

// String renders the value's textual form, as printed by the print
// statement and the disassembler.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindFunction:
		if v.Fn == nil || v.Fn.Name == "" {
			return "<fn>"
		}
		return "<fn " + v.Fn.Name + ">"
	default:
		return "<invalid>"
	}
}
