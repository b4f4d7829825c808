package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds. The zero Kind is Invalid.
const (
	Invalid Kind = iota
	TableKind
	SequenceKind
	StringKind
	IntegerKind
	FloatKind
	BoolKind
	DatetimeKind
)

func (k Kind) String() string {
	switch k {
	case TableKind:
		return "table"
	case SequenceKind:
		return "sequence"
	case StringKind:
		return "string"
	case IntegerKind:
		return "integer"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case DatetimeKind:
		return "datetime"
	case Invalid:
		return "invalid"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node of the configuration tree.
type Value struct {
	kind  Kind
	str   string
	num   int64
	flt   float64
	flag  bool
	when  time.Time
	seq   []Value
	table *Table
}

// String returns a string scalar.
func String(s string) Value {
	return Value{kind: StringKind, str: s}
}

// Int returns an integer scalar.
func Int(n int64) Value {
	return Value{kind: IntegerKind, num: n}
}

// Float returns a float scalar.
func Float(f float64) Value {
	return Value{kind: FloatKind, flt: f}
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	return Value{kind: BoolKind, flag: b}
}

// Datetime returns a datetime scalar.
func Datetime(t time.Time) Value {
	return Value{kind: DatetimeKind, when: t}
}

// Seq returns a sequence holding items in order.
func Seq(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)

	return Value{kind: SequenceKind, seq: seq}
}

// TableOf wraps t in a Value. A nil t is replaced with an empty table.
func TableOf(t *Table) Value {
	if t == nil {
		t = NewTable()
	}

	return Value{kind: TableKind, table: t}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds any variant.
func (v Value) IsValid() bool {
	return v.kind != Invalid
}

// IsTable reports whether v is a table.
func (v Value) IsTable() bool {
	return v.kind == TableKind
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == StringKind
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == IntegerKind
}

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.kind == FloatKind
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == BoolKind
}

// AsDatetime returns the datetime held by v.
func (v Value) AsDatetime() (time.Time, bool) {
	return v.when, v.kind == DatetimeKind
}

// AsSeq returns the items of a sequence. The slice is shared with v.
func (v Value) AsSeq() ([]Value, bool) {
	if v.kind != SequenceKind {
		return nil, false
	}

	return v.seq, true
}

// AsTable returns the table held by v. The table is shared with v.
func (v Value) AsTable() (*Table, bool) {
	if v.kind != TableKind {
		return nil, false
	}

	return v.table, true
}

// Child returns the entry stored under key when v is a table holding key.
func (v Value) Child(key string) (Value, bool) {
	if v.kind != TableKind {
		return Value{}, false
	}

	return v.table.Lookup(key)
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case TableKind:
		return Value{kind: TableKind, table: v.table.Clone()}
	case SequenceKind:
		seq := make([]Value, len(v.seq))
		for i, item := range v.seq {
			seq[i] = item.Clone()
		}

		return Value{kind: SequenceKind, seq: seq}
	case Invalid, StringKind, IntegerKind, FloatKind, BoolKind, DatetimeKind:
		return v
	default:
		return v
	}
}

// Interface converts v to plain Go values: map[string]any for tables, []any for
// sequences, and string, int64, float64, bool or time.Time for scalars.
// Invalid values convert to nil.
func (v Value) Interface() any {
	switch v.kind {
	case TableKind:
		out := make(map[string]any, v.table.Len())
		for _, key := range v.table.Keys() {
			child, _ := v.table.Lookup(key)
			out[key] = child.Interface()
		}

		return out
	case SequenceKind:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}

		return out
	case StringKind:
		return v.str
	case IntegerKind:
		return v.num
	case FloatKind:
		return v.flt
	case BoolKind:
		return v.flag
	case DatetimeKind:
		return v.when
	case Invalid:
		return nil
	default:
		return nil
	}
}

// String renders v for debugging. The output is not a document format.
func (v Value) String() string {
	var builder strings.Builder

	v.write(&builder)

	return builder.String()
}

func (v Value) write(builder *strings.Builder) {
	switch v.kind {
	case TableKind:
		builder.WriteByte('{')

		for i, key := range v.table.Keys() {
			if i > 0 {
				builder.WriteString(", ")
			}

			child, _ := v.table.Lookup(key)
			builder.WriteString(strconv.Quote(key))
			builder.WriteString(": ")
			child.write(builder)
		}

		builder.WriteByte('}')
	case SequenceKind:
		builder.WriteByte('[')

		for i, item := range v.seq {
			if i > 0 {
				builder.WriteString(", ")
			}

			item.write(builder)
		}

		builder.WriteByte(']')
	case StringKind:
		builder.WriteString(strconv.Quote(v.str))
	case IntegerKind:
		builder.WriteString(strconv.FormatInt(v.num, 10))
	case FloatKind:
		builder.WriteString(strconv.FormatFloat(v.flt, 'g', -1, 64))
	case BoolKind:
		builder.WriteString(strconv.FormatBool(v.flag))
	case DatetimeKind:
		builder.WriteString(v.when.Format(time.RFC3339Nano))
	case Invalid:
		builder.WriteString("<invalid>")
	default:
		fmt.Fprintf(builder, "<%s>", v.kind)
	}
}
