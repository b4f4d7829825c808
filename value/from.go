package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"
)

// ErrUnsupported is returned by From when a Go value has no tree representation.
var ErrUnsupported = errors.New("unsupported value type")

// From converts a native Go value into a Value.
//
// Supported inputs are Value, *Table, string, bool, all integer and float widths,
// time.Time, slices and arrays of supported values, and maps keyed by string.
// Map entries are inserted in sorted key order since Go maps carry no order.
func From(input any) (Value, error) {
	switch typed := input.(type) {
	case Value:
		return typed.Clone(), nil
	case *Table:
		if typed == nil {
			return Value{}, fmt.Errorf("%w: nil table", ErrUnsupported)
		}

		return TableOf(typed.Clone()), nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case time.Time:
		return Datetime(typed), nil
	case nil:
		return Value{}, fmt.Errorf("%w: nil", ErrUnsupported)
	}

	return fromReflect(reflect.ValueOf(input))
}

//nolint:cyclop,exhaustive // reflect kinds not listed are unsupported.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupported, n)
		}

		return Int(int64(n)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())

		for i := range items {
			item, err := From(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}

			items[i] = item
		}

		return Value{kind: SequenceKind, seq: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: map key %s", ErrUnsupported, rv.Type().Key())
		}

		keys := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			keys = append(keys, key.String())
		}

		sort.Strings(keys)

		table := NewTable()

		for _, key := range keys {
			child, err := From(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}

			table.Set(key, child)
		}

		return TableOf(table), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}, fmt.Errorf("%w: nil %s", ErrUnsupported, rv.Type())
		}

		return From(rv.Elem().Interface())
	default:
		if !rv.IsValid() {
			return Value{}, fmt.Errorf("%w: nil", ErrUnsupported)
		}

		return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
	}
}
