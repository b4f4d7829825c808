package value

import "math"

// Equal reports whether a and b hold the same content. Table key order is ignored;
// sequence order is not. Datetimes compare by instant and location name; two NaN floats
// are equal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case TableKind:
		return tablesEqual(a.table, b.table)
	case SequenceKind:
		if len(a.seq) != len(b.seq) {
			return false
		}

		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}

		return true
	case StringKind:
		return a.str == b.str
	case IntegerKind:
		return a.num == b.num
	case FloatKind:
		if math.IsNaN(a.flt) && math.IsNaN(b.flt) {
			return true
		}

		return a.flt == b.flt
	case BoolKind:
		return a.flag == b.flag
	case DatetimeKind:
		return a.when.Equal(b.when) && a.when.Location().String() == b.when.Location().String()
	case Invalid:
		return true
	default:
		return false
	}
}

func tablesEqual(a, b *Table) bool {
	if a.Len() != b.Len() {
		return false
	}

	for key, av := range a.entries {
		bv, ok := b.entries[key]
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}
