package value

// Table is a string-keyed map of values that remembers insertion order.
// The zero Table is not usable; create tables with NewTable.
type Table struct {
	keys    []string
	entries map[string]Value
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Value)}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)

	return keys
}

// Lookup returns the entry stored under key.
func (t *Table) Lookup(key string) (Value, bool) {
	v, ok := t.entries[key]

	return v, ok
}

// Set inserts or overwrites the entry under key. An overwritten key keeps its position.
func (t *Table) Set(key string, v Value) {
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}

	t.entries[key] = v
}

// Delete removes key. Removing an absent key is a no-op.
func (t *Table) Delete(key string) {
	if _, exists := t.entries[key]; !exists {
		return
	}

	delete(t.entries, key)

	for i, existing := range t.keys {
		if existing == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)

			break
		}
	}
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := &Table{
		keys:    make([]string, len(t.keys)),
		entries: make(map[string]Value, len(t.entries)),
	}

	copy(out.keys, t.keys)

	for key, v := range t.entries {
		out.entries[key] = v.Clone()
	}

	return out
}
