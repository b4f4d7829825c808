package toml

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/0xalexb/dotconf/value"

	"github.com/BurntSushi/toml"
)

// ErrRootNotTable is returned when a non-table value is serialised as a document.
var ErrRootNotTable = errors.New("document root must be a table")

// ErrUnrepresentable is returned when the tree holds a value TOML cannot express.
var ErrUnrepresentable = errors.New("value cannot be represented in TOML")

// wrapperKey holds a detached subtree while it is decoded into a caller's type.
const wrapperKey = "value"

// Codec converts between TOML documents and value trees.
type Codec struct {
	indent string
}

// NewCodec creates a TOML codec that indents nested tables with two spaces.
func NewCodec() *Codec {
	return &Codec{indent: "  "}
}

// WithIndent returns a copy of the codec that indents nested tables with indent.
func (c *Codec) WithIndent(indent string) *Codec {
	return &Codec{indent: indent}
}

// Name returns the format name.
func (c *Codec) Name() string {
	return "toml"
}

// Unmarshal parses a TOML document. Keys keep the order they appear in the document.
// An empty document yields an empty table.
func (c *Codec) Unmarshal(data []byte) (value.Value, error) {
	var raw map[string]any

	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return value.Value{}, fmt.Errorf("decode toml: %w", err)
	}

	order := keyOrder(meta.Keys())

	return convert(raw, nil, order)
}

// Marshal renders root as a TOML document. Keys inside a table are emitted in the
// encoder's order: plain values first, then sub-tables, each group sorted.
func (c *Codec) Marshal(root value.Value) ([]byte, error) {
	if !root.IsTable() {
		return nil, fmt.Errorf("%w: got %s", ErrRootNotTable, root.Kind())
	}

	err := check(root, nil)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.Indent = c.indent

	err = enc.Encode(root.Interface())
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode binds v onto target using the TOML field mapping: `toml:"name"` tags, then
// case-insensitive field names. Fields absent from v keep their current values.
func (c *Codec) Decode(v value.Value, target any) error {
	err := check(v, nil)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = toml.NewEncoder(&buf).Encode(map[string]any{wrapperKey: v.Interface()})
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}

	var doc struct {
		Value toml.Primitive `toml:"value"`
	}

	meta, err := toml.Decode(buf.String(), &doc)
	if err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}

	err = meta.PrimitiveDecode(doc.Value, target)
	if err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}

	return nil
}

// keyOrder maps every table path to its child keys in document order.
func keyOrder(keys []toml.Key) map[string][]string {
	order := make(map[string][]string)
	seen := make(map[string]bool)

	for _, key := range keys {
		for i := range key {
			parent := pathID(key[:i])
			if seen[parent+"\x00"+key[i]] {
				continue
			}

			seen[parent+"\x00"+key[i]] = true
			order[parent] = append(order[parent], key[i])
		}
	}

	return order
}

func pathID(path []string) string {
	return strconv.Itoa(len(path)) + ":" + strings.Join(path, "\x1f")
}

//nolint:cyclop // one case per decoded TOML type.
func convert(node any, path []string, order map[string][]string) (value.Value, error) {
	switch typed := node.(type) {
	case map[string]any:
		return convertTable(typed, path, order)
	case []map[string]any:
		items := make([]value.Value, 0, len(typed))

		for _, entry := range typed {
			item, err := convertTable(entry, path, order)
			if err != nil {
				return value.Value{}, err
			}

			items = append(items, item)
		}

		return value.Seq(items...), nil
	case []any:
		items := make([]value.Value, 0, len(typed))

		for _, entry := range typed {
			item, err := convert(entry, path, order)
			if err != nil {
				return value.Value{}, err
			}

			items = append(items, item)
		}

		return value.Seq(items...), nil
	case string:
		return value.String(typed), nil
	case int64:
		return value.Int(typed), nil
	case float64:
		return value.Float(typed), nil
	case bool:
		return value.Bool(typed), nil
	case time.Time:
		return value.Datetime(typed), nil
	case nil:
		if path == nil {
			return value.TableOf(nil), nil
		}

		return value.Value{}, fmt.Errorf("%w: null at %q", ErrUnrepresentable, strings.Join(path, "."))
	default:
		return value.Value{}, fmt.Errorf("%w: %T at %q", ErrUnrepresentable, node, strings.Join(path, "."))
	}
}

func convertTable(raw map[string]any, path []string, order map[string][]string) (value.Value, error) {
	table := value.NewTable()

	for _, key := range orderedKeys(raw, order[pathID(path)]) {
		child, err := convert(raw[key], append(path[:len(path):len(path)], key), order)
		if err != nil {
			return value.Value{}, err
		}

		table.Set(key, child)
	}

	return value.TableOf(table), nil
}

// orderedKeys lists the keys of raw in document order; keys the metadata did not
// report follow in sorted order.
func orderedKeys(raw map[string]any, known []string) []string {
	keys := make([]string, 0, len(raw))
	used := make(map[string]bool, len(raw))

	for _, key := range known {
		if _, ok := raw[key]; ok && !used[key] {
			keys = append(keys, key)
			used[key] = true
		}
	}

	var rest []string

	for key := range raw {
		if !used[key] {
			rest = append(rest, key)
		}
	}

	sort.Strings(rest)

	return append(keys, rest...)
}

// check rejects invalid values anywhere under v.
func check(v value.Value, path []string) error {
	switch v.Kind() {
	case value.Invalid:
		return fmt.Errorf("%w: empty value at %q", ErrUnrepresentable, strings.Join(path, "."))
	case value.TableKind:
		table, _ := v.AsTable()

		for _, key := range table.Keys() {
			child, _ := table.Lookup(key)

			err := check(child, append(path[:len(path):len(path)], key))
			if err != nil {
				return err
			}
		}
	case value.SequenceKind:
		items, _ := v.AsSeq()

		for i, item := range items {
			err := check(item, append(path[:len(path):len(path)], strconv.Itoa(i)))
			if err != nil {
				return err
			}
		}
	case value.StringKind, value.IntegerKind, value.FloatKind, value.BoolKind, value.DatetimeKind:
	}

	return nil
}
