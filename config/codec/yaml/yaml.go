package yaml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/0xalexb/dotconf/value"

	"github.com/goccy/go-yaml"
)

// ErrUnrepresentable is returned when a document or tree holds a value the other side
// cannot express, such as a YAML null or an empty tree node.
var ErrUnrepresentable = errors.New("value cannot be represented")

// Codec converts between YAML documents and value trees.
// It uses goccy/go-yaml ordered maps so mapping keys keep their document order.
type Codec struct{}

// NewCodec creates a new YAML codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the format name.
func (c *Codec) Name() string {
	return "yaml"
}

// Unmarshal parses a YAML document. An empty document yields an empty table.
func (c *Codec) Unmarshal(data []byte) (value.Value, error) {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return value.Value{}, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return value.TableOf(nil), nil
	}

	return convert(raw, nil)
}

// Marshal renders root as a YAML document, keeping table key order.
func (c *Codec) Marshal(root value.Value) ([]byte, error) {
	plain, err := toPlain(root, nil)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Decode binds v onto target using `yaml:"name"` tags, then lower-cased field names.
func (c *Codec) Decode(v value.Value, target any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

//nolint:cyclop // one case per decoded YAML type.
func convert(node any, path []string) (value.Value, error) {
	switch typed := node.(type) {
	case yaml.MapSlice:
		table := value.NewTable()

		for _, item := range typed {
			key := keyString(item.Key)

			child, err := convert(item.Value, append(path[:len(path):len(path)], key))
			if err != nil {
				return value.Value{}, err
			}

			table.Set(key, child)
		}

		return value.TableOf(table), nil
	case []any:
		items := make([]value.Value, 0, len(typed))

		for i, entry := range typed {
			item, err := convert(entry, append(path[:len(path):len(path)], strconv.Itoa(i)))
			if err != nil {
				return value.Value{}, err
			}

			items = append(items, item)
		}

		return value.Seq(items...), nil
	case string:
		return value.String(typed), nil
	case bool:
		return value.Bool(typed), nil
	case int:
		return value.Int(int64(typed)), nil
	case int64:
		return value.Int(typed), nil
	case uint64:
		if typed > math.MaxInt64 {
			return value.Value{}, fmt.Errorf("%w: %d overflows int64 at %q", ErrUnrepresentable, typed, joinPath(path))
		}

		return value.Int(int64(typed)), nil
	case float64:
		return value.Float(typed), nil
	case time.Time:
		return value.Datetime(typed), nil
	case nil:
		return value.Value{}, fmt.Errorf("%w: null at %q", ErrUnrepresentable, joinPath(path))
	default:
		return value.Value{}, fmt.Errorf("%w: %T at %q", ErrUnrepresentable, node, joinPath(path))
	}
}

func toPlain(v value.Value, path []string) (any, error) {
	switch v.Kind() {
	case value.TableKind:
		table, _ := v.AsTable()
		slice := make(yaml.MapSlice, 0, table.Len())

		for _, key := range table.Keys() {
			child, _ := table.Lookup(key)

			plain, err := toPlain(child, append(path[:len(path):len(path)], key))
			if err != nil {
				return nil, err
			}

			slice = append(slice, yaml.MapItem{Key: key, Value: plain})
		}

		return slice, nil
	case value.SequenceKind:
		items, _ := v.AsSeq()
		out := make([]any, 0, len(items))

		for i, item := range items {
			plain, err := toPlain(item, append(path[:len(path):len(path)], strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}

			out = append(out, plain)
		}

		return out, nil
	case value.DatetimeKind:
		when, _ := v.AsDatetime()

		return timestamp(when), nil
	case value.StringKind, value.IntegerKind, value.FloatKind, value.BoolKind:
		return v.Interface(), nil
	case value.Invalid:
		return nil, fmt.Errorf("%w: empty value at %q", ErrUnrepresentable, joinPath(path))
	default:
		return nil, fmt.Errorf("%w: %s at %q", ErrUnrepresentable, v.Kind(), joinPath(path))
	}
}

// timestamp renders with an explicit !!timestamp tag; an untagged RFC 3339 scalar
// decodes back as a string.
type timestamp time.Time

// MarshalYAML implements yaml.BytesMarshaler.
func (t timestamp) MarshalYAML() ([]byte, error) {
	return []byte("!!timestamp " + time.Time(t).Format(time.RFC3339Nano)), nil
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}

	return fmt.Sprint(key)
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
