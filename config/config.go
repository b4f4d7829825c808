package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/dotconf/value"
)

// Codec defines the document format collaborator of a Store.
//
// Unmarshal parses a whole document into a tree, Marshal renders a tree back into a
// document, and Decode binds a detached subtree onto a caller-supplied target using the
// format's field-name mapping. See config/codec/toml and config/codec/yaml.
type Codec interface {
	Name() string
	Unmarshal(data []byte) (value.Value, error)
	Marshal(root value.Value) ([]byte, error)
	Decode(v value.Value, target any) error
}

// Resource defines the backing storage of a Store: one full read at load time, one full
// write at save time. See config/resource/file.
type Resource interface {
	Path() string
	Read() ([]byte, error)
	Write(data []byte) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that decodes the section at path of a loaded Store into
// target, sets defaults, and validates it. An empty path decodes the whole document.
func Provider[T any](target *T, path string) func(*Store) (*T, error) {
	return func(store *Store) (*T, error) {
		err := store.Decode(path, target)
		if err != nil {
			return nil, fmt.Errorf("decoding section error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				store.logger.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
