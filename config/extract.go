package config

import (
	"fmt"
	"time"
)

// GetStr returns the string at path. Other kinds report false.
func (s *Store) GetStr(path string) (string, bool) {
	found, ok := s.lookup(path)
	if !ok {
		return "", false
	}

	return found.AsString()
}

// GetInt returns the integer at path. Floats are not converted.
func (s *Store) GetInt(path string) (int64, bool) {
	found, ok := s.lookup(path)
	if !ok {
		return 0, false
	}

	return found.AsInt()
}

// GetFloat returns the float at path. Integers are not converted.
func (s *Store) GetFloat(path string) (float64, bool) {
	found, ok := s.lookup(path)
	if !ok {
		return 0, false
	}

	return found.AsFloat()
}

// GetBool returns the boolean at path.
func (s *Store) GetBool(path string) (bool, bool) {
	found, ok := s.lookup(path)
	if !ok {
		return false, false
	}

	return found.AsBool()
}

// GetDatetime returns the datetime at path.
func (s *Store) GetDatetime(path string) (time.Time, bool) {
	found, ok := s.lookup(path)
	if !ok {
		return time.Time{}, false
	}

	return found.AsDatetime()
}

// Decode binds the value at path onto target with the store's codec.
// A path that does not resolve wraps ErrPathNotFound; a value that does not fit target
// wraps ErrDecode. The tree is never modified.
func (s *Store) Decode(path string, target any) error {
	found, ok := s.lookup(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}

	err := s.codec.Decode(found.Clone(), target)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrDecode, path, err)
	}

	return nil
}

// GetTyped decodes the value at path into a T. It reports false both when path does not
// resolve and when the value does not fit T; use GetTypedErr to tell them apart.
func GetTyped[T any](s *Store, path string) (T, bool) {
	result, err := GetTypedErr[T](s, path)
	if err != nil {
		return result, false
	}

	return result, true
}

// GetTypedErr decodes the value at path into a T, surfacing ErrPathNotFound or ErrDecode.
func GetTypedErr[T any](s *Store, path string) (T, error) {
	var result T

	err := s.Decode(path, &result)
	if err != nil {
		var zero T

		return zero, err
	}

	return result, nil
}
