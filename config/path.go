package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/dotconf/value"
)

const separator = "."

// splitPath breaks a dotted path into segments. The empty path has no segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, separator)
}

// segmentsOf splits path for a mutation, rejecting empty paths and empty segments.
func segmentsOf(path string) ([]string, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, ErrEmptyKey
	}

	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: segment %d of %q", ErrEmptyKey, i, path)
		}
	}

	return segments, nil
}

// lookup walks path from the root. The empty path resolves to the root itself.
// The returned value shares tables with the tree.
func (s *Store) lookup(path string) (value.Value, bool) {
	current := s.root

	for _, segment := range splitPath(path) {
		child, ok := current.Child(segment)
		if !ok {
			return value.Value{}, false
		}

		current = child
	}

	return current, true
}

// parent resolves the table that holds the last segment, re-entering each level by key.
// With create set, absent levels are filled with empty tables; levels inserted before a
// later failure are kept.
func (s *Store) parent(path string, segments []string, create bool) (*value.Table, error) {
	table, _ := s.root.AsTable()

	for i, segment := range segments[:len(segments)-1] {
		reached := strings.Join(segments[:i+1], separator)

		child, ok := table.Lookup(segment)
		if !ok {
			if !create {
				return nil, fmt.Errorf("%w: %q in %q", ErrPathNotFound, reached, path)
			}

			next := value.NewTable()
			table.Set(segment, value.TableOf(next))
			table = next

			continue
		}

		next, isTable := child.AsTable()
		if !isTable {
			return nil, fmt.Errorf("%w: %q is a %s in %q", ErrTypeMismatch, reached, child.Kind(), path)
		}

		table = next
	}

	return table, nil
}

// Get returns a copy of the value at path. The empty path returns the whole tree.
// Any segment that does not resolve, including descent through a non-table, reports false.
func (s *Store) Get(path string) (value.Value, bool) {
	found, ok := s.lookup(path)
	if !ok {
		return value.Value{}, false
	}

	return found.Clone(), true
}

// Set stores v at path. Every parent of the last segment must already exist and be a table.
// An existing entry is replaced whatever its kind.
func (s *Store) Set(path string, v value.Value) error {
	return s.write(path, v, false)
}

// Create stores v at path, inserting empty tables for missing parents.
// An existing non-table parent still fails with ErrTypeMismatch.
func (s *Store) Create(path string, v value.Value) error {
	return s.write(path, v, true)
}

func (s *Store) write(path string, v value.Value, create bool) error {
	segments, err := segmentsOf(path)
	if err != nil {
		return err
	}

	table, err := s.parent(path, segments, create)
	if err != nil {
		return err
	}

	table.Set(segments[len(segments)-1], v.Clone())

	s.logger.Debug("config value set",
		slog.String("path", path),
		slog.String("kind", v.Kind().String()),
		slog.Bool("create", create),
	)

	return nil
}

// Delete removes the entry at path. Parents must exist and be tables; a missing last
// segment is not an error.
func (s *Store) Delete(path string) error {
	segments, err := segmentsOf(path)
	if err != nil {
		return err
	}

	table, err := s.parent(path, segments, false)
	if err != nil {
		return err
	}

	table.Delete(segments[len(segments)-1])

	s.logger.Debug("config value deleted", slog.String("path", path))

	return nil
}
