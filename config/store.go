package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/dotconf/config/resource/file"
	"github.com/0xalexb/dotconf/value"
)

// Store holds one configuration tree bound to one backing resource.
//
// The tree is only written back by Save; dropping a Store discards unsaved changes.
// A Store does no internal locking: callers sharing one across goroutines must guard
// every call, reads included, with their own lock.
type Store struct {
	root     value.Value
	resource Resource
	codec    Codec
	pinned   bool
	logger   *slog.Logger
}

// Load reads the file at path and parses it into a new Store.
// The codec is chosen from the file extension unless WithCodec is given.
func Load(path string, opts ...Option) (*Store, error) {
	return LoadResource(file.New(path), opts...)
}

// LoadResource reads res in full and parses it into a new Store.
// Read failures wrap ErrIO and invalid documents wrap ErrParse; no Store is returned either way.
func LoadResource(res Resource, opts ...Option) (*Store, error) {
	cfg := applyOptions(res.Path(), opts)

	data, err := res.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	root, err := cfg.codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %w", ErrParse, cfg.codec.Name(), res.Path(), err)
	}

	if !root.IsTable() {
		return nil, fmt.Errorf("%w: %q: document root is a %s, not a table", ErrParse, res.Path(), root.Kind())
	}

	cfg.logger.Info("config loaded",
		slog.String("path", res.Path()),
		slog.String("format", cfg.codec.Name()),
		slog.Int("keys", rootLen(root)),
	)

	return &Store{
		root:     root,
		resource: res,
		codec:    cfg.codec,
		pinned:   cfg.pinned,
		logger:   cfg.logger,
	}, nil
}

// New creates a Store bound to path around root without reading the file.
// root must be a table; pass value.TableOf(nil) for an empty document.
func New(path string, root value.Value, opts ...Option) (*Store, error) {
	if !root.IsTable() {
		return nil, fmt.Errorf("%w: root is a %s", ErrTypeMismatch, root.Kind())
	}

	cfg := applyOptions(path, opts)

	return &Store{
		root:     root.Clone(),
		resource: file.New(path),
		codec:    cfg.codec,
		pinned:   cfg.pinned,
		logger:   cfg.logger,
	}, nil
}

// Save serialises the tree and overwrites the backing resource in full.
// Codec failures wrap ErrSerialize; write failures wrap ErrIO and may leave the
// resource truncated.
func (s *Store) Save() error {
	return s.writeTo(s.resource, s.codec)
}

// SaveAs writes the tree to the file at path, then binds the store to that file.
// The format follows the extension of path, as in Load, unless WithCodec pinned one.
// On failure the store keeps its previous file and codec.
func (s *Store) SaveAs(path string) error {
	codec := s.codec
	if !s.pinned {
		codec = CodecFor(path)
	}

	res := file.New(path)

	err := s.writeTo(res, codec)
	if err != nil {
		return err
	}

	s.resource = res
	s.codec = codec

	return nil
}

func (s *Store) writeTo(res Resource, codec Codec) error {
	data, err := codec.Marshal(s.root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSerialize, codec.Name(), err)
	}

	err = res.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	s.logger.Info("config saved",
		slog.String("path", res.Path()),
		slog.String("format", codec.Name()),
		slog.Int("bytes", len(data)),
	)

	return nil
}

// Path returns the path of the backing resource.
func (s *Store) Path() string {
	return s.resource.Path()
}

// Root returns a copy of the whole tree.
func (s *Store) Root() value.Value {
	return s.root.Clone()
}

func rootLen(root value.Value) int {
	table, ok := root.AsTable()
	if !ok {
		return 0
	}

	return table.Len()
}
