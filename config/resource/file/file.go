package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the resource path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// filePerm is applied when Write creates the file. Existing files keep their mode.
const filePerm = 0o600

// File is a configuration document stored on the local filesystem.
type File struct {
	filepath string
}

// New returns a File for fpath. The path is cleaned; nothing is read until Read is called.
func New(fpath string) *File {
	return &File{filepath: filepath.Clean(fpath)}
}

// Path returns the cleaned file path.
func (f *File) Path() string {
	return f.filepath
}

// Read returns the full contents of the file.
// Returns an error if the file cannot be read or if the path points to a directory.
func (f *File) Read() ([]byte, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}

// Write replaces the contents of the file with data, creating it if needed.
func (f *File) Write(data []byte) error {
	stat, err := os.Stat(f.filepath)
	if err == nil && stat.IsDir() {
		return fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	err = os.WriteFile(f.filepath, data, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", f.filepath, err)
	}

	return nil
}
