package config

import "errors"

// ErrIO is returned when the backing resource cannot be read or written.
var ErrIO = errors.New("resource i/o failed")

// ErrParse is returned when the backing document is not valid for the codec.
var ErrParse = errors.New("document parse failed")

// ErrSerialize is returned when the tree holds a value the codec cannot render.
var ErrSerialize = errors.New("document serialize failed")

// ErrEmptyKey is returned when a mutation receives an empty path or an empty segment.
var ErrEmptyKey = errors.New("key must not be empty")

// ErrPathNotFound is returned when a segment does not exist during a non-creating write or delete.
var ErrPathNotFound = errors.New("path segment does not exist")

// ErrTypeMismatch is returned when a segment exists but is not a table, so it cannot be descended.
var ErrTypeMismatch = errors.New("segment is not a table, cannot descend")

// ErrDecode is returned when a located value cannot be bound onto the requested type.
var ErrDecode = errors.New("decoding value failed")
