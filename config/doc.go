// Package config provides a hierarchical configuration store addressed with dotted paths.
//
// A Store loads one document (TOML or YAML) into a value.Value tree and keeps it bound to
// its file. The package uses an interface-based design with four extension points:
//   - Codec: parses and renders the document format, and binds subtrees onto Go types
//   - Resource: reads and writes the backing document
//   - Validator: validates a section after it was decoded by Provider
//   - Defaulter: applies default values before validation
//
// # Paths
//
// Paths use dot (.) as the separator:
//
//	"server.port"          -> root["server"]["port"]
//	"database.pool.size"   -> root["database"]["pool"]["size"]
//	""                     -> the whole document (reads only)
//
// Reads (Get, GetStr, GetTyped, ...) never fail; they report false when a path does not
// resolve. Mutations differ in how they treat missing parents:
//   - Set fails with ErrPathNotFound, so a typo cannot create structure
//   - Create inserts empty tables for missing parents
//   - Delete fails like Set on missing parents but ignores a missing last segment
//
// All three fail with ErrEmptyKey on an empty path or an empty segment ("a..b"), and
// with ErrTypeMismatch when a parent exists but is not a table.
//
// # Persistence
//
// Changes live in memory until Save rewrites the file in full. There is no atomic rename,
// so a failed write may leave the file truncated.
//
// # Example
//
// A typical usage pattern:
//
//	type DatabaseConfig struct {
//	    Host string `toml:"host"`
//	    Port int    `toml:"port"`
//	}
//
//	store, err := config.Load("config.toml")
//	db, ok := config.GetTyped[DatabaseConfig](store, "database")
//	err = store.Set("database.port", value.Int(5432))
//	err = store.Save()
package config
