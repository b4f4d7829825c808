// Package toml provides the TOML document codec for the config package.
//
// This package uses github.com/BurntSushi/toml. Parsing keeps the key order reported by
// the decoder's metadata; serialising follows the encoder's layout (plain keys before
// sub-tables, each group sorted), so a load/save cycle preserves content but may reorder keys.
//
// Usage:
//
//	codec := toml.NewCodec()
//	root, err := codec.Unmarshal([]byte("[server]\nport = 8080\n"))
//	data, err := codec.Marshal(root)
//
// Typed decoding goes through a toml.Primitive, so target structs use the usual
// `toml:"name"` tags:
//
//	var srv struct {
//	    Port int `toml:"port"`
//	}
//	err := codec.Decode(section, &srv)
package toml
