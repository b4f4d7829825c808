package config

import (
	"path/filepath"
	"strings"

	tomlcodec "github.com/0xalexb/dotconf/config/codec/toml"
	yamlcodec "github.com/0xalexb/dotconf/config/codec/yaml"
)

// CodecFor picks a codec from the file extension of path.
// ".yaml" and ".yml" select YAML; every other extension, ".conf" included, selects TOML.
//
//nolint:ireturn // the codec is chosen at runtime.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlcodec.NewCodec()
	default:
		return tomlcodec.NewCodec()
	}
}
