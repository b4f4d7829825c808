// Package yaml provides a YAML document codec for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered maps (yaml.MapSlice), so mapping
// keys keep their document order through a load/save cycle.
//
// Usage:
//
//	codec := yaml.NewCodec()
//	root, err := codec.Unmarshal(data)
//
// Limitations:
//   - YAML null has no tree representation and fails to parse
//   - Timestamps are kept as strings unless the decoder yields time.Time
//   - Non-string mapping keys are converted with fmt.Sprint
package yaml
