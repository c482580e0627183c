package wire

import (
	"gopkg.in/yaml.v3"
)

// YAML is the YAML format. yaml.v3 decodes mappings with string keys
// as map[string]any and sequences as []any, matching the codec's
// container types.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (YAML) Unmarshal(data []byte, v *any) error { return yaml.Unmarshal(data, v) }
