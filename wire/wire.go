// Package wire carries tagged values across byte-level serialization
// formats. A Format turns plain values into bytes and back; Marshal
// and Unmarshal compose a tagged.Codec with a Format so source values
// survive a full trip over a wire.
package wire

import (
	"github.com/KimNorgaard/go-tagged"
)

// Format is a byte-level serialization format for plain values. A
// Format must decode keyed containers as map[string]any and sequences
// as []any, the container types the codec operates on.
type Format interface {
	// Name returns a short identifier, e.g. "json".
	Name() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into *v.
	Unmarshal(data []byte, v *any) error
}

// Marshal encodes v with c and serializes the result with f.
func Marshal[S any](c *tagged.Codec[S], f Format, v any) ([]byte, error) {
	plain, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return f.Marshal(plain)
}

// Unmarshal deserializes data with f and decodes the result with c.
// The returned value is a source value if the data carried the tag,
// and the deserialized plain value otherwise.
func Unmarshal[S any](c *tagged.Codec[S], f Format, data []byte) (any, error) {
	var plain any
	if err := f.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return c.Decode(plain)
}
