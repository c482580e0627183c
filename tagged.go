package tagged

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Tag is the reserved key/value pair that marks a plain container as
// the encoding of a source value.
type Tag struct {
	// Key is the reserved container key, e.g. "$type".
	Key string

	// Value is the discriminant stored under Key. It must be a string,
	// a number, or nil. Decode compares it with strict equality, so a
	// numeric discriminant must match the number type the wire format
	// decodes to (JSON decodes every number as float64).
	Value any

	// Escape is the single-rune prefix used to disambiguate container
	// keys that collide with Key.
	Escape string
}

// Config describes one source/plain conversion pair. All fields are
// required; New validates them.
type Config[S any] struct {
	// Match reports whether v is a source value, returning it typed.
	// It must be total and side-effect free.
	Match func(v any) (S, bool)

	// ToPlain converts a source value to its plain representation,
	// normally a map[string]any. It need not add the tag or escape any
	// keys; the codec does both.
	ToPlain func(s S) (any, error)

	// FromPlain is the inverse of ToPlain. It receives the plain value
	// with the tag already stripped and keys already unescaped.
	FromPlain func(v any) (S, error)

	Tag Tag
}

// ErrUntaggablePayload is returned by Encode when ToPlain produces a
// value that is not a keyed container; such a payload has no place to
// carry the tag.
var ErrUntaggablePayload = errors.New("tagged: payload from ToPlain is not a keyed container")

// Codec transforms values between the source and plain domains as
// described by its Config. A Codec holds no mutable state and is safe
// for concurrent use.
type Codec[S any] struct {
	cfg Config[S]
}

// New returns a Codec for the given configuration.
func New[S any](cfg Config[S]) (*Codec[S], error) {
	if cfg.Match == nil {
		return nil, fmt.Errorf("tagged: Match is required")
	}
	if cfg.ToPlain == nil {
		return nil, fmt.Errorf("tagged: ToPlain is required")
	}
	if cfg.FromPlain == nil {
		return nil, fmt.Errorf("tagged: FromPlain is required")
	}
	if cfg.Tag.Key == "" {
		return nil, fmt.Errorf("tagged: tag key must not be empty")
	}
	if utf8.RuneCountInString(cfg.Tag.Escape) != 1 {
		return nil, fmt.Errorf("tagged: tag escape must be a single rune, got %q", cfg.Tag.Escape)
	}
	switch cfg.Tag.Value.(type) {
	case nil, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
	default:
		return nil, fmt.Errorf("tagged: tag value must be a string, a number, or nil, got %T", cfg.Tag.Value)
	}
	return &Codec[S]{cfg: cfg}, nil
}

// tagShaped reports whether k is the tag key prefixed by zero or more
// escape runes. Such keys must gain one escape on encode (and lose one
// on decode) so they can never be confused with the tag itself.
func (c *Codec[S]) tagShaped(k string) bool {
	key, esc := c.cfg.Tag.Key, c.cfg.Tag.Escape
	n := len(k) - len(key)
	if n < 0 || k[n:] != key || n%len(esc) != 0 {
		return false
	}
	for i := 0; i < n; i += len(esc) {
		if k[i:i+len(esc)] != esc {
			return false
		}
	}
	return true
}
