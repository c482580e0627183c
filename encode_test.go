package tagged_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/KimNorgaard/go-tagged"
	"github.com/stretchr/testify/require"
)

// requireSameRef asserts that got is the very same map or slice as
// want, not a copy.
func requireSameRef(t *testing.T, want, got any) {
	t.Helper()
	require.Equal(t, reflect.ValueOf(want).Pointer(), reflect.ValueOf(got).Pointer(),
		"expected the original reference to be returned unchanged")
}

func TestEncode_TagInsertion(t *testing.T) {
	c := faultCodec(t)

	out, err := c.Encode(&fault{Name: "Error", Message: "boom", Stack: "main.go:1"})
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"$type":   "Error",
		"name":    "Error",
		"message": "boom",
		"stack":   "main.go:1",
	}, out)
}

func TestEncode_PassThrough(t *testing.T) {
	c := faultCodec(t)

	t.Run("primitives", func(t *testing.T) {
		for _, v := range []any{nil, true, 42, 2.5, "hello"} {
			out, err := c.Encode(v)
			require.NoError(t, err)
			require.Equal(t, v, out)
		}
	})

	t.Run("map without collisions keeps its reference", func(t *testing.T) {
		m := map[string]any{"age": 12, "name": "x"}
		out, err := c.Encode(m)
		require.NoError(t, err)
		requireSameRef(t, m, out)
	})

	t.Run("sequence keeps its reference", func(t *testing.T) {
		s := []any{1, "two", map[string]any{"three": 3}}
		out, err := c.Encode(s)
		require.NoError(t, err)
		requireSameRef(t, s, out)
	})
}

func TestEncode_CollisionEscaping(t *testing.T) {
	c := faultCodec(t)

	in := map[string]any{"$type": 1, "age": 12}
	out, err := c.Encode(in)
	require.NoError(t, err)

	require.Equal(t, map[string]any{"_$type": 1, "age": 12}, out)
	// The input must not be mutated.
	require.Equal(t, map[string]any{"$type": 1, "age": 12}, in)
}

func TestEncode_EscapeDepth(t *testing.T) {
	c := faultCodec(t)

	tests := []struct {
		in, want string
	}{
		{"$type", "_$type"},
		{"_$type", "__$type"},
		{"____$type", "_____$type"},
		// Not tag-shaped: untouched.
		{"x$type", "x$type"},
		{"$typex", "$typex"},
		{"_x$type", "_x$type"},
		{"type", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := c.Encode(map[string]any{tt.in: true})
			require.NoError(t, err)
			require.Equal(t, map[string]any{tt.want: true}, out)
		})
	}
}

func TestEncode_SourceWithCollidingPayload(t *testing.T) {
	// A ToPlain that itself emits a key equal to the tag key: escaping
	// runs before tag insertion, so the two never collide.
	cfg := faultConfig()
	cfg.ToPlain = func(f *fault) (any, error) {
		return map[string]any{"$type": "shadow", "name": f.Name}, nil
	}
	c, err := tagged.New(cfg)
	require.NoError(t, err)

	out, err := c.Encode(&fault{Name: "E"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"$type":  "Error",
		"_$type": "shadow",
		"name":   "E",
	}, out)
}

func TestEncode_SequencePayload(t *testing.T) {
	cfg := faultConfig()
	cfg.ToPlain = func(f *fault) (any, error) {
		return []any{f.Name, f.Message}, nil
	}
	c, err := tagged.New(cfg)
	require.NoError(t, err)

	out, err := c.Encode(&fault{Name: "E", Message: "boom"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"$type": "Error",
		"0":     "E",
		"1":     "boom",
	}, out)
}

func TestEncode_UntaggablePayload(t *testing.T) {
	cfg := faultConfig()
	cfg.ToPlain = func(f *fault) (any, error) { return f.Message, nil }
	c, err := tagged.New(cfg)
	require.NoError(t, err)

	_, err = c.Encode(&fault{Message: "boom"})
	require.ErrorIs(t, err, tagged.ErrUntaggablePayload)
}

func TestEncode_ToPlainErrorPropagates(t *testing.T) {
	sentinel := errors.New("conversion refused")
	cfg := faultConfig()
	cfg.ToPlain = func(f *fault) (any, error) { return nil, sentinel }
	c, err := tagged.New(cfg)
	require.NoError(t, err)

	_, err = c.Encode(&fault{})
	require.ErrorIs(t, err, sentinel)
}
