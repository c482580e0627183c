/*
Package tagged implements a reversible, shallow transform between a
"source" value domain (e.g. your own structs) and plain keyed
containers (map[string]any, []any) that are safe to pass through
generic serializers such as JSON.

A Codec is built once from a Config describing a single source/plain
pair: a predicate that recognizes source values, a pair of conversion
functions, and a Tag. Encode converts a recognized source value to its
plain form and records the conversion by injecting the tag pair at the
top level; Decode recognizes the tag, strips it, and converts back.

Example of an error-like round trip:

	type Fault struct {
		Name    string
		Message string
	}

	c, err := tagged.New(tagged.Config[*Fault]{
		Match: func(v any) (*Fault, bool) {
			f, ok := v.(*Fault)
			return f, ok
		},
		ToPlain: func(f *Fault) (any, error) {
			return map[string]any{"name": f.Name, "message": f.Message}, nil
		},
		FromPlain: func(v any) (*Fault, error) {
			m := v.(map[string]any)
			name, _ := m["name"].(string)
			msg, _ := m["message"].(string)
			return &Fault{Name: name, Message: msg}, nil
		},
		Tag: tagged.Tag{Key: "$type", Value: "Fault", Escape: "_"},
	})
	if err != nil {
		// handle error
	}

	plain, _ := c.Encode(&Fault{Name: "Fault", Message: "boom"})
	// plain is map[string]any{"$type": "Fault", "name": "Fault", "message": "boom"}

	back, _ := c.Decode(plain)
	// back is an equal *Fault again

Plain containers that merely collide with the tag are protected by
escaping: a top-level key that reads as the tag key (escaped any number
of times) gains one more Escape prefix on Encode and loses exactly one
on Decode, so pre-existing "$type" fields survive a round trip intact
and are never mistaken for the tag.

The transform is deliberately shallow: only the top level of a
container is tagged and escaped, and nested source-typed fields are the
caller's concern. Values that are neither source values nor keyed
containers pass through unchanged. Encode and Decode are pure and safe
for concurrent use; the only shared state is the immutable Config.

The wire subpackage composes a Codec with byte-level formats (JSON,
YAML, CBOR) for end-to-end round trips across a wire.
*/
package tagged
