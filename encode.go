package tagged

import "strconv"

// Encode transforms v into its plain representation.
//
// A source value (per Config.Match) is converted with ToPlain, its
// top-level keys are escaped, and the tag pair is added. Any other
// value passes through with only key escaping applied; if nothing
// needed escaping the original value is returned unchanged, same
// reference included.
//
// Errors from ToPlain propagate unwrapped. The only error Encode
// raises itself is ErrUntaggablePayload.
func (c *Codec[S]) Encode(v any) (any, error) {
	s, isSource := c.cfg.Match(v)
	payload := v
	if isSource {
		p, err := c.cfg.ToPlain(s)
		if err != nil {
			return nil, err
		}
		payload = p
	}
	payload = c.escapeKeys(payload)
	if !isSource {
		return payload, nil
	}

	switch p := payload.(type) {
	case map[string]any:
		out := make(map[string]any, len(p)+1)
		out[c.cfg.Tag.Key] = c.cfg.Tag.Value
		for k, val := range p {
			out[k] = val
		}
		return out, nil
	case []any:
		// A sequence payload is re-keyed by index so the tag has a
		// place to live, matching object-spread semantics.
		out := make(map[string]any, len(p)+1)
		out[c.cfg.Tag.Key] = c.cfg.Tag.Value
		for i, val := range p {
			out[strconv.Itoa(i)] = val
		}
		return out, nil
	default:
		return nil, ErrUntaggablePayload
	}
}

// escapeKeys prefixes one escape rune onto every top-level key that
// reads as the (possibly already escaped) tag key. Sequences have no
// string keys and pass through; so does any map with no key to escape,
// original reference intact.
func (c *Codec[S]) escapeKeys(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	changed := false
	for k := range m {
		if c.tagShaped(k) {
			changed = true
			break
		}
	}
	if !changed {
		return m
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		if c.tagShaped(k) {
			k = c.cfg.Tag.Escape + k
		}
		out[k] = val
	}
	return out
}
