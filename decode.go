package tagged

// Decode reverses Encode.
//
// A map carrying the tag pair (key present, value strictly equal to
// the configured discriminant) is stripped of the tag, its keys are
// unescaped, and the result is handed to FromPlain. Any other map has
// one level of key escaping removed. Everything else, sequences
// included, passes through unchanged; if no key needed unescaping the
// original reference is returned.
//
// Errors from FromPlain propagate unwrapped; Decode raises none of
// its own.
func (c *Codec[S]) Decode(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}

	tagVal, present := m[c.cfg.Tag.Key]
	isTagged := present && tagVal == c.cfg.Tag.Value

	stripped := m
	if isTagged {
		stripped = make(map[string]any, len(m)-1)
		for k, val := range m {
			if k == c.cfg.Tag.Key {
				continue
			}
			stripped[k] = val
		}
	}

	restored := c.unescapeKeys(stripped)
	if !isTagged {
		return restored, nil
	}

	s, err := c.cfg.FromPlain(restored)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// unescapeKeys strips exactly one escape rune from every top-level key
// that is an escaped rendering of the tag key. One level per call,
// symmetric with the one level escapeKeys adds, so repeated
// encode/decode passes compose. The input map is returned unchanged
// when no key needs unescaping.
func (c *Codec[S]) unescapeKeys(m map[string]any) map[string]any {
	key, esc := c.cfg.Tag.Key, c.cfg.Tag.Escape
	changed := false
	for k := range m {
		if len(k) > len(key) && c.tagShaped(k) {
			changed = true
			break
		}
	}
	if !changed {
		return m
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		if len(k) > len(key) && c.tagShaped(k) {
			k = k[len(esc):]
		}
		out[k] = val
	}
	return out
}
