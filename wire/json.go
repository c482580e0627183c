package wire

import (
	"github.com/goccy/go-json"
)

// JSON is the JSON format. Note that JSON decodes every number as
// float64; numeric tag discriminants must be float64 to survive a
// JSON round trip.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v *any) error { return json.Unmarshal(data, v) }
