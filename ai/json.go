package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var _ json.Unmarshaler = &Weights{}

// ParseWeights overlays the JSON object in s on DefaultWeights, so
// callers need name only the fields they change.
func ParseWeights(s string) (Weights, error) {
	w := DefaultWeights
	if s == "" {
		return w, nil
	}
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return w, err
	}
	return w, nil
}

// UnmarshalJSON rejects unknown keys so a misspelled weight is an
// error instead of a silent no-op.
func (ws *Weights) UnmarshalJSON(bs []byte) error {
	type plain Weights
	dec := json.NewDecoder(bytes.NewReader(bs))
	dec.DisallowUnknownFields()
	if err := dec.Decode((*plain)(ws)); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if !ws.Primary.IsStone() {
		return fmt.Errorf("weights: primary must be black or white, not %s", ws.Primary)
	}
	return nil
}
