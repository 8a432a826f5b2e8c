package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TriState is the per-criterion toggle. Inherit defers the whole criterion
// group to a fallback filter; it only collapses to Disabled/Enabled through
// Combine or Validate.
type TriState int

const (
	Inherit TriState = iota
	Disabled
	Enabled
)

func (s TriState) String() string {
	switch s {
	case Disabled:
		return "off"
	case Enabled:
		return "on"
	default:
		return "inherit"
	}
}

// Set reports whether the state has collapsed to a concrete boolean.
func (s TriState) Set() bool { return s != Inherit }

// MarshalJSON encodes the tri-state as null/false/true, matching the
// persisted filter document shape.
func (s TriState) MarshalJSON() ([]byte, error) {
	switch s {
	case Disabled:
		return []byte("false"), nil
	case Enabled:
		return []byte("true"), nil
	default:
		return []byte("null"), nil
	}
}

func (s *TriState) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = Inherit
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("tri-state: %w", err)
	}
	if b {
		*s = Enabled
	} else {
		*s = Disabled
	}
	return nil
}
