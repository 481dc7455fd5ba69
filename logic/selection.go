package logic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

// Selection is the value chosen for one customization: either an option
// label (select) or a presence marker (addon). The zero value means
// "not chosen".
type Selection struct {
	label  string
	chosen bool
}

// Choose selects the option with the given label.
func Choose(label string) Selection {
	return Selection{label: label, chosen: label != ""}
}

// Toggle marks an addon as chosen.
func Toggle() Selection {
	return Selection{chosen: true}
}

// IsChosen reports whether the selection carries any value.
func (s Selection) IsChosen() bool {
	return s.chosen
}

// Label returns the chosen option label. It is empty for addon markers.
func (s Selection) Label() string {
	return s.label
}

func (s Selection) String() string {
	switch {
	case s.label != "":
		return s.label
	case s.chosen:
		return "true"
	default:
		return ""
	}
}

// MarshalJSON writes a label as a JSON string and an addon marker as true.
func (s Selection) MarshalJSON() ([]byte, error) {
	switch {
	case s.label != "":
		return json.Marshal(s.label)
	case s.chosen:
		return []byte("true"), nil
	default:
		return []byte("false"), nil
	}
}

// UnmarshalJSON accepts a string label, a boolean, or null.
func (s *Selection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*s = Selection{}
		return nil
	case bytes.Equal(data, []byte("true")):
		*s = Toggle()
		return nil
	}

	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("selection must be a string label or boolean: %s", data)
	}
	*s = Choose(label)
	return nil
}

// Selections maps a CustomizationSpec id to the user's choice.
type Selections map[string]Selection

// Canonical returns a copy holding only the chosen entries.
func (s Selections) Canonical() Selections {
	out := make(Selections, len(s))
	for k, v := range s {
		if v.IsChosen() {
			out[k] = v
		}
	}
	return out
}

// Clone returns an independent copy; a nil set stays nil.
func (s Selections) Clone() Selections {
	return maps.Clone(s)
}

// Get returns the selection for id; absent ids yield the zero Selection.
func (s Selections) Get(id string) Selection {
	if s == nil {
		return Selection{}
	}
	return s[id]
}
