package hmm

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Winner names the model a comparison attributes a sequence to.
type Winner int

const (
	First  Winner = iota + 1 // The first model scored strictly higher.
	Second                   // The second model scored higher or tied.
)

var (
	winnerNames  = [...]string{First: "First", Second: "Second"}
	winnerByName = map[string]Winner{
		"First":  First,
		"Second": Second,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Winner(0)
	_ json.Marshaler           = Winner(0)
	_ json.Unmarshaler         = (*Winner)(nil)
	_ encoding.TextMarshaler   = Winner(0)
	_ encoding.TextUnmarshaler = (*Winner)(nil)
)

// IsValid reports whether w is First or Second.
func (w Winner) IsValid() bool {
	return w == First || w == Second
}

// String returns "First" or "Second". For invalid values it returns "Winner(n)".
func (w Winner) String() string {
	if w.IsValid() {
		return winnerNames[w]
	}
	return fmt.Sprintf("Winner(%d)", int(w))
}

// MarshalText implements encoding.TextMarshaler.
func (w Winner) MarshalText() ([]byte, error) {
	if !w.IsValid() {
		return nil, fmt.Errorf("hmm: invalid winner: %d", int(w))
	}
	return []byte(winnerNames[w]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Winner) UnmarshalText(text []byte) error {
	v, ok := winnerByName[string(text)]
	if !ok {
		return fmt.Errorf("hmm: invalid winner: %q", text)
	}
	*w = v
	return nil
}

// MarshalJSON implements json.Marshaler. Winner serializes as a JSON string.
func (w Winner) MarshalJSON() ([]byte, error) {
	text, err := w.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (w *Winner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hmm: invalid winner: %s", data)
	}
	return w.UnmarshalText([]byte(s))
}
