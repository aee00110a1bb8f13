package identify

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice is returned for input other than "0", "1" or "2".
var ErrInvalidChoice = errors.New("identify: invalid choice")

// Choice is one answer at the prompt.
type Choice int

const (
	Quit   Choice = iota // End the session.
	First                // Evaluate the first sequence.
	Second               // Evaluate the second sequence.
)

var (
	choiceNames  = [...]string{Quit: "Quit", First: "First", Second: "Second"}
	choiceByText = map[string]Choice{
		"0": Quit,
		"1": First,
		"2": Second,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Choice(0)
	_ encoding.TextMarshaler   = Choice(0)
	_ encoding.TextUnmarshaler = (*Choice)(nil)
)

func (c Choice) isValid() bool {
	return c >= Quit && c <= Second
}

// String returns "Quit", "First" or "Second". For invalid values it returns
// "Choice(n)".
func (c Choice) String() string {
	if c.isValid() {
		return choiceNames[c]
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler. A choice marshals as the
// digit typed at the prompt.
func (c Choice) MarshalText() ([]byte, error) {
	if !c.isValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, int(c))
	}
	return []byte{byte('0' + c)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Surrounding whitespace
// is ignored.
func (c *Choice) UnmarshalText(text []byte) error {
	v, ok := choiceByText[strings.TrimSpace(string(text))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, text)
	}
	*c = v
	return nil
}

// ParseChoice parses one line of prompt input.
func ParseChoice(s string) (Choice, error) {
	var c Choice
	err := c.UnmarshalText([]byte(s))
	return c, err
}
