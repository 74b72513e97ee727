package kleene

import (
	"fmt"
	"strings"
)

// ParseError is returned by Parse (and UnmarshalText) when the input is not
// one of the accepted tokens. It carries the rejected input verbatim.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("kleene: cannot parse %q as TriState", e.Input)
}

// Canonical text forms. Constants so String stays allocation-free.
const (
	textTrue    = "True"
	textFalse   = "False"
	textUnknown = "Unknown"
)

// String returns exactly "True", "False" or "Unknown". It implements
// fmt.Stringer and is cheap enough for hot paths.
func (t TriState) String() string {
	switch t {
	case True:
		return textTrue
	case False:
		return textFalse
	}
	return textUnknown
}

// TryParse parses a textual TriState without an error path, for callers
// that only want to test acceptance.
//
// Accepted after trimming surrounding whitespace: the words "true",
// "false" and "unknown" case-insensitively, and the exact numeric literals
// "1", "0" and "-1". The numerals are matched as strings, not parsed as
// integers — "+1", "01" and "1.0" are all rejected, as is empty or
// whitespace-only input. No locale-sensitive parsing is involved.
func TryParse(s string) (TriState, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "1":
		return True, true
	case "0":
		return Unknown, true
	case "-1":
		return False, true
	}
	switch {
	case strings.EqualFold(s, textTrue):
		return True, true
	case strings.EqualFold(s, textFalse):
		return False, true
	case strings.EqualFold(s, textUnknown):
		return Unknown, true
	}
	return Unknown, false
}

// Parse is TryParse with an error path: the same acceptance rule, with a
// *ParseError naming the rejected input on failure.
func Parse(s string) (TriState, error) {
	v, ok := TryParse(s)
	if !ok {
		return Unknown, &ParseError{Input: s}
	}
	return v, nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form,
// so TriState works as a map key and with text-based codecs.
func (t TriState) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (t *TriState) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
