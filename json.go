package kleene

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeError is returned when a codec token (JSON or YAML) cannot decode
// into a TriState. Token holds the offending token verbatim; Err carries
// the underlying parse failure when the token was a string.
//
// Decoding never substitutes a default for a malformed token — silent
// coercion would defeat the point of keeping Unknown distinct from
// invalid input.
type DecodeError struct {
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kleene: cannot decode token %s: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("kleene: cannot decode token %s as TriState", e.Token)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MarshalJSON implements json.Marshaler. Encoding always emits the JSON
// string "True", "False" or "Unknown" — never a boolean, null or number.
// The asymmetry with UnmarshalJSON is deliberate: accept the token shapes
// other producers emit, but keep our own output explicit and
// self-describing.
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case True:
		return []byte(`"True"`), nil
	case False:
		return []byte(`"False"`), nil
	}
	return []byte(`"Unknown"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Four token shapes decode:
//
//   - booleans: true → True, false → False
//   - null → Unknown
//   - strings: the TryParse acceptance rule, e.g. "unknown" or "-1"
//   - integer numbers -1, 0 and 1
//
// Everything else is a *DecodeError, including integers out of range,
// objects, arrays, and any fractional or exponent numeric form — 1.0 is
// rejected even though its value would land in range.
func (t *TriState) UnmarshalJSON(data []byte) error {
	tok := strings.TrimSpace(string(data))
	switch tok {
	case "true":
		*t = True
		return nil
	case "false":
		*t = False
		return nil
	case "null":
		*t = Unknown
		return nil
	case "":
		return &DecodeError{Token: tok}
	}

	switch tok[0] {
	case '"':
		// Let encoding/json handle escapes, then apply the text contract.
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &DecodeError{Token: tok, Err: err}
		}
		v, ok := TryParse(s)
		if !ok {
			return &DecodeError{Token: tok, Err: &ParseError{Input: s}}
		}
		*t = v
		return nil
	case '{', '[':
		return &DecodeError{Token: tok}
	}

	// Number token. Fractional and exponent forms never decode, regardless
	// of value.
	if strings.ContainsAny(tok, ".eE") {
		return &DecodeError{Token: tok}
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return &DecodeError{Token: tok}
	}
	if n < -1 || n > 1 {
		return &DecodeError{Token: tok}
	}
	*t = FromRaw(int(n))
	return nil
}
