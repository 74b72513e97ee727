package kleene

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. Like the JSON encoder it always
// emits the canonical string form.
func (t TriState) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same acceptance table
// as the JSON decoder: booleans, null, strings via the text contract, and
// the integers -1, 0 and 1. Anything else — sequences, mappings, floats,
// out-of-range integers — fails with a *DecodeError.
func (t *TriState) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &DecodeError{Token: node.Tag}
	}
	switch node.Tag {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return &DecodeError{Token: node.Value, Err: err}
		}
		*t = FromBool(b)
		return nil
	case "!!null":
		*t = Unknown
		return nil
	case "!!str":
		v, ok := TryParse(node.Value)
		if !ok {
			return &DecodeError{Token: strconv.Quote(node.Value), Err: &ParseError{Input: node.Value}}
		}
		*t = v
		return nil
	case "!!int":
		// Base-10 parse only: YAML's hex/octal/underscore int forms are
		// rejected along with anything out of range.
		n, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil || n < -1 || n > 1 {
			return &DecodeError{Token: node.Value}
		}
		*t = FromRaw(int(n))
		return nil
	}
	return &DecodeError{Token: node.Value}
}
