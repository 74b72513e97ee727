package kleene

import (
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

var triStateType = reflect.TypeOf(TriState(0))

// DecodeHookFunc returns a mapstructure hook so configuration structs can
// declare TriState fields and have them fed from the value shapes loosely
// typed config sources produce: bools, strings (the text contract), nil,
// and integers in {-1, 0, 1} — including the float64 integers
// encoding/json hands back for map[string]any.
//
// Dispatch is by reflect.Kind, so every integer and float width goes
// through the same range check; nothing falls through to mapstructure's
// own numeric conversion, which would happily truncate into the underlying
// int8 and mint a fourth state.
//
//	decoder, _ := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
//		DecodeHook: kleene.DecodeHookFunc(),
//		Result:     &cfg,
//	})
func DecodeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != triStateType {
			return data, nil
		}
		if data == nil {
			return Unknown, nil
		}

		val := reflect.ValueOf(data)
		switch val.Kind() {
		case reflect.Bool:
			return FromBool(val.Bool()), nil
		case reflect.String:
			parsed, err := Parse(val.String())
			if err != nil {
				return nil, err
			}
			return parsed, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return decodeInt(val.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if u := val.Uint(); u > 1 {
				return nil, &DecodeError{Token: strconv.FormatUint(u, 10)}
			}
			return FromRaw(int(val.Uint())), nil
		case reflect.Float32, reflect.Float64:
			// NaN and Inf fail the Trunc comparison or the range check; no
			// conversion to int happens until the value is provably small.
			f := val.Float()
			if f != math.Trunc(f) || f < -1 || f > 1 {
				return nil, &DecodeError{Token: strconv.FormatFloat(f, 'g', -1, 64)}
			}
			return FromRaw(int(f)), nil
		}
		return data, nil
	}
}

func decodeInt(n int64) (interface{}, error) {
	if n < -1 || n > 1 {
		return nil, &DecodeError{Token: strconv.FormatInt(n, 10)}
	}
	return FromRaw(int(n)), nil
}
