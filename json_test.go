package kleene_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/kleene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDecode(t *testing.T) {
	tests := []struct {
		in   string
		want kleene.TriState
	}{
		{`true`, kleene.True},
		{`false`, kleene.False},
		{`null`, kleene.Unknown},
		{`"true"`, kleene.True},
		{`"False"`, kleene.False},
		{`"unknown"`, kleene.Unknown},
		{`"-1"`, kleene.False},
		{`" true "`, kleene.True},
		{`-1`, kleene.False},
		{`0`, kleene.Unknown},
		{`1`, kleene.True},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v kleene.TriState
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestJSONDecodeErrors(t *testing.T) {
	// Fractional numeric tokens never decode, even when the value would
	// round to a valid encoding.
	rejects := []string{
		`1.0`, `0.0`, `-1.0`, `1e0`, `0.5`, `2`, `-2`, `100`,
		`"maybe"`, `""`, `"+1"`, `"1.0"`,
		`{}`, `[]`, `[1]`, `{"v":1}`,
	}
	for _, in := range rejects {
		t.Run(in, func(t *testing.T) {
			var v kleene.TriState
			err := json.Unmarshal([]byte(in), &v)
			require.Error(t, err, "decoding %s should fail", in)

			var derr *kleene.DecodeError
			require.ErrorAs(t, err, &derr)
			assert.NotEmpty(t, derr.Token)
		})
	}
}

func TestJSONDecodeErrorNamesString(t *testing.T) {
	var v kleene.TriState
	err := json.Unmarshal([]byte(`"maybe"`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maybe")

	var perr *kleene.ParseError
	require.ErrorAs(t, err, &perr, "string failures carry the parse error as cause")
	assert.Equal(t, "maybe", perr.Input)
}

func TestJSONEncodeAlwaysString(t *testing.T) {
	tests := []struct {
		v    kleene.TriState
		want string
	}{
		{kleene.True, `"True"`},
		{kleene.False, `"False"`},
		{kleene.Unknown, `"Unknown"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data))
	}
}

func TestJSONRoundTripInStruct(t *testing.T) {
	type flags struct {
		Beta     kleene.TriState `json:"beta"`
		Rollout  kleene.TriState `json:"rollout"`
		Sunset   kleene.TriState `json:"sunset"`
		Untagged kleene.TriState `json:"untagged,omitempty"`
	}

	in := flags{Beta: kleene.True, Rollout: kleene.Unknown, Sunset: kleene.False}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out flags
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	t.Run("accepts heterogeneous producer shapes", func(t *testing.T) {
		var out flags
		raw := `{"beta": true, "rollout": null, "sunset": -1, "untagged": "Unknown"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &out))
		assert.Equal(t, kleene.True, out.Beta)
		assert.Equal(t, kleene.Unknown, out.Rollout)
		assert.Equal(t, kleene.False, out.Sunset)
		assert.Equal(t, kleene.Unknown, out.Untagged)
	})
}
