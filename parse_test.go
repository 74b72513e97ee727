package kleene_test

import (
	"errors"
	"testing"

	"github.com/aretw0/kleene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "True", kleene.True.String())
	assert.Equal(t, "False", kleene.False.String())
	assert.Equal(t, "Unknown", kleene.Unknown.String())
}

func TestTryParseAccepts(t *testing.T) {
	tests := []struct {
		in   string
		want kleene.TriState
	}{
		{"true", kleene.True},
		{"True", kleene.True},
		{"TRUE", kleene.True},
		{"false", kleene.False},
		{"False", kleene.False},
		{"unknown", kleene.Unknown},
		{"UnKnOwN", kleene.Unknown},
		{"1", kleene.True},
		{"0", kleene.Unknown},
		{"-1", kleene.False},
		{"  true  ", kleene.True},
		{"\t-1\n", kleene.False},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := kleene.TryParse(tt.in)
			require.True(t, ok, "TryParse(%q) should accept", tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTryParseRejects(t *testing.T) {
	// Numeric tokens are matched as exact strings, not parsed as integers.
	rejects := []string{
		"", "   ", "maybe", "2", "-2", "Truee", "+1", "01", "1.0", "-1.0",
		"yes", "no", "null", "nil", "t", "f", "u", "true false",
	}
	for _, in := range rejects {
		_, ok := kleene.TryParse(in)
		assert.False(t, ok, "TryParse(%q) should reject", in)
	}
}

func TestParseError(t *testing.T) {
	_, err := kleene.Parse("maybe")
	require.Error(t, err)

	var perr *kleene.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "maybe", perr.Input, "error must carry the rejected input")
	assert.Contains(t, err.Error(), `"maybe"`)
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, v := range all {
		got, err := kleene.Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestTextMarshaling(t *testing.T) {
	for _, v := range all {
		data, err := v.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, v.String(), string(data))

		var back kleene.TriState
		require.NoError(t, back.UnmarshalText(data))
		assert.Equal(t, v, back)
	}

	t.Run("rejects garbage", func(t *testing.T) {
		var v kleene.TriState
		err := v.UnmarshalText([]byte("perhaps"))
		var perr *kleene.ParseError
		assert.True(t, errors.As(err, &perr))
	})
}
