package keyboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

func TestParseColor(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  keyboard.Color
	}

	cases := []testCase{
		{name: "six digit hex", input: "ff8000", want: keyboard.Color{R: 0xff, G: 0x80, B: 0x00}},
		{name: "uppercase hex", input: "FF8000", want: keyboard.Color{R: 0xff, G: 0x80, B: 0x00}},
		{name: "hash prefix", input: "#00ff00", want: keyboard.Color{G: 0xff}},
		{name: "grayscale", input: "7f", want: keyboard.Color{R: 0x7f, G: 0x7f, B: 0x7f}},
		{name: "named color", input: "red", want: keyboard.Color{R: 0xff}},
		{name: "named color mixed case", input: "Cyan", want: keyboard.Color{G: 0xff, B: 0xff}},
		{name: "surrounding space", input: "  blue ", want: keyboard.Color{B: 0xff}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keyboard.ParseColor(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "zz00ff", "12345", "1234567", "#", "g0"} {
		t.Run("input "+input, func(t *testing.T) {
			_, err := keyboard.ParseColor(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, keyboard.ErrInvalidColor), "want invalid color, got %v", err)
		})
	}
}

func TestColorHex(t *testing.T) {
	c := keyboard.Color{R: 0x0a, G: 0xff, B: 0x00}
	assert.Equal(t, "0aff00", c.Hex())
	assert.Equal(t, "0aff00", c.String())

	parsed, err := keyboard.ParseColor(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestColorNamesSorted(t *testing.T) {
	names := keyboard.ColorNames()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	for _, n := range names {
		_, err := keyboard.ParseColor(n)
		assert.NoError(t, err, "name %q must parse", n)
	}
}
