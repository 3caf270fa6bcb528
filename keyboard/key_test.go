package keyboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

func TestParseKey(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  keyboard.Key
	}

	cases := []testCase{
		{name: "letter", input: "a", want: keyboard.KeyA},
		{name: "uppercase letter", input: "A", want: keyboard.KeyA},
		{name: "logo", input: "logo", want: keyboard.KeyLogo},
		{name: "canonical underscore", input: "arrow_left", want: keyboard.KeyArrowLeft},
		{name: "canonical without underscore", input: "arrowleft", want: keyboard.KeyArrowLeft},
		{name: "alias", input: "left", want: keyboard.KeyArrowLeft},
		{name: "modifier alias", input: "lctrl", want: keyboard.KeyCtrlLeft},
		{name: "punctuation alias", input: ";", want: keyboard.KeySemicolon},
		{name: "surrounding space", input: " esc ", want: keyboard.KeyEsc},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keyboard.ParseKey(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, input := range []string{"", "notakey", "f13", "g10"} {
		_, err := keyboard.ParseKey(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, keyboard.ErrInvalidKey), "want invalid key, got %v", err)
	}
}

func TestKeyAddressing(t *testing.T) {
	assert.Equal(t, uint8(0), keyboard.KeyLogo.AddressGroup())
	assert.Equal(t, uint8(0x01), keyboard.KeyLogo.Code())
	assert.Equal(t, uint8(4), keyboard.KeyA.AddressGroup())
	assert.Equal(t, uint8(0x04), keyboard.KeyA.Code())
	assert.Equal(t, uint8(3), keyboard.KeyG1.AddressGroup())
}

func TestKeyNamesRoundTrip(t *testing.T) {
	names := keyboard.KeyNames()
	require.NotEmpty(t, names)
	for _, n := range names {
		k, err := keyboard.ParseKey(n)
		require.NoError(t, err, "name %q must parse", n)
		assert.Equal(t, n, k.String())
	}
}

func TestParseGroup(t *testing.T) {
	for _, input := range []string{"fkeys", "f-keys", "F_Keys"} {
		g, err := keyboard.ParseGroup(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, keyboard.GroupFKeys, g)
	}

	_, err := keyboard.ParseGroup("nosuchgroup")
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyboard.ErrInvalidGroupOrRegion))
}

func TestGroupMembership(t *testing.T) {
	assert.Equal(t,
		[]keyboard.Key{keyboard.KeyArrowUp, keyboard.KeyArrowLeft, keyboard.KeyArrowDown, keyboard.KeyArrowRight},
		keyboard.GroupArrows.Keys())
	assert.Len(t, keyboard.GroupFKeys.Keys(), 12)
	assert.Nil(t, keyboard.Group("bogus").Keys())
}

func TestParseRegion(t *testing.T) {
	r, err := keyboard.ParseRegion("3")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), r)

	r, err = keyboard.ParseRegion("0x05")
	require.NoError(t, err)
	assert.Equal(t, uint8(5), r)

	_, err = keyboard.ParseRegion("five")
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyboard.ErrInvalidGroupOrRegion))
}
