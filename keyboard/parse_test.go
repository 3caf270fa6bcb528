package keyboard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

func TestParsePeriod(t *testing.T) {
	type testCase struct {
		input string
		want  time.Duration
	}

	cases := []testCase{
		{input: "250ms", want: 250 * time.Millisecond},
		{input: "2s", want: 2 * time.Second},
		{input: " 5S ", want: 5 * time.Second},
		// A bare hex byte is the firmware's coarse unit: value<<8 ms.
		{input: "0a", want: 2560 * time.Millisecond},
		{input: "ff", want: 65280 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := keyboard.ParsePeriod(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePeriodInvalid(t *testing.T) {
	for _, input := range []string{"", "fast", "-2s", "10x", "123"} {
		_, err := keyboard.ParsePeriod(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, keyboard.ErrInvalidEffectParameter))
	}
}

func TestParseUint8(t *testing.T) {
	v, err := keyboard.ParseUint8("17")
	require.NoError(t, err)
	assert.Equal(t, uint8(17), v)

	v, err = keyboard.ParseUint8("0x1f")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x1f), v)

	_, err = keyboard.ParseUint8("256")
	assert.Error(t, err)
}

func TestParseUint16(t *testing.T) {
	v, err := keyboard.ParseUint16("c33f")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xc33f), v)

	v, err = keyboard.ParseUint16("0x046d")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x046d), v)

	_, err = keyboard.ParseUint16("junk")
	assert.Error(t, err)
}

func TestParseStartupMode(t *testing.T) {
	m, err := keyboard.ParseStartupMode("Wave")
	require.NoError(t, err)
	assert.Equal(t, keyboard.StartupWave, m)

	_, err = keyboard.ParseStartupMode("strobe")
	assert.Error(t, err)
}

func TestParseOnBoardMode(t *testing.T) {
	m, err := keyboard.ParseOnBoardMode("software")
	require.NoError(t, err)
	assert.Equal(t, keyboard.OnBoardModeSoftware, m)

	_, err = keyboard.ParseOnBoardMode("auto")
	assert.Error(t, err)
}
