package keyboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectsUnsupportedModel(t *testing.T) {
	bare := &Model{Name: "bare"}
	packets, err := NativeEffectPackets(bare, NativeEffect{
		Effect: EffectColor,
		Part:   EffectPartKeys,
		Color:  ColorWhite,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedEffect))
	assert.Nil(t, packets)
}

func TestEffectWireFields(t *testing.T) {
	assert.Equal(t, uint8(0x04), EffectHWave.group())
	assert.Equal(t, uint8(0x01), EffectHWave.variant())
	assert.Equal(t, uint8(0x05), EffectRipple.group())
	assert.Equal(t, uint8(0x00), EffectColor.variant())
}
