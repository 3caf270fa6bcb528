package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

func TestDeviceFlagsOptions(t *testing.T) {
	d := DeviceFlags{VendorID: "046d", ProductID: "0xc33f", Serial: "abc", TUK: "g910"}
	opts, err := d.options(nil)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x046d), opts.VendorID)
	assert.Equal(t, uint16(0xc33f), opts.ProductID)
	assert.Equal(t, "abc", opts.Serial)
	require.NotNil(t, opts.ForceModel)
	assert.Equal(t, "G910", opts.ForceModel.Name)
}

func TestDeviceFlagsOptionsErrors(t *testing.T) {
	_, err := DeviceFlags{VendorID: "zz"}.options(nil)
	assert.Error(t, err)

	_, err = DeviceFlags{TUK: "g999"}.options(nil)
	assert.Error(t, err)
}

func TestCapabilities(t *testing.T) {
	m, ok := keyboard.LookupModelByName("G815")
	require.True(t, ok)
	caps := capabilities(m)
	assert.Contains(t, caps, "per-key colors")
	assert.Contains(t, caps, "native effects")
	assert.Contains(t, caps, "on-board mode")
	assert.NotContains(t, caps, "startup mode")

	m, ok = keyboard.LookupModelByName("G213")
	require.True(t, ok)
	caps = capabilities(m)
	assert.Contains(t, caps, "5 regions")
	assert.NotContains(t, caps, "per-key colors")
}
