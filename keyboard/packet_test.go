package keyboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

func model(t *testing.T, name string) *keyboard.Model {
	t.Helper()
	m, ok := keyboard.LookupModelByName(name)
	require.True(t, ok, "model %s", name)
	return m
}

func TestSetKeysSingleKeyG910(t *testing.T) {
	m := model(t, "G910")
	packets := keyboard.SetKeysPackets(m, []keyboard.KeyColor{
		{Key: keyboard.KeyA, Color: keyboard.Color{R: 0xff}},
	})
	require.Len(t, packets, 1)

	expected := make([]byte, keyboard.LongReportSize)
	copy(expected, []byte{
		0x12, 0xff, 0x0f, 0x3d, 0x00, 0x01, 0x00, 0x0e,
		0x04, 0xff, 0x00, 0x00,
	})
	assert.Equal(t, expected, []byte(packets[0]))
}

func TestSetKeysLogoShortReport(t *testing.T) {
	m := model(t, "G810")
	packets := keyboard.SetKeysPackets(m, []keyboard.KeyColor{
		{Key: keyboard.KeyLogo, Color: keyboard.Color{B: 0xff}},
	})
	require.Len(t, packets, 1)

	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{
		0x11, 0xff, 0x0c, 0x3a, 0x00, 0x10, 0x00, 0x01,
		0x01, 0x00, 0x00, 0xff,
	})
	assert.Equal(t, expected, []byte(packets[0]))
}

func TestSetKeysG815SingleColorFormat(t *testing.T) {
	m := model(t, "G815")
	packets := keyboard.SetKeysPackets(m, []keyboard.KeyColor{
		{Key: keyboard.KeyA, Color: keyboard.Color{R: 0xff}},
		{Key: keyboard.KeyB, Color: keyboard.Color{R: 0xff}},
	})
	require.Len(t, packets, 1)

	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{
		0x11, 0xff, 0x10, 0x6c,
		0xff, 0x00, 0x00,
		0x01, 0x02, // key ids: HID code minus 0x03
		0xff, // terminator
	})
	assert.Equal(t, expected, []byte(packets[0]))
}

func TestSetKeysG815BatchesByColor(t *testing.T) {
	m := model(t, "G815")
	packets := keyboard.SetKeysPackets(m, []keyboard.KeyColor{
		{Key: keyboard.KeyA, Color: keyboard.Color{G: 0xff}},
		{Key: keyboard.KeyB, Color: keyboard.Color{R: 0xff}},
		{Key: keyboard.KeyC, Color: keyboard.Color{G: 0xff}},
	})
	require.Len(t, packets, 2)

	// Colors sort by RGB triple, so green comes before red.
	assert.Equal(t, []byte{0x00, 0xff, 0x00}, []byte(packets[0][4:7]))
	assert.Equal(t, []byte{0xff, 0x00, 0x00}, []byte(packets[1][4:7]))
}

func TestSetKeysBatchesByAddressGroup(t *testing.T) {
	m := model(t, "G910")
	packets := keyboard.SetKeysPackets(m, []keyboard.KeyColor{
		{Key: keyboard.KeyA, Color: keyboard.ColorWhite},
		{Key: keyboard.KeyLogo, Color: keyboard.ColorWhite},
		{Key: keyboard.KeyG1, Color: keyboard.ColorWhite},
	})
	require.Len(t, packets, 3)

	// Groups walk in ascending order: logo (0), g-keys (3), keys (4).
	assert.Len(t, []byte(packets[0]), keyboard.ShortReportSize)
	assert.Equal(t, uint8(0x01), packets[0][8])
	assert.Len(t, []byte(packets[1]), keyboard.LongReportSize)
	assert.Equal(t, uint8(keyboard.KeyG1.Code()), packets[1][8])
	assert.Len(t, []byte(packets[2]), keyboard.LongReportSize)
	assert.Equal(t, uint8(keyboard.KeyA.Code()), packets[2][8])
}

func TestSetGroupSplitsAcrossPackets(t *testing.T) {
	m := model(t, "G810")
	members := keyboard.GroupKeys.Keys()
	require.Greater(t, len(members), 14)

	packets, err := keyboard.SetGroupPackets(m, keyboard.GroupKeys, keyboard.ColorWhite)
	require.NoError(t, err)

	// Long reports hold 14 keys each.
	wantPackets := (len(members) + 13) / 14
	assert.Len(t, packets, wantPackets)
	for _, p := range packets {
		assert.Len(t, []byte(p), keyboard.LongReportSize)
	}
}

func TestSetGroupUnknown(t *testing.T) {
	m := model(t, "G810")
	_, err := keyboard.SetGroupPackets(m, keyboard.Group("bogus"), keyboard.ColorWhite)
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyboard.ErrInvalidGroupOrRegion))
}

func TestSetKeysDeterministic(t *testing.T) {
	m := model(t, "G815")
	keys := []keyboard.KeyColor{
		{Key: keyboard.KeyA, Color: keyboard.Color{R: 0x10}},
		{Key: keyboard.KeyB, Color: keyboard.Color{G: 0x20}},
		{Key: keyboard.KeyC, Color: keyboard.Color{B: 0x30}},
		{Key: keyboard.KeyD, Color: keyboard.Color{R: 0x10}},
	}
	first := keyboard.SetKeysPackets(m, keys)
	second := keyboard.SetKeysPackets(m, keys)
	assert.Equal(t, first, second)
}

func TestSetKeysIgnoredWithoutPerKeySupport(t *testing.T) {
	for _, name := range []string{"G213", "G413"} {
		m := model(t, name)
		packets := keyboard.SetKeysPackets(m, []keyboard.KeyColor{
			{Key: keyboard.KeyA, Color: keyboard.ColorWhite},
		})
		assert.Nil(t, packets, "%s has no per-key support", name)
	}
}

func TestSetAllPacketSizes(t *testing.T) {
	for _, m := range keyboard.Models() {
		packets := keyboard.SetAllPackets(m, keyboard.Color{R: 0x40, G: 0x40, B: 0x40})
		if !m.HasPerKey() {
			assert.Empty(t, packets, "%s", m.Name)
			continue
		}
		require.NotEmpty(t, packets, "%s", m.Name)
		for i, p := range packets {
			size := len(p)
			assert.True(t, size == keyboard.ShortReportSize || size == keyboard.LongReportSize,
				"%s packet %d has size %d", m.Name, i, size)
		}
	}
}

func TestCommitPacket(t *testing.T) {
	p, ok := keyboard.CommitPacket(model(t, "G810"))
	require.True(t, ok)
	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{0x11, 0xff, 0x0c, 0x5a})
	assert.Equal(t, expected, []byte(p))

	_, ok = keyboard.CommitPacket(model(t, "G213"))
	assert.False(t, ok, "region boards commit implicitly")
}

func TestRegionPacket(t *testing.T) {
	m := model(t, "G213")
	p, err := keyboard.RegionPacket(m, 2, keyboard.Color{G: 0xff, B: 0xff})
	require.NoError(t, err)

	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{
		0x11, 0xff, 0x0c, 0x3a,
		0x02, 0x01, 0x00, 0xff, 0xff,
	})
	assert.Equal(t, expected, []byte(p))
}

func TestRegionPacketOutOfRange(t *testing.T) {
	m := model(t, "G213")
	for _, region := range []uint8{0, 6} {
		_, err := keyboard.RegionPacket(m, region, keyboard.ColorWhite)
		require.Error(t, err, "region %d", region)
		assert.True(t, errors.Is(err, keyboard.ErrInvalidGroupOrRegion))
	}
}

func TestRegionPacketNonZonedBoard(t *testing.T) {
	p, err := keyboard.RegionPacket(model(t, "G810"), 1, keyboard.ColorWhite)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStartupModePacket(t *testing.T) {
	p, ok := keyboard.StartupModePacket(model(t, "G810"), keyboard.StartupColor)
	require.True(t, ok)
	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{0x11, 0xff, 0x0d, 0x5a, 0x00, 0x01, 0x02})
	assert.Equal(t, expected, []byte(p))

	_, ok = keyboard.StartupModePacket(model(t, "G815"), keyboard.StartupColor)
	assert.False(t, ok, "G815 has no startup mode register")
}

func TestMRKeyPacket(t *testing.T) {
	m := model(t, "G910")
	p, ok := keyboard.MRKeyPacket(m, 1)
	require.True(t, ok)
	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{0x11, 0xff, 0x0a, 0x0e, 0x01})
	assert.Equal(t, expected, []byte(p))

	_, ok = keyboard.MRKeyPacket(m, 2)
	assert.False(t, ok, "mr value is 0 or 1")

	_, ok = keyboard.MRKeyPacket(model(t, "G810"), 1)
	assert.False(t, ok, "G810 has no mr key")
}

func TestMNKeyPacket(t *testing.T) {
	// G910 takes the raw value.
	p, ok := keyboard.MNKeyPacket(model(t, "G910"), 0x05)
	require.True(t, ok)
	assert.Equal(t, uint8(0x05), p[4])

	_, ok = keyboard.MNKeyPacket(model(t, "G910"), 0x08)
	assert.False(t, ok)

	// G815 remaps m-key numbers to a bitmask.
	m815 := model(t, "G815")
	p, ok = keyboard.MNKeyPacket(m815, 0x03)
	require.True(t, ok)
	assert.Equal(t, uint8(0x04), p[4])

	_, ok = keyboard.MNKeyPacket(m815, 0x04)
	assert.False(t, ok, "G815 only has three m-keys")
}

func TestGKeysModePacket(t *testing.T) {
	p, ok := keyboard.GKeysModePacket(model(t, "G815"), 1)
	require.True(t, ok)
	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{0x11, 0xff, 0x0a, 0x2b, 0x01})
	assert.Equal(t, expected, []byte(p))

	_, ok = keyboard.GKeysModePacket(model(t, "G810"), 1)
	assert.False(t, ok, "G810 has no g-keys")
}
