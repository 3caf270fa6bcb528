package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

func TestLookupModel(t *testing.T) {
	m, ok := keyboard.LookupModel(0x046d, 0xc33f)
	require.True(t, ok)
	assert.Equal(t, "G815", m.Name)

	m, ok = keyboard.LookupModel(0x046d, 0xc335)
	require.True(t, ok)
	assert.Equal(t, "G910", m.Name)

	_, ok = keyboard.LookupModel(0x1234, 0xc33f)
	assert.False(t, ok, "non-Logitech vendor must not match")

	_, ok = keyboard.LookupModel(0x046d, 0xffff)
	assert.False(t, ok, "unknown product id must not match")
}

func TestLookupModelByName(t *testing.T) {
	m, ok := keyboard.LookupModelByName("g810")
	require.True(t, ok)
	assert.Equal(t, "G810", m.Name)

	_, ok = keyboard.LookupModelByName("G999")
	assert.False(t, ok)
}

func TestModelCapabilities(t *testing.T) {
	type testCase struct {
		name    string
		perKey  bool
		logo    bool
		regions bool
		commit  bool
		mr      bool
		mn      bool
		gkeys   bool
		startup bool
		onboard bool
	}

	cases := []testCase{
		{name: "G213", regions: true, startup: true},
		{name: "G413", startup: true},
		{name: "G512", perKey: true, logo: true, commit: true, startup: true},
		{name: "G810", perKey: true, logo: true, commit: true, startup: true},
		{name: "G815", perKey: true, logo: true, commit: true, mr: true, mn: true, gkeys: true, onboard: true},
		{name: "G910", perKey: true, logo: true, commit: true, mr: true, mn: true, gkeys: true, startup: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := keyboard.LookupModelByName(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.perKey, m.HasPerKey(), "per-key")
			assert.Equal(t, tc.logo, m.HasLogoLED(), "logo led")
			assert.Equal(t, tc.regions, m.HasRegions(), "regions")
			assert.Equal(t, tc.commit, m.HasCommit(), "commit")
			assert.Equal(t, tc.mr, m.HasMRKey(), "mr key")
			assert.Equal(t, tc.mn, m.HasMNKey(), "mn key")
			assert.Equal(t, tc.gkeys, m.HasGKeysMode(), "gkeys mode")
			assert.Equal(t, tc.startup, m.HasStartupMode(), "startup mode")
			assert.Equal(t, tc.onboard, m.HasOnBoardMode(), "on-board mode")
			assert.True(t, m.HasEffects(), "every supported board has native effects")
		})
	}
}

func TestModelsCatalog(t *testing.T) {
	models := keyboard.Models()
	require.Len(t, models, 10)

	seen := map[uint16]string{}
	for _, m := range models {
		require.NotEmpty(t, m.ProductIDs, "%s needs at least one product id", m.Name)
		for _, pid := range m.ProductIDs {
			prev, dup := seen[pid]
			require.False(t, dup, "product id %04x claimed by both %s and %s", pid, prev, m.Name)
			seen[pid] = m.Name

			got, ok := keyboard.LookupModel(keyboard.LogitechVendorID, pid)
			require.True(t, ok)
			assert.Equal(t, m.Name, got.Name)
		}
	}
}
