package keyboard

import "strings"

// LogitechVendorID is the USB vendor ID shared by all supported keyboards.
const LogitechVendorID uint16 = 0x046d

// groupAddress maps a firmware address group to the 8-byte report header
// that targets it.
type groupAddress struct {
	group  uint8
	header []byte
}

// Model describes one supported keyboard variant and its protocol quirks.
// All byte values were reverse engineered from the firmware command set;
// treat them as load-bearing and never reorder fields inside a header.
type Model struct {
	Name       string
	ProductIDs []uint16
	// Number of addressable lighting regions; 0 for per-key boards.
	Regions uint8

	// perKey marks boards whose firmware accepts per-key color commands.
	// The G413 carries the group address table but ignores per-key writes.
	perKey bool
	// logoLED is false on boards without a lit logo (G213, G413).
	logoLED bool

	commit        []byte
	groupAddr     []groupAddress
	effectBank    byte
	effectReg     byte
	hasEffects    bool
	mrHeader      []byte
	mnHeader      []byte
	mnValueMap    map[uint8]uint8
	gkeysHeader   []byte
	startupHeader []byte
	onboardHeader []byte
	// keysHeader is the G815-style single-color per-key header.
	keysHeader   []byte
	regionHeader []byte
}

// Feature flags, derived from which headers the firmware implements.

func (m *Model) HasCommit() bool      { return m.commit != nil }
func (m *Model) HasPerKey() bool      { return m.perKey }
func (m *Model) HasLogoLED() bool     { return m.logoLED }
func (m *Model) HasRegions() bool     { return m.regionHeader != nil }
func (m *Model) HasEffects() bool     { return m.hasEffects }
func (m *Model) HasStartupMode() bool { return m.startupHeader != nil }
func (m *Model) HasOnBoardMode() bool { return m.onboardHeader != nil }
func (m *Model) HasMRKey() bool       { return m.mrHeader != nil }
func (m *Model) HasMNKey() bool       { return m.mnHeader != nil }
func (m *Model) HasGKeysMode() bool   { return m.gkeysHeader != nil }

func (m *Model) String() string { return m.Name }

// Shared address tables. Most GX boards use the same three headers; G610/G810
// add a dedicated multimedia group, the G910 swaps the group-0 header and adds
// the g-key group, and the G815 addresses everything through one header.
var (
	addrGX = []groupAddress{
		{0, []byte{0x11, 0xff, 0x0c, 0x3a, 0x00, 0x10, 0x00, 0x01}},
		{1, []byte{0x12, 0xff, 0x0c, 0x3a, 0x00, 0x40, 0x00, 0x05}},
		{4, []byte{0x12, 0xff, 0x0f, 0x3d, 0x00, 0x01, 0x00, 0x0e}},
	}
	addrG610G810 = []groupAddress{
		{0, []byte{0x11, 0xff, 0x0c, 0x3a, 0x00, 0x10, 0x00, 0x01}},
		{1, []byte{0x12, 0xff, 0x0c, 0x3a, 0x00, 0x40, 0x00, 0x05}},
		{4, []byte{0x12, 0xff, 0x0f, 0x3d, 0x00, 0x01, 0x00, 0x0e}},
		{2, []byte{0x12, 0xff, 0x0c, 0x3a, 0x00, 0x02, 0x00, 0x05}},
	}
	addrG815 = []groupAddress{
		{0, []byte{0x11, 0xff, 0x10, 0x1c}},
	}
	addrG910 = []groupAddress{
		{0, []byte{0x11, 0xff, 0x0f, 0x3a, 0x00, 0x10, 0x00, 0x02}},
		{1, []byte{0x12, 0xff, 0x0c, 0x3a, 0x00, 0x40, 0x00, 0x05}},
		{3, []byte{0x12, 0xff, 0x0f, 0x3e, 0x00, 0x04, 0x00, 0x09}},
		{4, []byte{0x12, 0xff, 0x0f, 0x3d, 0x00, 0x01, 0x00, 0x0e}},
	}

	commitGX       = []byte{0x11, 0xff, 0x0c, 0x5a}
	startupGX      = []byte{0x11, 0xff, 0x0d, 0x5a, 0x00, 0x01}
	mnValueMapG815 = map[uint8]uint8{0x01: 0x01, 0x02: 0x02, 0x03: 0x04}
)

// models is the fixed catalog of supported hardware. Adding a keyboard means
// adding an entry here; encoder logic never changes per model beyond the
// G815/G213 paths already present.
var models = []*Model{
	{
		Name:          "G213",
		ProductIDs:    []uint16{0xc336},
		Regions:       5,
		groupAddr:     addrGX,
		effectBank:    0x0c,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
		regionHeader:  []byte{0x11, 0xff, 0x0c, 0x3a},
	},
	{
		Name:          "G410",
		ProductIDs:    []uint16{0xc330},
		perKey:        true,
		logoLED:       true,
		commit:        commitGX,
		groupAddr:     addrGX,
		effectBank:    0x0d,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
	{
		Name:          "G413",
		ProductIDs:    []uint16{0xc33a},
		groupAddr:     addrGX,
		effectBank:    0x0c,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
	{
		Name:          "G512",
		ProductIDs:    []uint16{0xc342},
		perKey:        true,
		logoLED:       true,
		commit:        commitGX,
		groupAddr:     addrGX,
		effectBank:    0x0d,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
	{
		Name:          "G513",
		ProductIDs:    []uint16{0xc33c},
		perKey:        true,
		logoLED:       true,
		commit:        commitGX,
		groupAddr:     addrGX,
		effectBank:    0x0d,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
	{
		Name:          "G610",
		ProductIDs:    []uint16{0xc333, 0xc338},
		perKey:        true,
		logoLED:       true,
		commit:        commitGX,
		groupAddr:     addrG610G810,
		effectBank:    0x0d,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
	{
		Name:          "G810",
		ProductIDs:    []uint16{0xc331, 0xc337},
		perKey:        true,
		logoLED:       true,
		commit:        commitGX,
		groupAddr:     addrG610G810,
		effectBank:    0x0d,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
	{
		Name:          "G815",
		ProductIDs:    []uint16{0xc33f},
		perKey:        true,
		logoLED:       true,
		commit:        []byte{0x11, 0xff, 0x10, 0x7f},
		groupAddr:     addrG815,
		effectBank:    0x0f,
		effectReg:     0x1c,
		hasEffects:    true,
		mrHeader:      []byte{0x11, 0xff, 0x0c, 0x0c},
		mnHeader:      []byte{0x11, 0xff, 0x0b, 0x1c},
		mnValueMap:    mnValueMapG815,
		gkeysHeader:   []byte{0x11, 0xff, 0x0a, 0x2b},
		onboardHeader: []byte{0x11, 0xff, 0x11, 0x1a},
		keysHeader:    []byte{0x11, 0xff, 0x10, 0x6c},
	},
	{
		Name:          "G910",
		ProductIDs:    []uint16{0xc32b, 0xc335},
		perKey:        true,
		logoLED:       true,
		commit:        []byte{0x11, 0xff, 0x0f, 0x5d},
		groupAddr:     addrG910,
		effectBank:    0x10,
		effectReg:     0x3c,
		hasEffects:    true,
		mrHeader:      []byte{0x11, 0xff, 0x0a, 0x0e},
		mnHeader:      []byte{0x11, 0xff, 0x09, 0x1e},
		gkeysHeader:   []byte{0x11, 0xff, 0x08, 0x2e},
		startupHeader: []byte{0x11, 0xff, 0x10, 0x5e, 0x00, 0x01},
	},
	{
		// Covers both the G Pro and the Pro X.
		Name:          "GPro",
		ProductIDs:    []uint16{0xc339},
		perKey:        true,
		logoLED:       true,
		commit:        commitGX,
		groupAddr:     addrGX,
		effectBank:    0x0d,
		effectReg:     0x3c,
		hasEffects:    true,
		startupHeader: startupGX,
	},
}

// LookupModel finds the catalog entry for a USB vendor/product id pair.
// Absence is expected for unsupported hardware, not an error.
func LookupModel(vendorID, productID uint16) (*Model, bool) {
	if vendorID != LogitechVendorID {
		return nil, false
	}
	for _, m := range models {
		for _, pid := range m.ProductIDs {
			if pid == productID {
				return m, true
			}
		}
	}
	return nil, false
}

// LookupModelByName finds a catalog entry by model name, case-insensitive.
func LookupModelByName(name string) (*Model, bool) {
	for _, m := range models {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return nil, false
}

// Models lists all catalog entries in registration order.
func Models() []*Model {
	out := make([]*Model, len(models))
	copy(out, models)
	return out
}

func (m *Model) groupHeader(group uint8) []byte {
	for _, ga := range m.groupAddr {
		if ga.group == group {
			return ga.header
		}
	}
	return nil
}
