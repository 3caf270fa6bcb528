package keyboard

import (
	"sort"
	"strconv"
)

// Packet is one fixed-length HID output report. Encoders return fresh
// buffers on every call; a Packet is never mutated after construction.
type Packet []byte

// Report sizes used by the protocol. Address group 0 (logo) takes short
// reports, every other key group takes long ones.
const (
	ShortReportSize = 20
	LongReportSize  = 64
)

// keysPerPacket is the addressable key capacity of one set-keys report:
// 8 header bytes, then 4 bytes (code, r, g, b) per key.
func keysPerPacket(size int) int { return (size - 8) / 4 }

// g815KeysPerPacket is the key-id capacity of a G815 single-color report.
const g815KeysPerPacket = 13

// pad zero-fills data up to size. Unused payload bytes are always zero,
// never uninitialized.
func pad(data []byte, size int) Packet {
	p := make(Packet, size)
	copy(p, data)
	return p
}

// CommitPacket builds the report instructing firmware to apply staged
// color-set commands. ok is false when the model commits implicitly.
func CommitPacket(m *Model) (Packet, bool) {
	if !m.HasCommit() {
		return nil, false
	}
	return pad(m.commit, ShortReportSize), true
}

// g815KeyID translates a key into the byte identifier used by the G815.
// Keys absent from the G815 layout return ok=false.
func g815KeyID(k Key) (uint8, bool) {
	switch k {
	case KeyLogo2, KeyGame, KeyCaps, KeyScroll, KeyNum, KeyStop,
		KeyG6, KeyG7, KeyG8, KeyG9:
		return 0, false
	case KeyPlay:
		return 0x9b, true
	case KeyMute:
		return 0x9c, true
	case KeyNext:
		return 0x9d, true
	case KeyPrev:
		return 0x9e, true
	case KeyCtrlLeft, KeyShiftLeft, KeyAltLeft, KeyWinLeft,
		KeyCtrlRight, KeyShiftRight, KeyAltRight, KeyWinRight:
		return k.Code() - 0x78, true
	}
	switch k.AddressGroup() {
	case 0:
		return k.Code() + 0xd1, true
	case 1:
		return k.Code() + 0x98, true
	case 3:
		return k.Code() + 0xb3, true
	case 4:
		return k.Code() - 0x03, true
	}
	return 0, false
}

// setKeysPacket builds one report for keys that share an address group
// (or, on the G815, share a color). ok is false when the model has no
// per-key support or the slice mixes groups/colors.
func setKeysPacket(m *Model, keys []KeyColor) (Packet, bool) {
	if len(keys) == 0 || !m.HasPerKey() {
		return nil, false
	}

	if m.keysHeader != nil {
		// G815 format: one color for the whole packet, then key ids.
		color := keys[0].Color
		for _, kc := range keys[1:] {
			if kc.Color != color {
				return nil, false
			}
		}

		data := make([]byte, 0, ShortReportSize)
		data = append(data, m.keysHeader...)
		data = append(data, color.R, color.G, color.B)
		n := len(keys)
		if n > g815KeysPerPacket {
			n = g815KeysPerPacket
		}
		for _, kc := range keys[:n] {
			if id, ok := g815KeyID(kc.Key); ok {
				data = append(data, id)
			}
		}
		if len(data) < ShortReportSize {
			data = append(data, 0xff) // sentinel
		}
		return pad(data, ShortReportSize), true
	}

	group := keys[0].Key.AddressGroup()
	for _, kc := range keys[1:] {
		if kc.Key.AddressGroup() != group {
			return nil, false
		}
	}

	header := m.groupHeader(group)
	if header == nil {
		return nil, false
	}

	size := LongReportSize
	if group == 0 {
		size = ShortReportSize
	}

	data := make([]byte, 0, size)
	data = append(data, header...)
	n := len(keys)
	if max := keysPerPacket(size); n > max {
		n = max
	}
	for _, kc := range keys[:n] {
		data = append(data, kc.Key.Code(), kc.Color.R, kc.Color.G, kc.Color.B)
	}
	return pad(data, size), true
}

// SetKeysPackets encodes an arbitrary key/color list into the report
// sequence the firmware expects, splitting across packets where a group
// exceeds one report's capacity. Models without per-key support yield no
// packets. Output is deterministic for identical input.
func SetKeysPackets(m *Model, keys []KeyColor) []Packet {
	if len(keys) == 0 || !m.HasPerKey() {
		return nil
	}

	var packets []Packet

	if m.keysHeader != nil {
		// G815: one color per packet, so batch by color first.
		byColor := make(map[Color][]KeyColor)
		var colors []Color
		for _, kc := range keys {
			if _, seen := byColor[kc.Color]; !seen {
				colors = append(colors, kc.Color)
			}
			byColor[kc.Color] = append(byColor[kc.Color], kc)
		}
		sort.Slice(colors, func(i, j int) bool {
			a, b := colors[i], colors[j]
			if a.R != b.R {
				return a.R < b.R
			}
			if a.G != b.G {
				return a.G < b.G
			}
			return a.B < b.B
		})

		for _, c := range colors {
			batch := byColor[c]
			for len(batch) > 0 {
				n := len(batch)
				if n > g815KeysPerPacket {
					n = g815KeysPerPacket
				}
				if p, ok := setKeysPacket(m, batch[:n]); ok {
					packets = append(packets, p)
				}
				batch = batch[n:]
			}
		}
		return packets
	}

	byGroup := make(map[uint8][]KeyColor)
	var groups []uint8
	for _, kc := range keys {
		g := kc.Key.AddressGroup()
		if _, seen := byGroup[g]; !seen {
			groups = append(groups, g)
		}
		byGroup[g] = append(byGroup[g], kc)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

	for _, g := range groups {
		size := LongReportSize
		if g == 0 {
			size = ShortReportSize
		}
		max := keysPerPacket(size)

		batch := byGroup[g]
		for len(batch) > 0 {
			n := len(batch)
			if n > max {
				n = max
			}
			if p, ok := setKeysPacket(m, batch[:n]); ok {
				packets = append(packets, p)
			}
			batch = batch[n:]
		}
	}
	return packets
}

// SetGroupPackets colors every key of a logical group.
func SetGroupPackets(m *Model, g Group, c Color) ([]Packet, error) {
	members := g.Keys()
	if members == nil {
		return nil, errInvalidGroupOrRegion(string(g))
	}
	keys := make([]KeyColor, len(members))
	for i, k := range members {
		keys[i] = KeyColor{Key: k, Color: c}
	}
	return SetKeysPackets(m, keys), nil
}

// SetAllPackets colors the whole board, walking groups in fixed order.
func SetAllPackets(m *Model, c Color) []Packet {
	var packets []Packet
	for _, g := range groupOrder {
		ps, _ := SetGroupPackets(m, g, c)
		packets = append(packets, ps...)
	}
	return packets
}

// RegionPacket colors one physical region on zoned boards.
func RegionPacket(m *Model, region uint8, c Color) (Packet, error) {
	if !m.HasRegions() {
		return nil, nil
	}
	if region < 1 || region > m.Regions {
		return nil, errInvalidGroupOrRegion(m.Name + " region " + strconv.Itoa(int(region)))
	}
	data := make([]byte, 0, ShortReportSize)
	data = append(data, m.regionHeader...)
	data = append(data, region, 0x01, c.R, c.G, c.B)
	return pad(data, ShortReportSize), nil
}

// StartupModePacket configures the firmware-persisted power-on behavior.
func StartupModePacket(m *Model, mode StartupMode) (Packet, bool) {
	if !m.HasStartupMode() {
		return nil, false
	}
	data := make([]byte, 0, ShortReportSize)
	data = append(data, m.startupHeader...)
	data = append(data, uint8(mode))
	return pad(data, ShortReportSize), true
}

// OnBoardModePacket switches between on-board and software lighting control.
func OnBoardModePacket(m *Model, mode OnBoardMode) (Packet, bool) {
	if !m.HasOnBoardMode() {
		return nil, false
	}
	data := make([]byte, 0, ShortReportSize)
	data = append(data, m.onboardHeader...)
	data = append(data, uint8(mode))
	return pad(data, ShortReportSize), true
}

// MRKeyPacket sets the MR key state (0 or 1) on boards that have one.
func MRKeyPacket(m *Model, value uint8) (Packet, bool) {
	if !m.HasMRKey() || value > 0x01 {
		return nil, false
	}
	data := make([]byte, 0, ShortReportSize)
	data = append(data, m.mrHeader...)
	data = append(data, value)
	return pad(data, ShortReportSize), true
}

// MNKeyPacket sets the M1/M2/M3 indicator. The G815 remaps values through
// its bit-per-key table; the G910 takes 0x00..0x07 directly.
func MNKeyPacket(m *Model, value uint8) (Packet, bool) {
	if !m.HasMNKey() {
		return nil, false
	}
	wire := value
	if m.mnValueMap != nil {
		mapped, ok := m.mnValueMap[value]
		if !ok {
			return nil, false
		}
		wire = mapped
	} else if value > 0x07 {
		return nil, false
	}
	data := make([]byte, 0, ShortReportSize)
	data = append(data, m.mnHeader...)
	data = append(data, wire)
	return pad(data, ShortReportSize), true
}

// GKeysModePacket toggles g-key reporting mode (0 or 1).
func GKeysModePacket(m *Model, value uint8) (Packet, bool) {
	if !m.HasGKeysMode() || value > 0x01 {
		return nil, false
	}
	data := make([]byte, 0, ShortReportSize)
	data = append(data, m.gkeysHeader...)
	data = append(data, value)
	return pad(data, ShortReportSize), true
}
