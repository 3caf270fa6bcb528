package keyboard

import (
	"fmt"
	"strings"
	"time"
)

// Effect identifies a firmware-native lighting animation. The high byte is
// the effect group the firmware switches on; the low byte selects a variant
// within the group (only waves have variants).
type Effect uint16

const (
	EffectOff       Effect = 0x0000
	EffectColor     Effect = 0x0100
	EffectBreathing Effect = 0x0200
	EffectCycle     Effect = 0x0300
	EffectWaves     Effect = 0x0400
	EffectHWave     Effect = 0x0401
	EffectVWave     Effect = 0x0402
	EffectCWave     Effect = 0x0403
	EffectRipple    Effect = 0x0500
)

func (e Effect) group() uint8   { return uint8(e >> 8) }
func (e Effect) variant() uint8 { return uint8(e) }

var effectNames = map[Effect]string{
	EffectOff:       "off",
	EffectColor:     "color",
	EffectBreathing: "breathing",
	EffectCycle:     "cycle",
	EffectWaves:     "waves",
	EffectHWave:     "hwave",
	EffectVWave:     "vwave",
	EffectCWave:     "cwave",
	EffectRipple:    "ripple",
}

func (e Effect) String() string {
	if n, ok := effectNames[e]; ok {
		return n
	}
	return fmt.Sprintf("effect(0x%04x)", uint16(e))
}

// Hyphenated wave spellings are accepted alongside the canonical names.
var effectAliases = map[string]Effect{
	"h-wave": EffectHWave,
	"v-wave": EffectVWave,
	"c-wave": EffectCWave,
}

// ParseEffect resolves an effect name or alias, case-insensitive.
func ParseEffect(s string) (Effect, error) {
	for e, n := range effectNames {
		if strings.EqualFold(s, n) {
			return e, nil
		}
	}
	if e, ok := effectAliases[strings.ToLower(s)]; ok {
		return e, nil
	}
	return 0, errInvalidEffectParameter(fmt.Sprintf("unknown effect %q", s))
}

// EffectPart selects which LED zone an effect applies to.
type EffectPart uint8

const (
	EffectPartKeys EffectPart = 0x00
	EffectPartLogo EffectPart = 0x01
	// EffectPartAll expands to keys followed by logo.
	EffectPartAll EffectPart = 0xff
)

func (p EffectPart) String() string {
	switch p {
	case EffectPartKeys:
		return "keys"
	case EffectPartLogo:
		return "logo"
	case EffectPartAll:
		return "all"
	}
	return fmt.Sprintf("part(0x%02x)", uint8(p))
}

// ParseEffectPart resolves a part name, case-insensitive.
func ParseEffectPart(s string) (EffectPart, error) {
	switch {
	case strings.EqualFold(s, "keys"):
		return EffectPartKeys, nil
	case strings.EqualFold(s, "logo"):
		return EffectPartLogo, nil
	case strings.EqualFold(s, "all"):
		return EffectPartAll, nil
	}
	return 0, errInvalidEffectParameter(fmt.Sprintf("unknown effect part %q", s))
}

// EffectStorage selects whether the effect is applied transiently or stored
// in the user slot (recalled with backlight+7).
type EffectStorage uint8

const (
	EffectStorageNone EffectStorage = 0x00
	EffectStorageUser EffectStorage = 0x01
)

func (s EffectStorage) String() string {
	if s == EffectStorageUser {
		return "user"
	}
	return "none"
}

// ParseEffectStorage resolves a storage name, case-insensitive.
func ParseEffectStorage(s string) (EffectStorage, error) {
	switch {
	case strings.EqualFold(s, "none"), s == "":
		return EffectStorageNone, nil
	case strings.EqualFold(s, "user"):
		return EffectStorageUser, nil
	}
	return 0, errInvalidEffectParameter(fmt.Sprintf("unknown effect storage %q", s))
}

// maxEffectPeriod is the largest period the 16-bit millisecond wire field
// can carry. Larger values are rejected, never clamped.
const maxEffectPeriod = 65535 * time.Millisecond

// NativeEffect is one fully parameterized native effect request.
type NativeEffect struct {
	Effect  Effect
	Part    EffectPart
	Period  time.Duration
	Color   Color
	Storage EffectStorage
}

// baseEffectPacket builds the model-independent 20-byte effect layout.
// The caller guarantees part is keys or logo, never all.
func baseEffectPacket(m *Model, fx NativeEffect) Packet {
	perMS := uint16(fx.Period.Milliseconds())
	return Packet{
		0x11, 0xff, m.effectBank, m.effectReg,
		uint8(fx.Part),
		fx.Effect.group(),
		fx.Color.R, fx.Color.G, fx.Color.B,
		uint8(perMS >> 8), uint8(perMS),
		uint8(perMS >> 8), uint8(perMS),
		fx.Effect.variant(),
		0x64,
		uint8(perMS >> 8),
		uint8(fx.Storage),
		0x00, 0x00, 0x00,
	}
}

// NativeEffectPackets encodes a native effect request into the report
// sequence the firmware requires (set-up packets strictly before the
// activation packet). Models whose firmware lacks the effect register fail
// with UnsupportedEffect; out-of-range parameters fail with
// InvalidEffectParameter and yield no packets.
func NativeEffectPackets(m *Model, fx NativeEffect) ([]Packet, error) {
	if !m.HasEffects() {
		return nil, errUnsupportedEffect(fmt.Sprintf("%s does not support native effects", m.Name))
	}
	if _, known := effectNames[fx.Effect]; !known {
		return nil, errInvalidEffectParameter(fmt.Sprintf("unknown effect 0x%04x", uint16(fx.Effect)))
	}
	if fx.Period < 0 || fx.Period > maxEffectPeriod {
		return nil, errInvalidEffectParameter(fmt.Sprintf("period %v outside 0..65535ms", fx.Period))
	}

	if fx.Part == EffectPartAll {
		var packets []Packet
		for _, part := range []EffectPart{EffectPartKeys, EffectPartLogo} {
			sub := fx
			sub.Part = part
			ps, err := NativeEffectPackets(m, sub)
			if err != nil {
				return nil, err
			}
			packets = append(packets, ps...)
		}
		return packets, nil
	}

	// Boards without a logo LED take no logo packets at all.
	if fx.Part == EffectPartLogo && !m.HasLogoLED() {
		return nil, nil
	}

	// Waves cannot run on the logo; firmware falls back to a fixed cyan.
	// The G815 handles this itself through its per-part patching below.
	if m.keysHeader == nil && fx.Part == EffectPartLogo && fx.Effect.group() == EffectWaves.group() {
		fallback := fx
		fallback.Effect = EffectColor
		fallback.Period = 0
		fallback.Color = Color{0x00, 0xff, 0xff}
		return NativeEffectPackets(m, fallback)
	}

	data := baseEffectPacket(m, fx)

	if m.keysHeader == nil {
		return []Packet{data}, nil
	}

	// G815: a fixed set-up report must precede the effect report, and a few
	// payload bytes differ per part.
	setup := pad([]byte{0x11, 0xff, 0x0f, 0x5c, 0x01, 0x03, 0x03}, ShortReportSize)

	data[16] = 0x01

	switch fx.Part {
	case EffectPartKeys:
		data[4] = 0x01
		if fx.Effect == EffectRipple {
			// Keys ripple carries the period explicitly.
			perMS := uint16(fx.Period.Milliseconds())
			data[9] = 0x00
			data[10] = uint8(perMS >> 8)
			data[11] = uint8(perMS)
			data[12] = 0x00
		}
	case EffectPartLogo:
		data[4] = 0x00
		switch fx.Effect {
		case EffectBreathing:
			data[5] = 0x03
		case EffectCWave, EffectVWave, EffectHWave:
			data[13] = 0x64
			data[5] = 0x02
		case EffectWaves, EffectCycle:
			data[5] = 0x02
		case EffectRipple, EffectOff:
			data[5] = 0x00
		default:
			data[5] = 0x01
		}
	}

	return []Packet{setup, data}, nil
}
