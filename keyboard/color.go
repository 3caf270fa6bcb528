package keyboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Color is one RGB triple as sent to the firmware.
type Color struct {
	R, G, B uint8
}

// ColorWhite is the default color used when a command omits one.
var ColorWhite = Color{0xff, 0xff, 0xff}

// Common color names accepted wherever a color argument is expected.
var colorNames = map[string]Color{
	"black":   {0x00, 0x00, 0x00},
	"white":   {0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00},
	"green":   {0x00, 0xff, 0x00},
	"blue":    {0x00, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00},
	"cyan":    {0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"pink":    {0xff, 0xc0, 0xcb},
}

// ParseColor accepts a color name, "rrggbb", or "rr" (grayscale ramp),
// case-insensitive, with an optional leading '#'.
func ParseColor(s string) (Color, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")

	if c, ok := colorNames[v]; ok {
		return c, nil
	}

	switch len(v) {
	case 6:
		n, err := strconv.ParseUint(v, 16, 32)
		if err != nil {
			return Color{}, errInvalidColor(s)
		}
		return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
	case 2:
		n, err := strconv.ParseUint(v, 16, 8)
		if err != nil {
			return Color{}, errInvalidColor(s)
		}
		b := uint8(n)
		return Color{R: b, G: b, B: b}, nil
	default:
		return Color{}, errInvalidColor(s)
	}
}

// Hex renders the color as lowercase rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// ColorNames lists the accepted color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for n := range colorNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// UnmarshalText lets a Color be used directly as a CLI argument type.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
