package keyboard

import (
	"strconv"
	"strings"
)

// Group is a named logical set of keys, distinct from the firmware
// address groups and from physical regions.
type Group string

const (
	GroupLogo       Group = "logo"
	GroupIndicators Group = "indicators"
	GroupMultimedia Group = "multimedia"
	GroupGKeys      Group = "gkeys"
	GroupFKeys      Group = "fkeys"
	GroupModifiers  Group = "modifiers"
	GroupFunctions  Group = "functions"
	GroupArrows     Group = "arrows"
	GroupNumeric    Group = "numeric"
	GroupKeys       Group = "keys"
)

// Groups in the order "set --all" walks them.
var groupOrder = []Group{
	GroupLogo, GroupIndicators, GroupMultimedia, GroupGKeys, GroupFKeys,
	GroupModifiers, GroupFunctions, GroupArrows, GroupNumeric, GroupKeys,
}

var groupKeys = map[Group][]Key{
	GroupLogo:       {KeyLogo, KeyLogo2},
	GroupIndicators: {KeyBacklight, KeyGame, KeyCaps, KeyScroll, KeyNum},
	GroupMultimedia: {KeyNext, KeyPrev, KeyStop, KeyPlay, KeyMute},
	GroupGKeys:      {KeyG1, KeyG2, KeyG3, KeyG4, KeyG5, KeyG6, KeyG7, KeyG8, KeyG9},
	GroupFKeys: {
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6,
		KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	},
	GroupModifiers: {
		KeyShiftLeft, KeyCtrlLeft, KeyWinLeft, KeyAltLeft,
		KeyAltRight, KeyWinRight, KeyCtrlRight, KeyShiftRight, KeyMenu,
	},
	GroupFunctions: {
		KeyEsc, KeyPrintScrn, KeyScrollLck, KeyPause,
		KeyInsert, KeyDel, KeyHome, KeyEnd, KeyPageUp, KeyPageDown,
	},
	GroupArrows: {KeyArrowUp, KeyArrowLeft, KeyArrowDown, KeyArrowRight},
	GroupNumeric: {
		KeyNumLock, KeyNumSlash, KeyNumAster, KeyNumMinus, KeyNumPlus,
		KeyNumEnter, KeyNum1, KeyNum2, KeyNum3, KeyNum4, KeyNum5,
		KeyNum6, KeyNum7, KeyNum8, KeyNum9, KeyNum0, KeyNumDot,
	},
	GroupKeys: {
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ,
		KeyK, KeyL, KeyM, KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT,
		KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0,
		KeyEnter, KeyBackspace, KeyTab, KeySpace, KeyMinus, KeyEqual,
		KeyOpenBrkt, KeyCloseBrkt, KeyBackslash, KeyDollar, KeySemicolon,
		KeyQuote, KeyTilde, KeyComma, KeyPeriod, KeySlash, KeyCapsLock,
		KeyIntlBkslsh, KeyAbntSlash,
	},
}

// allKeys is every addressable key, in group walk order.
var allKeys = func() []Key {
	var keys []Key
	for _, g := range groupOrder {
		keys = append(keys, groupKeys[g]...)
	}
	return keys
}()

// Keys returns the members of the group; nil for an unknown group.
func (g Group) Keys() []Key { return groupKeys[g] }

func (g Group) String() string { return string(g) }

// ParseGroup resolves a group name, case-insensitive; "g-keys" and "f-keys"
// are accepted spellings.
func ParseGroup(s string) (Group, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	g := Group(normalized)
	if _, ok := groupKeys[g]; !ok {
		return "", errInvalidGroupOrRegion(s)
	}
	return g, nil
}

// Groups lists all group names in walk order.
func Groups() []Group {
	out := make([]Group, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// ParseRegion parses a region index (decimal or 0x-prefixed hex). Whether the
// index exists on a given model is checked by the encoder.
func ParseRegion(s string) (uint8, error) {
	v := strings.TrimSpace(s)
	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(v), "0x"); ok {
		v, base = rest, 16
	}
	n, err := strconv.ParseUint(v, base, 8)
	if err != nil {
		return 0, errInvalidGroupOrRegion(s)
	}
	return uint8(n), nil
}

// UnmarshalText lets a Group be used directly as a CLI argument type.
func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
