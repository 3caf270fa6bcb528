package keyboard

import "strings"

// Canonical display names. One entry per Key; aliases live in keyAliases.
var keyStrings = map[Key]string{
	KeyLogo: "logo", KeyLogo2: "logo2",
	KeyBacklight: "backlight", KeyGame: "game", KeyCaps: "caps",
	KeyScroll: "scroll", KeyNum: "num",
	KeyNext: "next", KeyPrev: "prev", KeyStop: "stop", KeyPlay: "play", KeyMute: "mute",
	KeyG1: "g1", KeyG2: "g2", KeyG3: "g3", KeyG4: "g4", KeyG5: "g5",
	KeyG6: "g6", KeyG7: "g7", KeyG8: "g8", KeyG9: "g9",
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyEnter: "enter", KeyEsc: "esc", KeyBackspace: "backspace",
	KeyTab: "tab", KeySpace: "space",
	KeyMinus: "minus", KeyEqual: "equal",
	KeyOpenBrkt: "open_bracket", KeyCloseBrkt: "close_bracket",
	KeyBackslash: "backslash", KeyDollar: "dollar",
	KeySemicolon: "semicolon", KeyQuote: "quote", KeyTilde: "tilde",
	KeyComma: "comma", KeyPeriod: "period", KeySlash: "slash",
	KeyCapsLock: "caps_lock",
	KeyF1:       "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeyPrintScrn: "print_screen", KeyScrollLck: "scroll_lock", KeyPause: "pause_break",
	KeyInsert: "insert", KeyHome: "home", KeyPageUp: "page_up",
	KeyDel: "del", KeyEnd: "end", KeyPageDown: "page_down",
	KeyArrowRight: "arrow_right", KeyArrowLeft: "arrow_left",
	KeyArrowDown: "arrow_bottom", KeyArrowUp: "arrow_top",
	KeyNumLock: "num_lock", KeyNumSlash: "num_slash", KeyNumAster: "num_asterisk",
	KeyNumMinus: "num_minus", KeyNumPlus: "num_plus", KeyNumEnter: "num_enter",
	KeyNum1: "num1", KeyNum2: "num2", KeyNum3: "num3", KeyNum4: "num4", KeyNum5: "num5",
	KeyNum6: "num6", KeyNum7: "num7", KeyNum8: "num8", KeyNum9: "num9", KeyNum0: "num0",
	KeyNumDot: "num_dot", KeyIntlBkslsh: "intl_backslash", KeyMenu: "menu",
	KeyAbntSlash: "abnt_slash",
	KeyCtrlLeft:  "ctrl_left", KeyShiftLeft: "shift_left", KeyAltLeft: "alt_left",
	KeyWinLeft: "win_left", KeyCtrlRight: "ctrl_right", KeyShiftRight: "shift_right",
	KeyAltRight: "alt_right", KeyWinRight: "win_right",
}

// Extra accepted spellings on top of the canonical names. Keep the left-hand
// side lowercase; ParseKey lowercases its input before lookup.
var keyAliases = map[string]Key{
	"back_light": KeyBacklight, "light": KeyBacklight,
	"gamemode": KeyGame, "game_mode": KeyGame,
	"capsindicator": KeyCaps, "caps_indicator": KeyCaps,
	"scrollindicator": KeyScroll, "scroll_indicator": KeyScroll,
	"numindicator": KeyNum, "num_indicator": KeyNum,

	"previous": KeyPrev, "playpause": KeyPlay, "play_pause": KeyPlay,

	"right": KeyArrowRight, "arrowright": KeyArrowRight,
	"left": KeyArrowLeft, "arrowleft": KeyArrowLeft,
	"up": KeyArrowUp, "arrowtop": KeyArrowUp,
	"down": KeyArrowDown, "arrowbottom": KeyArrowDown,

	"pageup": KeyPageUp, "pgup": KeyPageUp,
	"pagedown": KeyPageDown, "pgdn": KeyPageDown,
	"delete": KeyDel,

	"numlock": KeyNumLock, "num_lock_key": KeyNumLock,
	"num/": KeyNumSlash, "numslash": KeyNumSlash,
	"num*": KeyNumAster, "numasterisk": KeyNumAster,
	"num-": KeyNumMinus, "numminus": KeyNumMinus,
	"num+": KeyNumPlus, "numplus": KeyNumPlus,
	"numenter": KeyNumEnter, "num.": KeyNumDot, "numdot": KeyNumDot,

	"~": KeyTilde, "-": KeyMinus, "=": KeyEqual,
	"[": KeyOpenBrkt, "]": KeyCloseBrkt,
	"\\": KeyBackslash, ";": KeySemicolon,
	"\"": KeyQuote, "$": KeyDollar,
	",": KeyComma, ".": KeyPeriod, "/": KeySlash,

	"return": KeyEnter, "enter_key": KeyEnter,
	"escape": KeyEsc, "escape_key": KeyEsc,
	"capslock": KeyCapsLock,
	"printscreen": KeyPrintScrn, "print": KeyPrintScrn, "printscrn": KeyPrintScrn,
	"scrolllock": KeyScrollLck,
	"pause": KeyPause, "pausebreak": KeyPause,
	"intlbackslash": KeyIntlBkslsh, "abntslash": KeyAbntSlash,

	"ctrlleft": KeyCtrlLeft, "lctrl": KeyCtrlLeft, "leftctrl": KeyCtrlLeft,
	"shiftleft": KeyShiftLeft, "lshift": KeyShiftLeft, "leftshift": KeyShiftLeft,
	"altleft": KeyAltLeft, "lalt": KeyAltLeft, "leftalt": KeyAltLeft,
	"winleft": KeyWinLeft, "lwin": KeyWinLeft,
	"ctrlright": KeyCtrlRight, "rctrl": KeyCtrlRight, "rightctrl": KeyCtrlRight,
	"shiftright": KeyShiftRight, "rshift": KeyShiftRight, "rightshift": KeyShiftRight,
	"altright": KeyAltRight, "ralt": KeyAltRight, "rightalt": KeyAltRight,
	"winright": KeyWinRight, "rwin": KeyWinRight,
}

// keyLookup folds canonical names and aliases into one parse table.
var keyLookup = func() map[string]Key {
	m := make(map[string]Key, len(keyStrings)+len(keyAliases))
	for k, name := range keyStrings {
		m[name] = k
		// canonical names also parse without underscores ("pageup", "arrowleft")
		m[strings.ReplaceAll(name, "_", "")] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// ParseKey resolves a key name or alias, case-insensitive.
func ParseKey(s string) (Key, error) {
	if k, ok := keyLookup[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, errInvalidKey(s)
}

// KeyNames lists all canonical key names in scan-code order.
func KeyNames() []string {
	names := make([]string, 0, len(allKeys))
	for _, k := range allKeys {
		names = append(names, k.String())
	}
	return names
}
