package keyboard

import "fmt"

// Key is a two-byte scan code: high byte = address group, low byte = HID code.
// Values are fixed by the firmware protocol; never renumber.
type Key uint16

const (
	KeyLogo       Key = 0x0001
	KeyLogo2      Key = 0x0002
	KeyBacklight  Key = 0x0101
	KeyGame       Key = 0x0102
	KeyCaps       Key = 0x0103
	KeyScroll     Key = 0x0104
	KeyNum        Key = 0x0105
	KeyNext       Key = 0x02b5
	KeyPrev       Key = 0x02b6
	KeyStop       Key = 0x02b7
	KeyPlay       Key = 0x02cd
	KeyMute       Key = 0x02e2
	KeyG1         Key = 0x0301
	KeyG2         Key = 0x0302
	KeyG3         Key = 0x0303
	KeyG4         Key = 0x0304
	KeyG5         Key = 0x0305
	KeyG6         Key = 0x0306
	KeyG7         Key = 0x0307
	KeyG8         Key = 0x0308
	KeyG9         Key = 0x0309
	KeyA          Key = 0x0404
	KeyB          Key = 0x0405
	KeyC          Key = 0x0406
	KeyD          Key = 0x0407
	KeyE          Key = 0x0408
	KeyF          Key = 0x0409
	KeyG          Key = 0x040a
	KeyH          Key = 0x040b
	KeyI          Key = 0x040c
	KeyJ          Key = 0x040d
	KeyK          Key = 0x040e
	KeyL          Key = 0x040f
	KeyM          Key = 0x0410
	KeyN          Key = 0x0411
	KeyO          Key = 0x0412
	KeyP          Key = 0x0413
	KeyQ          Key = 0x0414
	KeyR          Key = 0x0415
	KeyS          Key = 0x0416
	KeyT          Key = 0x0417
	KeyU          Key = 0x0418
	KeyV          Key = 0x0419
	KeyW          Key = 0x041a
	KeyX          Key = 0x041b
	KeyY          Key = 0x041c
	KeyZ          Key = 0x041d
	Key1          Key = 0x041e
	Key2          Key = 0x041f
	Key3          Key = 0x0420
	Key4          Key = 0x0421
	Key5          Key = 0x0422
	Key6          Key = 0x0423
	Key7          Key = 0x0424
	Key8          Key = 0x0425
	Key9          Key = 0x0426
	Key0          Key = 0x0427
	KeyEnter      Key = 0x0428
	KeyEsc        Key = 0x0429
	KeyBackspace  Key = 0x042a
	KeyTab        Key = 0x042b
	KeySpace      Key = 0x042c
	KeyMinus      Key = 0x042d
	KeyEqual      Key = 0x042e
	KeyOpenBrkt   Key = 0x042f
	KeyCloseBrkt  Key = 0x0430
	KeyBackslash  Key = 0x0431
	KeyDollar     Key = 0x0432
	KeySemicolon  Key = 0x0433
	KeyQuote      Key = 0x0434
	KeyTilde      Key = 0x0435
	KeyComma      Key = 0x0436
	KeyPeriod     Key = 0x0437
	KeySlash      Key = 0x0438
	KeyCapsLock   Key = 0x0439
	KeyF1         Key = 0x043a
	KeyF2         Key = 0x043b
	KeyF3         Key = 0x043c
	KeyF4         Key = 0x043d
	KeyF5         Key = 0x043e
	KeyF6         Key = 0x043f
	KeyF7         Key = 0x0440
	KeyF8         Key = 0x0441
	KeyF9         Key = 0x0442
	KeyF10        Key = 0x0443
	KeyF11        Key = 0x0444
	KeyF12        Key = 0x0445
	KeyPrintScrn  Key = 0x0446
	KeyScrollLck  Key = 0x0447
	KeyPause      Key = 0x0448
	KeyInsert     Key = 0x0449
	KeyHome       Key = 0x044a
	KeyPageUp     Key = 0x044b
	KeyDel        Key = 0x044c
	KeyEnd        Key = 0x044d
	KeyPageDown   Key = 0x044e
	KeyArrowRight Key = 0x044f
	KeyArrowLeft  Key = 0x0450
	KeyArrowDown  Key = 0x0451
	KeyArrowUp    Key = 0x0452
	KeyNumLock    Key = 0x0453
	KeyNumSlash   Key = 0x0454
	KeyNumAster   Key = 0x0455
	KeyNumMinus   Key = 0x0456
	KeyNumPlus    Key = 0x0457
	KeyNumEnter   Key = 0x0458
	KeyNum1       Key = 0x0459
	KeyNum2       Key = 0x045a
	KeyNum3       Key = 0x045b
	KeyNum4       Key = 0x045c
	KeyNum5       Key = 0x045d
	KeyNum6       Key = 0x045e
	KeyNum7       Key = 0x045f
	KeyNum8       Key = 0x0460
	KeyNum9       Key = 0x0461
	KeyNum0       Key = 0x0462
	KeyNumDot     Key = 0x0463
	KeyIntlBkslsh Key = 0x0464
	KeyMenu       Key = 0x0465
	KeyAbntSlash  Key = 0x0487
	KeyCtrlLeft   Key = 0x04e0
	KeyShiftLeft  Key = 0x04e1
	KeyAltLeft    Key = 0x04e2
	KeyWinLeft    Key = 0x04e3
	KeyCtrlRight  Key = 0x04e4
	KeyShiftRight Key = 0x04e5
	KeyAltRight   Key = 0x04e6
	KeyWinRight   Key = 0x04e7
)

// AddressGroup is the firmware address-group nibble (0 = logo, 1 = indicators,
// 2 = multimedia, 3 = g-keys, 4 = main block).
func (k Key) AddressGroup() uint8 { return uint8(k >> 8) }

// Code is the low HID code byte used inside set-key payloads.
func (k Key) Code() uint8 { return uint8(k) }

func (k Key) String() string {
	if name, ok := keyStrings[k]; ok {
		return name
	}
	return fmt.Sprintf("key(0x%04x)", uint16(k))
}

// KeyColor pairs one key with the color it should take.
type KeyColor struct {
	Key   Key
	Color Color
}
