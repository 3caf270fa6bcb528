package keyboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StartupMode is the firmware-persisted lighting behavior at power on.
type StartupMode uint8

const (
	StartupWave  StartupMode = 0x01
	StartupColor StartupMode = 0x02
)

func (m StartupMode) String() string {
	if m == StartupWave {
		return "wave"
	}
	return "color"
}

// ParseStartupMode resolves "wave" or "color", case-insensitive.
func ParseStartupMode(s string) (StartupMode, error) {
	switch {
	case strings.EqualFold(s, "wave"):
		return StartupWave, nil
	case strings.EqualFold(s, "color"):
		return StartupColor, nil
	}
	return 0, &Error{Kind: KindInvalidEffectParameter, Detail: fmt.Sprintf("unknown startup mode %q", s)}
}

// OnBoardMode selects between firmware-driven and host-driven lighting.
type OnBoardMode uint8

const (
	OnBoardModeBoard    OnBoardMode = 0x01
	OnBoardModeSoftware OnBoardMode = 0x02
)

func (m OnBoardMode) String() string {
	if m == OnBoardModeBoard {
		return "board"
	}
	return "software"
}

// ParseOnBoardMode resolves "board" or "software", case-insensitive.
func ParseOnBoardMode(s string) (OnBoardMode, error) {
	switch {
	case strings.EqualFold(s, "board"):
		return OnBoardModeBoard, nil
	case strings.EqualFold(s, "software"):
		return OnBoardModeSoftware, nil
	}
	return 0, &Error{Kind: KindInvalidEffectParameter, Detail: fmt.Sprintf("unknown on-board mode %q", s)}
}

// ParsePeriod accepts "250ms", "2s", or a bare hex byte meaning byte<<8
// milliseconds (the firmware's coarse period unit).
func ParsePeriod(s string) (time.Duration, error) {
	v := strings.TrimSpace(s)
	lower := strings.ToLower(v)

	if ms, ok := strings.CutSuffix(lower, "ms"); ok {
		n, err := strconv.ParseUint(ms, 10, 64)
		if err != nil {
			return 0, errInvalidEffectParameter(fmt.Sprintf("bad period %q", s))
		}
		return time.Duration(n) * time.Millisecond, nil
	}
	if sec, ok := strings.CutSuffix(lower, "s"); ok {
		n, err := strconv.ParseUint(sec, 10, 64)
		if err != nil {
			return 0, errInvalidEffectParameter(fmt.Sprintf("bad period %q", s))
		}
		return time.Duration(n) * time.Second, nil
	}

	if len(lower) == 1 || len(lower) == 2 {
		if n, err := strconv.ParseUint(lower, 16, 8); err == nil {
			return time.Duration(n<<8) * time.Millisecond, nil
		}
	}
	return 0, errInvalidEffectParameter(fmt.Sprintf("bad period %q", s))
}

// ParseUint8 accepts decimal or hex (with or without 0x prefix).
func ParseUint8(s string) (uint8, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return uint8(n), nil
	}
	hex := strings.TrimPrefix(strings.ToLower(s), "0x")
	n, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad byte value %q", s)
	}
	return uint8(n), nil
}

// ParseUint16 accepts decimal or hex (with or without 0x prefix).
func ParseUint16(s string) (uint16, error) {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return uint16(n), nil
	}
	hex := strings.TrimPrefix(strings.ToLower(s), "0x")
	n, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad 16-bit value %q", s)
	}
	return uint16(n), nil
}
