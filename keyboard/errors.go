package keyboard

import "fmt"

// Kind classifies protocol and device failures.
type Kind string

const (
	KindInvalidColor           Kind = "invalid color"
	KindInvalidKey             Kind = "invalid key"
	KindInvalidGroupOrRegion   Kind = "invalid group or region"
	KindUnsupportedEffect      Kind = "unsupported effect"
	KindInvalidEffectParameter Kind = "invalid effect parameter"
	KindDeviceNotFound         Kind = "device not found"
	KindDeviceBusy             Kind = "device busy"
	KindPermissionDenied       Kind = "permission denied"
	KindIO                     Kind = "i/o error"
)

// Error is the single canonical error type of the protocol layer.
// Two errors match under errors.Is when their kinds are equal, so callers
// can test against the bare sentinels below without caring about detail.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidColor           = &Error{Kind: KindInvalidColor}
	ErrInvalidKey             = &Error{Kind: KindInvalidKey}
	ErrInvalidGroupOrRegion   = &Error{Kind: KindInvalidGroupOrRegion}
	ErrUnsupportedEffect      = &Error{Kind: KindUnsupportedEffect}
	ErrInvalidEffectParameter = &Error{Kind: KindInvalidEffectParameter}
	ErrDeviceNotFound         = &Error{Kind: KindDeviceNotFound}
	ErrDeviceBusy             = &Error{Kind: KindDeviceBusy}
	ErrPermissionDenied       = &Error{Kind: KindPermissionDenied}
	ErrIO                     = &Error{Kind: KindIO}
)

// Factory helpers; parse failures always echo the offending input.

func errInvalidColor(input string) *Error {
	return &Error{Kind: KindInvalidColor, Detail: fmt.Sprintf("%q", input)}
}

func errInvalidKey(input string) *Error {
	return &Error{Kind: KindInvalidKey, Detail: fmt.Sprintf("%q", input)}
}

func errInvalidGroupOrRegion(input string) *Error {
	return &Error{Kind: KindInvalidGroupOrRegion, Detail: fmt.Sprintf("%q", input)}
}

func errUnsupportedEffect(detail string) *Error {
	return &Error{Kind: KindUnsupportedEffect, Detail: detail}
}

func errInvalidEffectParameter(detail string) *Error {
	return &Error{Kind: KindInvalidEffectParameter, Detail: detail}
}

// ErrNotFound builds a DeviceNotFound error for transport backends.
func ErrNotFound(detail string) *Error {
	return &Error{Kind: KindDeviceNotFound, Detail: detail}
}

// ErrBusy builds a DeviceBusy error for transport backends.
func ErrBusy(detail string, cause error) *Error {
	return &Error{Kind: KindDeviceBusy, Detail: detail, Cause: cause}
}

// ErrAccess builds a PermissionDenied error for transport backends.
func ErrAccess(detail string, cause error) *Error {
	return &Error{Kind: KindPermissionDenied, Detail: detail, Cause: cause}
}

// ErrTransport wraps a transport failure, keeping the command context.
func ErrTransport(detail string, cause error) *Error {
	return &Error{Kind: KindIO, Detail: detail, Cause: cause}
}
