// Package transport provides the HID and libusb backends that carry
// finished report buffers to the hardware. The protocol layer in package
// keyboard never touches a device handle directly.
package transport

import (
	"fmt"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// Backend names accepted on the command line.
const (
	BackendHID = "hid"
	BackendUSB = "usb"
)

// Options narrows device selection when listing or opening.
type Options struct {
	// VendorID/ProductID filter candidates; zero means "any supported".
	VendorID  uint16
	ProductID uint16
	// Serial picks one device when several match.
	Serial string
	// ForceModel drives an unsupported board with a known protocol.
	ForceModel *keyboard.Model
	// Raw receives every outgoing report for tracing; may be nil.
	Raw keyboard.RawLogger
}

func (o Options) matches(vid, pid uint16) (*keyboard.Model, bool) {
	if o.VendorID != 0 && vid != o.VendorID {
		return nil, false
	}
	if o.ProductID != 0 && pid != o.ProductID {
		return nil, false
	}
	if o.ForceModel != nil {
		return o.ForceModel, true
	}
	return keyboard.LookupModel(vid, pid)
}

// List enumerates attached supported keyboards on the chosen backend.
func List(backend string, opts Options) ([]keyboard.DeviceInfo, error) {
	switch backend {
	case BackendHID, "":
		return listHID(opts)
	case BackendUSB:
		return listUSB(opts)
	}
	return nil, fmt.Errorf("unknown transport backend %q", backend)
}

// Open acquires a device handle and wraps it in a session. Failures map to
// the DeviceNotFound / DeviceBusy / PermissionDenied taxonomy.
func Open(backend string, opts Options) (*keyboard.Session, error) {
	switch backend {
	case BackendHID, "":
		return openHID(opts)
	case BackendUSB:
		return openUSB(opts)
	}
	return nil, fmt.Errorf("unknown transport backend %q", backend)
}
