package transport

import (
	"errors"
	"io/fs"
	"strings"

	hid "github.com/sstallion/go-hid"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// hidTransport wraps one hidapi device handle. The hidapi library context
// is reference counted by Init/Exit, so each transport pairs them.
type hidTransport struct {
	dev *hid.Device
}

func (t *hidTransport) Write(p []byte) (int, error) { return t.dev.Write(p) }

func (t *hidTransport) Close() error {
	err := t.dev.Close()
	_ = hid.Exit()
	return err
}

type hidCandidate struct {
	path string
	info keyboard.DeviceInfo
}

func enumerateHID(opts Options) ([]hidCandidate, error) {
	var out []hidCandidate
	err := hid.Enumerate(hid.VendorIDAny, hid.ProductIDAny, func(di *hid.DeviceInfo) error {
		model, ok := opts.matches(di.VendorID, di.ProductID)
		if !ok {
			return nil
		}
		// Logitech boards expose several HID interfaces; the lighting
		// commands go to interface 1.
		if di.InterfaceNbr != 1 {
			return nil
		}
		out = append(out, hidCandidate{
			path: di.Path,
			info: keyboard.DeviceInfo{
				VendorID:     di.VendorID,
				ProductID:    di.ProductID,
				Manufacturer: di.MfrStr,
				Product:      di.ProductStr,
				Serial:       di.SerialNbr,
				Model:        model,
			},
		})
		return nil
	})
	if err != nil {
		return nil, keyboard.ErrTransport("hid enumerate", err)
	}
	return out, nil
}

func listHID(opts Options) ([]keyboard.DeviceInfo, error) {
	if err := hid.Init(); err != nil {
		return nil, keyboard.ErrTransport("hid init", err)
	}
	defer func() { _ = hid.Exit() }()

	candidates, err := enumerateHID(opts)
	if err != nil {
		return nil, err
	}
	infos := make([]keyboard.DeviceInfo, len(candidates))
	for i, c := range candidates {
		infos[i] = c.info
	}
	return infos, nil
}

func openHID(opts Options) (*keyboard.Session, error) {
	if err := hid.Init(); err != nil {
		return nil, keyboard.ErrTransport("hid init", err)
	}

	candidates, err := enumerateHID(opts)
	if err != nil {
		_ = hid.Exit()
		return nil, err
	}

	var selected *hidCandidate
	for i := range candidates {
		if opts.Serial != "" && candidates[i].info.Serial != opts.Serial {
			continue
		}
		selected = &candidates[i]
		break
	}
	if selected == nil {
		_ = hid.Exit()
		return nil, keyboard.ErrNotFound("no matching keyboard attached")
	}

	dev, err := hid.OpenPath(selected.path)
	if err != nil {
		_ = hid.Exit()
		return nil, classifyHIDOpenErr(selected.path, err)
	}

	return keyboard.NewSession(selected.info, &hidTransport{dev: dev}, opts.Raw), nil
}

// classifyHIDOpenErr sorts hidapi open failures into the error taxonomy.
// hidapi reports most failures as strings, so this falls back to matching
// the usual kernel wordings.
func classifyHIDOpenErr(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return keyboard.ErrAccess(path, err)
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "permission") || strings.Contains(msg, "access"):
		return keyboard.ErrAccess(path, err)
	case strings.Contains(msg, "busy") || strings.Contains(msg, "in use"):
		return keyboard.ErrBusy(path, err)
	default:
		return keyboard.ErrTransport("hid open "+path, err)
	}
}
