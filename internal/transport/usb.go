package transport

import (
	"errors"
	"time"

	"github.com/google/gousb"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// Lighting commands go out as HID SET_REPORT control transfers against
// interface 1; the report id rides in the low byte of wValue.
const (
	hidReqSetReport  = 0x09
	hidOutputReport  = 0x02
	lightingIface    = 1
	controlTimeout   = 2 * time.Second
	shortReportValue = uint16(hidOutputReport)<<8 | 0x11
	longReportValue  = uint16(hidOutputReport)<<8 | 0x12
)

// usbTransport drives the keyboard through libusb, claiming the lighting
// interface away from the kernel driver for the lifetime of the session.
type usbTransport struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
}

func (t *usbTransport) Write(p []byte) (int, error) {
	value := shortReportValue
	if len(p) > keyboard.ShortReportSize {
		value = longReportValue
	}
	rt := uint8(gousb.ControlOut | gousb.ControlClass | gousb.ControlInterface)
	return t.dev.Control(rt, hidReqSetReport, value, lightingIface, p)
}

func (t *usbTransport) Close() error {
	if t.intf != nil {
		t.intf.Close()
	}
	if t.cfg != nil {
		_ = t.cfg.Close()
	}
	if t.dev != nil {
		_ = t.dev.Close()
	}
	if t.ctx != nil {
		return t.ctx.Close()
	}
	return nil
}

func usbDeviceInfo(dev *gousb.Device, model *keyboard.Model) keyboard.DeviceInfo {
	info := keyboard.DeviceInfo{
		VendorID:  uint16(dev.Desc.Vendor),
		ProductID: uint16(dev.Desc.Product),
		Model:     model,
	}
	if s, err := dev.Manufacturer(); err == nil {
		info.Manufacturer = s
	}
	if s, err := dev.Product(); err == nil {
		info.Product = s
	}
	if s, err := dev.SerialNumber(); err == nil {
		info.Serial = s
	}
	return info
}

func openMatchingUSB(ctx *gousb.Context, opts Options) ([]*gousb.Device, error) {
	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		_, ok := opts.matches(uint16(desc.Vendor), uint16(desc.Product))
		return ok
	})
	if err != nil {
		// OpenDevices returns the devices it did open alongside the error;
		// close them before failing.
		for _, d := range devs {
			_ = d.Close()
		}
		return nil, classifyUSBErr("usb enumerate", err)
	}
	return devs, nil
}

func listUSB(opts Options) ([]keyboard.DeviceInfo, error) {
	ctx := gousb.NewContext()
	defer func() { _ = ctx.Close() }()

	devs, err := openMatchingUSB(ctx, opts)
	if err != nil {
		return nil, err
	}

	var infos []keyboard.DeviceInfo
	for _, dev := range devs {
		model, _ := opts.matches(uint16(dev.Desc.Vendor), uint16(dev.Desc.Product))
		infos = append(infos, usbDeviceInfo(dev, model))
		_ = dev.Close()
	}
	return infos, nil
}

func openUSB(opts Options) (*keyboard.Session, error) {
	ctx := gousb.NewContext()

	devs, err := openMatchingUSB(ctx, opts)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}

	var (
		selected *gousb.Device
		info     keyboard.DeviceInfo
	)
	for _, dev := range devs {
		model, _ := opts.matches(uint16(dev.Desc.Vendor), uint16(dev.Desc.Product))
		di := usbDeviceInfo(dev, model)
		if selected == nil && (opts.Serial == "" || di.Serial == opts.Serial) {
			selected = dev
			info = di
			continue
		}
		_ = dev.Close()
	}
	if selected == nil {
		_ = ctx.Close()
		return nil, keyboard.ErrNotFound("no matching keyboard attached")
	}

	closeAll := func() {
		_ = selected.Close()
		_ = ctx.Close()
	}

	if err := selected.SetAutoDetach(true); err != nil {
		closeAll()
		return nil, classifyUSBErr("detach kernel driver", err)
	}

	cfgNum, err := selected.ActiveConfigNum()
	if err != nil {
		closeAll()
		return nil, classifyUSBErr("active configuration", err)
	}
	cfg, err := selected.Config(cfgNum)
	if err != nil {
		closeAll()
		return nil, classifyUSBErr("claim configuration", err)
	}
	intf, err := cfg.Interface(lightingIface, 0)
	if err != nil {
		_ = cfg.Close()
		closeAll()
		return nil, classifyUSBErr("claim lighting interface", err)
	}

	selected.ControlTimeout = controlTimeout

	tr := &usbTransport{ctx: ctx, dev: selected, cfg: cfg, intf: intf}
	return keyboard.NewSession(info, tr, opts.Raw), nil
}

// classifyUSBErr maps libusb's typed errors onto the session taxonomy.
func classifyUSBErr(what string, err error) error {
	switch {
	case errors.Is(err, gousb.ErrorAccess):
		return keyboard.ErrAccess(what, err)
	case errors.Is(err, gousb.ErrorBusy):
		return keyboard.ErrBusy(what, err)
	case errors.Is(err, gousb.ErrorNoDevice), errors.Is(err, gousb.ErrorNotFound):
		return keyboard.ErrNotFound(what + ": " + err.Error())
	default:
		return keyboard.ErrTransport(what, err)
	}
}
