package keyboard

// Transport is the narrow contract a session needs from a HID or USB
// backend. Backends live outside this package; the protocol layer only
// hands them finished report buffers.
type Transport interface {
	Write(p []byte) (int, error)
	Close() error
}

// RawLogger receives every report written to the device; useful for
// tracing the exact bytes a command produced.
type RawLogger interface {
	Log(in bool, data []byte)
}

// DeviceInfo describes one attached, catalog-matched keyboard.
type DeviceInfo struct {
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
	Model        *Model
}

// Session owns one open transport handle for one keyboard. It is not safe
// for concurrent use; open one session per physical device and serialize
// commands on it.
type Session struct {
	info   DeviceInfo
	tr     Transport
	raw    RawLogger
	closed bool
}

// NewSession wraps an already-open transport. Transport backends call this
// after a successful open; raw may be nil.
func NewSession(info DeviceInfo, tr Transport, raw RawLogger) *Session {
	return &Session{info: info, tr: tr, raw: raw}
}

// Model reports the catalog entry this session drives.
func (s *Session) Model() *Model { return s.info.Model }

// Info reports the device identity captured at open.
func (s *Session) Info() DeviceInfo { return s.info }

// Send writes one report to the device. Transport failures are surfaced
// as-is inside an IO error; the session never retries, since protocol
// state after a partial write is unknown.
func (s *Session) Send(p Packet) error {
	return s.send(p, "raw packet")
}

func (s *Session) send(p Packet, what string) error {
	if s.closed || s.tr == nil {
		return ErrTransport(what+" on closed session", nil)
	}
	if s.raw != nil {
		s.raw.Log(false, p)
	}
	if _, err := s.tr.Write(p); err != nil {
		return ErrTransport(what, err)
	}
	return nil
}

func (s *Session) sendAll(ps []Packet, what string) error {
	for _, p := range ps {
		if err := s.send(p, what); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the transport handle. Closing an already-closed session
// is a no-op.
func (s *Session) Close() error {
	if s.closed || s.tr == nil {
		return nil
	}
	s.closed = true
	return s.tr.Close()
}

// Commit flushes staged color-set commands on models that buffer them.
func (s *Session) Commit() error {
	p, ok := CommitPacket(s.info.Model)
	if !ok {
		return nil
	}
	return s.send(p, "commit")
}

// SetKeys stages colors for an arbitrary set of keys. A commit must follow
// for the change to take effect on buffering models.
func (s *Session) SetKeys(keys []KeyColor) error {
	return s.sendAll(SetKeysPackets(s.info.Model, keys), "set keys")
}

// SetKey stages a color for a single key.
func (s *Session) SetKey(k Key, c Color) error {
	return s.SetKeys([]KeyColor{{Key: k, Color: c}})
}

// SetGroup stages a color for every key of a logical group.
func (s *Session) SetGroup(g Group, c Color) error {
	ps, err := SetGroupPackets(s.info.Model, g, c)
	if err != nil {
		return err
	}
	return s.sendAll(ps, "set group "+string(g))
}

// SetAll stages a color for the whole board.
func (s *Session) SetAll(c Color) error {
	return s.sendAll(SetAllPackets(s.info.Model, c), "set all")
}

// SetRegion colors one physical region on zoned boards.
func (s *Session) SetRegion(region uint8, c Color) error {
	p, err := RegionPacket(s.info.Model, region, c)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	return s.send(p, "set region")
}

// SetEffect runs a native effect on the device.
func (s *Session) SetEffect(fx NativeEffect) error {
	ps, err := NativeEffectPackets(s.info.Model, fx)
	if err != nil {
		return err
	}
	return s.sendAll(ps, "effect "+fx.Effect.String())
}

// SetStartupMode configures the firmware power-on lighting behavior.
func (s *Session) SetStartupMode(mode StartupMode) error {
	p, ok := StartupModePacket(s.info.Model, mode)
	if !ok {
		return nil
	}
	return s.send(p, "startup mode")
}

// SetOnBoardMode hands lighting control to firmware or the host.
func (s *Session) SetOnBoardMode(mode OnBoardMode) error {
	p, ok := OnBoardModePacket(s.info.Model, mode)
	if !ok {
		return nil
	}
	return s.send(p, "on-board mode")
}

// SetMRKey sets the MR key state.
func (s *Session) SetMRKey(value uint8) error {
	p, ok := MRKeyPacket(s.info.Model, value)
	if !ok {
		return nil
	}
	return s.send(p, "mr key")
}

// SetMNKey sets the M1/M2/M3 indicator.
func (s *Session) SetMNKey(value uint8) error {
	p, ok := MNKeyPacket(s.info.Model, value)
	if !ok {
		return nil
	}
	return s.send(p, "mn key")
}

// SetGKeysMode toggles g-key reporting mode.
func (s *Session) SetGKeysMode(value uint8) error {
	p, ok := GKeysModePacket(s.info.Model, value)
	if !ok {
		return nil
	}
	return s.send(p, "gkeys mode")
}
