package cmd

import (
	"log/slog"

	"github.com/peppapig450/logitech-led-control/internal/log"
	"github.com/peppapig450/logitech-led-control/keyboard"
)

// Fx starts a native firmware effect.
type Fx struct {
	DeviceFlags
	Effect string `arg:"" help:"Effect name (see help-effects)"`
	Part   string `arg:"" optional:"" default:"all" help:"Target part: keys, logo or all"`
	Color  string `help:"Effect color for color and breathing" default:"ffffff"`
	Period string `help:"Cycle period, e.g. 5s, 800ms or a hex byte"`
	Store  bool   `help:"Persist the effect to on-board memory"`
}

func (c *Fx) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	effect, err := keyboard.ParseEffect(c.Effect)
	if err != nil {
		return err
	}
	part, err := keyboard.ParseEffectPart(c.Part)
	if err != nil {
		return err
	}
	color, err := keyboard.ParseColor(c.Color)
	if err != nil {
		return err
	}

	fx := keyboard.NativeEffect{Effect: effect, Part: part, Color: color}
	if c.Period != "" {
		if fx.Period, err = keyboard.ParsePeriod(c.Period); err != nil {
			return err
		}
	}
	if c.Store {
		fx.Storage = keyboard.EffectStorageUser
	}

	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetEffect(fx)
	})
}

// FxStore starts an effect and persists it, shorthand for fx --store.
type FxStore struct {
	Fx
}

func (c *FxStore) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	c.Store = true
	return c.Fx.Run(logger, rawLogger)
}

// StartupMode sets what the firmware displays at power-on.
type StartupMode struct {
	DeviceFlags
	Mode string `arg:"" enum:"wave,color" help:"wave or color"`
}

func (c *StartupMode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	mode, err := keyboard.ParseStartupMode(c.Mode)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetStartupMode(mode)
	})
}

// OnBoardMode hands lighting control to the firmware or the host.
type OnBoardMode struct {
	DeviceFlags
	Mode string `arg:"" enum:"board,software" help:"board or software"`
}

func (c *OnBoardMode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	mode, err := keyboard.ParseOnBoardMode(c.Mode)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetOnBoardMode(mode)
	})
}

// SetMR sets the MR key LED.
type SetMR struct {
	DeviceFlags
	Value string `arg:"" help:"0 or 1"`
}

func (c *SetMR) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	value, err := keyboard.ParseUint8(c.Value)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetMRKey(value)
	})
}

// SetMN sets the active M-key indicator.
type SetMN struct {
	DeviceFlags
	Value string `arg:"" help:"M-key number, or a bitmask on older boards"`
}

func (c *SetMN) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	value, err := keyboard.ParseUint8(c.Value)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetMNKey(value)
	})
}

// GKeysMode switches G-keys between F-key emulation and macro reporting.
type GKeysMode struct {
	DeviceFlags
	Value string `arg:"" help:"0 (F-keys) or 1 (macros)"`
}

func (c *GKeysMode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	value, err := keyboard.ParseUint8(c.Value)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetGKeysMode(value)
	})
}
