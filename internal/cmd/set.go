package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/peppapig450/logitech-led-control/internal/log"
	"github.com/peppapig450/logitech-led-control/keyboard"
)

// SetKeys colors individual keys. Keys are given as key=color pairs; the
// change commits at the end unless --no-commit stages it instead.
type SetKeys struct {
	DeviceFlags
	NoCommit bool     `help:"Stage the colors without committing"`
	Pairs    []string `arg:"" name:"key=color" help:"Keys to color, e.g. w=ff0000 logo=00ffff"`
}

func (c *SetKeys) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	keys := make([]keyboard.KeyColor, 0, len(c.Pairs))
	for _, pair := range c.Pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected key=color, got %q", pair)
		}
		key, err := keyboard.ParseKey(name)
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(value)
		if err != nil {
			return err
		}
		keys = append(keys, keyboard.KeyColor{Key: key, Color: color})
	}

	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		if err := s.SetKeys(keys); err != nil {
			return err
		}
		if c.NoCommit {
			return nil
		}
		return s.Commit()
	})
}

// SetAll colors the whole board.
type SetAll struct {
	DeviceFlags
	NoCommit bool   `help:"Stage the color without committing"`
	Color    string `arg:"" help:"Color name, rrggbb or two-digit grayscale"`
}

func (c *SetAll) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	color, err := keyboard.ParseColor(c.Color)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		if err := s.SetAll(color); err != nil {
			return err
		}
		if c.NoCommit {
			return nil
		}
		return s.Commit()
	})
}

// SetGroup colors one logical key group.
type SetGroup struct {
	DeviceFlags
	NoCommit bool   `help:"Stage the color without committing"`
	Group    string `arg:"" help:"Group name (see help-keys)"`
	Color    string `arg:"" help:"Color name, rrggbb or two-digit grayscale"`
}

func (c *SetGroup) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	group, err := keyboard.ParseGroup(c.Group)
	if err != nil {
		return err
	}
	color, err := keyboard.ParseColor(c.Color)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		if err := s.SetGroup(group, color); err != nil {
			return err
		}
		if c.NoCommit {
			return nil
		}
		return s.Commit()
	})
}

// SetRegion colors one lighting region on zoned boards.
type SetRegion struct {
	DeviceFlags
	Region string `arg:"" help:"Region number, 1-based"`
	Color  string `arg:"" help:"Color name, rrggbb or two-digit grayscale"`
}

func (c *SetRegion) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	region, err := keyboard.ParseRegion(c.Region)
	if err != nil {
		return err
	}
	color, err := keyboard.ParseColor(c.Color)
	if err != nil {
		return err
	}
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.SetRegion(region, color)
	})
}

// Commit applies colors staged with --no-commit.
type Commit struct {
	DeviceFlags
}

func (c *Commit) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return s.Commit()
	})
}
