package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peppapig450/logitech-led-control/internal/log"
	"github.com/peppapig450/logitech-led-control/keyboard"
	"github.com/peppapig450/logitech-led-control/profile"
)

// LoadProfile applies a profile file. TOML documents are detected by
// extension; anything else is read as the line-based format.
type LoadProfile struct {
	DeviceFlags
	Strict bool   `help:"Fail on the first bad profile line instead of skipping it"`
	Path   string `arg:"" type:"existingfile" help:"Profile file to apply"`
}

func (c *LoadProfile) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		if filepath.Ext(c.Path) == ".toml" {
			return profile.ApplyTOMLFile(c.Path, s)
		}
		return profile.ApplyFile(c.Path, s, profile.Options{Strict: c.Strict, Logger: logger})
	})
}

// PipeProfile applies a line-based profile read from stdin. Useful for
// driving the keyboard from scripts without temporary files.
type PipeProfile struct {
	DeviceFlags
	Strict bool `help:"Fail on the first bad profile line instead of skipping it"`
}

func (c *PipeProfile) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.withSession(logger, rawLogger, func(s *keyboard.Session) error {
		return profile.Apply(os.Stdin, s, profile.Options{Strict: c.Strict, Logger: logger})
	})
}
