// Package profile applies lighting profiles to an open keyboard session.
// Two formats are supported: the terse line-based command language and a
// TOML document (see toml.go).
package profile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// Applier is the set of device operations a profile can invoke.
// *keyboard.Session implements it.
type Applier interface {
	Commit() error
	SetKeys(keys []keyboard.KeyColor) error
	SetGroup(g keyboard.Group, c keyboard.Color) error
	SetAll(c keyboard.Color) error
	SetRegion(region uint8, c keyboard.Color) error
	SetEffect(fx keyboard.NativeEffect) error
	SetMRKey(value uint8) error
	SetMNKey(value uint8) error
	SetGKeysMode(value uint8) error
	SetStartupMode(mode keyboard.StartupMode) error
	SetOnBoardMode(mode keyboard.OnBoardMode) error
}

// Options controls how leniently a profile is interpreted.
type Options struct {
	// Strict fails on unknown commands or malformed arguments instead of
	// logging and moving on.
	Strict bool
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Apply reads the line-based profile language:
//
//	var name value      define $name for later substitution
//	a <color>           set all keys
//	g <group> <color>   set a key group
//	k <key> <color>     stage a single key (batched until c or EOF)
//	r <region> <color>  set a region
//	c                   flush staged keys and commit
//	fx <effect> <part> [args...]
//	mr|mn|gkm <value>   macro/profile key state
//	sm|obm <mode>       startup / on-board mode
//
// '#' starts a comment. Staged k commands are flushed before a commit and
// at end of input.
func Apply(r io.Reader, dst Applier, opts Options) error {
	log := opts.logger()
	vars := make(map[string]string)
	var staged []keyboard.KeyColor

	flush := func() error {
		if len(staged) == 0 {
			return nil
		}
		err := dst.SetKeys(staged)
		staged = staged[:0]
		return err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// Substitute $name tokens from var definitions.
		for i, tok := range fields[1:] {
			if name, ok := strings.CutPrefix(tok, "$"); ok {
				if v, defined := vars[name]; defined {
					fields[i+1] = v
				}
			}
		}

		if err := applyLine(dst, vars, &staged, fields); err != nil {
			if opts.Strict {
				return fmt.Errorf("profile line %d: %w", lineNo, err)
			}
			log.Warn("skipping profile line", "line", lineNo, "error", err)
		}

		// Commits flush staged keys first.
		if fields[0] == "c" {
			if err := flush(); err != nil {
				return err
			}
			if err := dst.Commit(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return flush()
}

func applyLine(dst Applier, vars map[string]string, staged *[]keyboard.KeyColor, fields []string) error {
	cmd, args := fields[0], fields[1:]

	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s: want %d argument(s), got %d", cmd, n, len(args))
		}
		return nil
	}

	switch cmd {
	case "var":
		if err := need(2); err != nil {
			return err
		}
		vars[args[0]] = args[1]

	case "c":
		// Handled by the caller so staged keys flush first.

	case "a":
		if err := need(1); err != nil {
			return err
		}
		color, err := keyboard.ParseColor(args[0])
		if err != nil {
			return err
		}
		return dst.SetAll(color)

	case "g":
		if err := need(2); err != nil {
			return err
		}
		group, err := keyboard.ParseGroup(args[0])
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(args[1])
		if err != nil {
			return err
		}
		return dst.SetGroup(group, color)

	case "k":
		if err := need(2); err != nil {
			return err
		}
		key, err := keyboard.ParseKey(args[0])
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(args[1])
		if err != nil {
			return err
		}
		*staged = append(*staged, keyboard.KeyColor{Key: key, Color: color})

	case "r":
		if err := need(2); err != nil {
			return err
		}
		region, err := keyboard.ParseRegion(args[0])
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(args[1])
		if err != nil {
			return err
		}
		return dst.SetRegion(region, color)

	case "mr", "mn", "gkm":
		if err := need(1); err != nil {
			return err
		}
		value, err := keyboard.ParseUint8(args[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "mr":
			return dst.SetMRKey(value)
		case "mn":
			return dst.SetMNKey(value)
		default:
			return dst.SetGKeysMode(value)
		}

	case "sm":
		if err := need(1); err != nil {
			return err
		}
		mode, err := keyboard.ParseStartupMode(args[0])
		if err != nil {
			return err
		}
		return dst.SetStartupMode(mode)

	case "obm":
		if err := need(1); err != nil {
			return err
		}
		mode, err := keyboard.ParseOnBoardMode(args[0])
		if err != nil {
			return err
		}
		return dst.SetOnBoardMode(mode)

	case "fx":
		if err := need(2); err != nil {
			return err
		}
		fx, err := parseFxArgs(args)
		if err != nil {
			return err
		}
		return dst.SetEffect(fx)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// parseFxArgs decodes "fx <effect> <part> [args...]". Color-carrying
// effects take the color before the period; the rest take period first.
func parseFxArgs(args []string) (keyboard.NativeEffect, error) {
	var fx keyboard.NativeEffect

	effect, err := keyboard.ParseEffect(args[0])
	if err != nil {
		return fx, err
	}
	part, err := keyboard.ParseEffectPart(args[1])
	if err != nil {
		return fx, err
	}
	fx = keyboard.NativeEffect{Effect: effect, Part: part, Color: keyboard.ColorWhite}

	rest := args[2:]
	takeColor := func(i int) {
		if i < len(rest) {
			if c, err := keyboard.ParseColor(rest[i]); err == nil {
				fx.Color = c
			}
		}
	}
	takePeriod := func(i int) {
		if i < len(rest) {
			if d, err := keyboard.ParsePeriod(rest[i]); err == nil {
				fx.Period = d
			}
		}
	}

	switch effect {
	case keyboard.EffectColor:
		takeColor(0)
	case keyboard.EffectBreathing:
		takeColor(0)
		takePeriod(1)
	default:
		takePeriod(0)
		takeColor(1)
	}

	if len(rest) > 2 {
		if storage, err := keyboard.ParseEffectStorage(rest[2]); err == nil {
			fx.Storage = storage
		}
	}
	return fx, nil
}

// ApplyFile loads and applies a line-based profile from disk.
func ApplyFile(path string, dst Applier, opts Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return Apply(f, dst, opts)
}
