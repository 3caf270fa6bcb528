package profile

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// Document is the TOML profile schema. Every field is optional; entries
// are applied in the order the sections are listed here.
type Document struct {
	All     string        `toml:"all"`
	Groups  []GroupEntry  `toml:"groups"`
	Keys    []KeyEntry    `toml:"key"`
	Regions []RegionEntry `toml:"regions"`
	Effects []EffectEntry `toml:"effects"`

	MR          *uint8 `toml:"mr"`
	MN          *uint8 `toml:"mn"`
	GKeysMode   *uint8 `toml:"gkeys_mode"`
	StartupMode string `toml:"startup_mode"`
	OnBoardMode string `toml:"on_board_mode"`
}

type GroupEntry struct {
	Group string `toml:"group"`
	Color string `toml:"color"`
}

type KeyEntry struct {
	Key   string `toml:"key"`
	Color string `toml:"color"`
}

type RegionEntry struct {
	Region string `toml:"region"`
	Color  string `toml:"color"`
}

type EffectEntry struct {
	Effect  string `toml:"effect"`
	Part    string `toml:"part"`
	Period  string `toml:"period"`
	Color   string `toml:"color"`
	Storage string `toml:"storage"`
}

// ApplyTOML parses and applies a TOML profile document.
func ApplyTOML(data []byte, dst Applier) error {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse toml profile: %w", err)
	}
	return doc.Apply(dst)
}

// ApplyTOMLFile loads and applies a TOML profile from disk.
func ApplyTOMLFile(path string, dst Applier) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ApplyTOML(data, dst)
}

// Apply walks the document and drives the device. Unlike the line format,
// TOML profiles are always strict: any bad value aborts.
func (d *Document) Apply(dst Applier) error {
	if d.All != "" {
		color, err := keyboard.ParseColor(d.All)
		if err != nil {
			return err
		}
		if err := dst.SetAll(color); err != nil {
			return err
		}
	}

	for _, e := range d.Groups {
		group, err := keyboard.ParseGroup(e.Group)
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(e.Color)
		if err != nil {
			return err
		}
		if err := dst.SetGroup(group, color); err != nil {
			return err
		}
	}

	var staged []keyboard.KeyColor
	for _, e := range d.Keys {
		key, err := keyboard.ParseKey(e.Key)
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(e.Color)
		if err != nil {
			return err
		}
		staged = append(staged, keyboard.KeyColor{Key: key, Color: color})
	}
	if len(staged) > 0 {
		if err := dst.SetKeys(staged); err != nil {
			return err
		}
	}

	for _, e := range d.Regions {
		region, err := keyboard.ParseRegion(e.Region)
		if err != nil {
			return err
		}
		color, err := keyboard.ParseColor(e.Color)
		if err != nil {
			return err
		}
		if err := dst.SetRegion(region, color); err != nil {
			return err
		}
	}

	for _, e := range d.Effects {
		fx, err := e.decode()
		if err != nil {
			return err
		}
		if err := dst.SetEffect(fx); err != nil {
			return err
		}
	}

	if d.MR != nil {
		if err := dst.SetMRKey(*d.MR); err != nil {
			return err
		}
	}
	if d.MN != nil {
		if err := dst.SetMNKey(*d.MN); err != nil {
			return err
		}
	}
	if d.GKeysMode != nil {
		if err := dst.SetGKeysMode(*d.GKeysMode); err != nil {
			return err
		}
	}
	if d.StartupMode != "" {
		mode, err := keyboard.ParseStartupMode(d.StartupMode)
		if err != nil {
			return err
		}
		if err := dst.SetStartupMode(mode); err != nil {
			return err
		}
	}
	if d.OnBoardMode != "" {
		mode, err := keyboard.ParseOnBoardMode(d.OnBoardMode)
		if err != nil {
			return err
		}
		if err := dst.SetOnBoardMode(mode); err != nil {
			return err
		}
	}
	return nil
}

func (e EffectEntry) decode() (keyboard.NativeEffect, error) {
	var fx keyboard.NativeEffect

	effect, err := keyboard.ParseEffect(e.Effect)
	if err != nil {
		return fx, err
	}
	part, err := keyboard.ParseEffectPart(e.Part)
	if err != nil {
		return fx, err
	}
	fx = keyboard.NativeEffect{Effect: effect, Part: part, Color: keyboard.ColorWhite}

	if e.Period != "" {
		if fx.Period, err = keyboard.ParsePeriod(e.Period); err != nil {
			return fx, err
		}
	}
	if e.Color != "" {
		if fx.Color, err = keyboard.ParseColor(e.Color); err != nil {
			return fx, err
		}
	}
	if e.Storage != "" {
		if fx.Storage, err = keyboard.ParseEffectStorage(e.Storage); err != nil {
			return fx, err
		}
	}
	return fx, nil
}
