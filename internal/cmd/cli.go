// Package cmd defines the logi-led command line interface. Each command is
// a Kong command struct whose Run method receives the bound logger and raw
// report tracer.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/peppapig450/logitech-led-control/internal/log"
	"github.com/peppapig450/logitech-led-control/internal/transport"
	"github.com/peppapig450/logitech-led-control/keyboard"
)

// LogFlags configures logging output.
type LogFlags struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"LOGI_LED_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"LOGI_LED_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every outgoing report to this file"`
}

// CLI is the root command structure parsed by Kong.
type CLI struct {
	Log        LogFlags `embed:"" prefix:"log."`
	ConfigFile string   `name:"config" help:"Path to a configuration file" type:"path"`

	ListKeyboards ListKeyboards `cmd:"" name:"list-keyboards" help:"List attached supported keyboards"`
	PrintDevice   PrintDevice   `cmd:"" name:"print-device" help:"Print details and capabilities of the selected keyboard"`

	Set       SetKeys   `cmd:"" help:"Color individual keys (key=color pairs)"`
	SetAll    SetAll    `cmd:"" name:"set-all" help:"Color every key"`
	SetGroup  SetGroup  `cmd:"" name:"set-group" help:"Color a logical key group"`
	SetRegion SetRegion `cmd:"" name:"set-region" help:"Color a lighting region (region-based keyboards)"`
	Commit    Commit    `cmd:"" help:"Apply previously staged colors"`

	Fx          Fx          `cmd:"" help:"Start a firmware lighting effect"`
	FxStore     FxStore     `cmd:"" name:"fx-store" help:"Start a lighting effect and persist it to on-board memory"`
	StartupMode StartupMode `cmd:"" name:"startup-mode" help:"Set the power-on lighting mode"`
	OnBoardMode OnBoardMode `cmd:"" name:"on-board-mode" help:"Toggle on-board versus software lighting control"`
	SetMR       SetMR       `cmd:"" name:"set-mr" help:"Set the MR key LED"`
	SetMN       SetMN       `cmd:"" name:"set-mn" help:"Set the active M-key LED"`
	GKeysMode   GKeysMode   `cmd:"" name:"gkeys-mode" help:"Switch G-keys between F-key and macro mode"`

	LoadProfile LoadProfile `cmd:"" name:"load-profile" help:"Apply a profile file"`
	PipeProfile PipeProfile `cmd:"" name:"pipe-profile" help:"Apply a profile read from stdin"`

	HelpKeys    HelpKeys    `cmd:"" name:"help-keys" help:"List key and group names"`
	HelpEffects HelpEffects `cmd:"" name:"help-effects" help:"List effect names and their arguments"`
	HelpColors  HelpColors  `cmd:"" name:"help-colors" help:"Describe accepted color formats"`
	HelpSamples HelpSamples `cmd:"" name:"help-samples" help:"Print a sample profile"`

	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}

// DeviceFlags selects which keyboard to talk to and over which backend.
// Commands that open a device embed it.
type DeviceFlags struct {
	Backend   string `help:"Transport backend" enum:"hid,usb" default:"hid" env:"LOGI_LED_BACKEND"`
	VendorID  string `name:"vendor-id" help:"Match a specific USB vendor id (hex)" placeholder:"046d"`
	ProductID string `name:"product-id" help:"Match a specific USB product id (hex)" placeholder:"c33f"`
	Serial    string `help:"Select among several keyboards by serial number"`
	TUK       string `name:"tuk" help:"Drive an unsupported keyboard using the protocol of the named model"`
}

func (d DeviceFlags) options(raw keyboard.RawLogger) (transport.Options, error) {
	opts := transport.Options{Serial: d.Serial, Raw: raw}
	if d.VendorID != "" {
		vid, err := keyboard.ParseUint16(d.VendorID)
		if err != nil {
			return opts, fmt.Errorf("--vendor-id: %w", err)
		}
		opts.VendorID = vid
	}
	if d.ProductID != "" {
		pid, err := keyboard.ParseUint16(d.ProductID)
		if err != nil {
			return opts, fmt.Errorf("--product-id: %w", err)
		}
		opts.ProductID = pid
	}
	if d.TUK != "" {
		model, ok := keyboard.LookupModelByName(d.TUK)
		if !ok {
			return opts, fmt.Errorf("--tuk: unknown model %q", d.TUK)
		}
		opts.ForceModel = model
	}
	return opts, nil
}

func (d DeviceFlags) open(logger *slog.Logger, raw keyboard.RawLogger) (*keyboard.Session, error) {
	opts, err := d.options(raw)
	if err != nil {
		return nil, err
	}
	s, err := transport.Open(d.Backend, opts)
	if err != nil {
		return nil, err
	}
	info := s.Info()
	logger.Debug("opened keyboard",
		"backend", d.Backend,
		"model", info.Model.Name,
		"vendor_id", fmt.Sprintf("%04x", info.VendorID),
		"product_id", fmt.Sprintf("%04x", info.ProductID))
	return s, nil
}

func (d DeviceFlags) list(raw keyboard.RawLogger) ([]keyboard.DeviceInfo, error) {
	opts, err := d.options(raw)
	if err != nil {
		return nil, err
	}
	return transport.List(d.Backend, opts)
}

// withSession opens the selected keyboard, runs fn and closes the session.
func (d DeviceFlags) withSession(logger *slog.Logger, raw log.RawLogger, fn func(*keyboard.Session) error) error {
	s, err := d.open(logger, raw)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}
