package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/peppapig450/logitech-led-control/internal/log"
	"github.com/peppapig450/logitech-led-control/keyboard"
)

// ListKeyboards prints the attached keyboards the catalog recognizes.
type ListKeyboards struct {
	DeviceFlags
}

func (c *ListKeyboards) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	infos, err := c.list(rawLogger)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no supported keyboards found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VENDOR\tPRODUCT\tMODEL\tSERIAL\tNAME")
	for _, info := range infos {
		fmt.Fprintf(w, "%04x\t%04x\t%s\t%s\t%s\n",
			info.VendorID, info.ProductID, info.Model.Name, info.Serial, info.Product)
	}
	return w.Flush()
}

// PrintDevice prints identity and capability details of one keyboard.
type PrintDevice struct {
	DeviceFlags
}

func (c *PrintDevice) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	infos, err := c.list(rawLogger)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return keyboard.ErrNotFound("no matching keyboard attached")
	}

	info := infos[0]
	if c.Serial != "" {
		found := false
		for _, i := range infos {
			if i.Serial == c.Serial {
				info, found = i, true
				break
			}
		}
		if !found {
			return keyboard.ErrNotFound("no keyboard with serial " + c.Serial)
		}
	}

	m := info.Model
	fmt.Printf("Model:        %s\n", m.Name)
	fmt.Printf("Vendor ID:    %04x\n", info.VendorID)
	fmt.Printf("Product ID:   %04x\n", info.ProductID)
	fmt.Printf("Manufacturer: %s\n", info.Manufacturer)
	fmt.Printf("Product:      %s\n", info.Product)
	fmt.Printf("Serial:       %s\n", info.Serial)
	fmt.Printf("Capabilities: %s\n", strings.Join(capabilities(m), ", "))
	return nil
}

func capabilities(m *keyboard.Model) []string {
	var caps []string
	if m.HasPerKey() {
		caps = append(caps, "per-key colors")
	}
	if m.HasRegions() {
		caps = append(caps, fmt.Sprintf("%d regions", m.Regions))
	}
	if m.HasLogoLED() {
		caps = append(caps, "logo led")
	}
	if m.HasEffects() {
		caps = append(caps, "native effects")
	}
	if m.HasCommit() {
		caps = append(caps, "commit")
	}
	if m.HasStartupMode() {
		caps = append(caps, "startup mode")
	}
	if m.HasOnBoardMode() {
		caps = append(caps, "on-board mode")
	}
	if m.HasMRKey() {
		caps = append(caps, "mr key")
	}
	if m.HasMNKey() {
		caps = append(caps, "mn key")
	}
	if m.HasGKeysMode() {
		caps = append(caps, "gkeys mode")
	}
	if len(caps) == 0 {
		caps = append(caps, "none")
	}
	return caps
}
