package cmd

import (
	"fmt"
	"strings"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// HelpKeys lists the key and group vocabulary.
type HelpKeys struct{}

func (c *HelpKeys) Run() error {
	fmt.Println("Groups:")
	for _, g := range keyboard.Groups() {
		fmt.Printf("  %s\n", g)
	}
	fmt.Println()
	fmt.Println("Keys:")
	names := keyboard.KeyNames()
	for i := 0; i < len(names); i += 8 {
		end := min(i+8, len(names))
		fmt.Printf("  %s\n", strings.Join(names[i:end], " "))
	}
	return nil
}

// HelpEffects describes the native effects and their arguments.
type HelpEffects struct{}

func (c *HelpEffects) Run() error {
	fmt.Print(`Effects:
  off                turn lighting off
  color              fixed color          --color
  breathing          fade in and out      --color --period
  cycle              color cycle          --period
  waves              diagonal color wave  --period
  hwave              horizontal wave      --period
  vwave              vertical wave        --period
  cwave              center-out wave      --period
  ripple             keypress ripple      --period (G815)

Parts: keys, logo, all. Add --store to persist to on-board memory.
Periods accept Go durations (5s, 800ms) or a hex byte.
`)
	return nil
}

// HelpColors describes accepted color formats.
type HelpColors struct{}

func (c *HelpColors) Run() error {
	fmt.Println("Colors are 6-digit hex (ff0000), 2-digit grayscale (7f) or a name:")
	fmt.Printf("  %s\n", strings.Join(keyboard.ColorNames(), " "))
	fmt.Println("A leading '#' is allowed.")
	return nil
}

// HelpSamples prints an example of each profile format.
type HelpSamples struct{}

func (c *HelpSamples) Run() error {
	fmt.Print(`Line-based profile (load-profile file.profile, or pipe-profile):

  # dim white base, red escape, committed together
  var base 333333
  a $base
  g fkeys 00ff00
  k esc ff0000
  k w ff0000
  c

TOML profile (load-profile file.toml):

  all = "333333"

  [[groups]]
  group = "fkeys"
  color = "00ff00"

  [[key]]
  key = "esc"
  color = "ff0000"

  [[effects]]
  effect = "breathing"
  part = "all"
  color = "ff00ff"
  period = "3s"
`)
	return nil
}
