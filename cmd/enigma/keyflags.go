package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/config"
	"enigma/internal/machine"
)

// keyFlags are the machine settings shared by encrypt and message. A key
// sheet is read first and any flag given on the command line overrides it.
type keyFlags struct {
	sheet     string
	rotors    []string
	reflector string
	position  string
	ring      string
	plugboard string
}

func (k *keyFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&k.sheet, "key", "", "YAML key sheet")
	f.StringSliceVarP(&k.rotors, "rotors", "r", []string{"I", "II", "III"}, "Rotors, leftmost first (e.g., I,II,III or Beta,I,II,III)")
	f.StringVarP(&k.reflector, "reflector", "f", "B", "Reflector (B, C, BThin, CThin)")
	f.StringVarP(&k.position, "position", "p", "", "Starting position, one letter per rotor (default all A)")
	f.StringVar(&k.ring, "ring", "", "Ring settings, one letter per rotor (default all A)")
	f.StringVar(&k.plugboard, "plugboard", "", "Plugboard cables (e.g., \"AB CD EF\")")
}

func (k *keyFlags) key(cmd *cobra.Command) (*config.Key, error) {
	key := &config.Key{Rotors: k.rotors, Reflector: k.reflector}
	if k.sheet != "" {
		data, err := os.ReadFile(k.sheet)
		if err != nil {
			return nil, fmt.Errorf("read key sheet: %w", err)
		}
		if key, err = config.ParseKey(data); err != nil {
			return nil, fmt.Errorf("%s: %w", k.sheet, err)
		}
	}
	f := cmd.Flags()
	if f.Changed("rotors") {
		key.Rotors = k.rotors
	}
	if f.Changed("reflector") {
		key.Reflector = k.reflector
	}
	if f.Changed("position") {
		key.Position = strings.ToUpper(k.position)
	}
	if f.Changed("ring") {
		key.Ring = strings.ToUpper(k.ring)
	}
	if f.Changed("plugboard") {
		key.Cables = strings.Fields(strings.ToUpper(k.plugboard))
	}
	return key, nil
}

func (k *keyFlags) machine(cmd *cobra.Command) (*machine.Machine, error) {
	key, err := k.key(cmd)
	if err != nil {
		return nil, err
	}
	return key.Machine()
}
