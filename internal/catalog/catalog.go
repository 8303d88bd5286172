// Package catalog holds the fixed wirings of every supported rotor and
// reflector. The tables are built once at init and never change.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"enigma/internal/permutation"
)

var (
	// ErrUnknownEntry is returned for a rotor or reflector name that is not in
	// the catalog.
	ErrUnknownEntry = errors.New("unknown catalog entry")
	// ErrMisplacedEntry is returned when a known entry is used in a slot or
	// machine model it does not fit.
	ErrMisplacedEntry = errors.New("catalog entry not allowed here")
)

// RotorSpec describes one rotor wheel.
type RotorSpec struct {
	Name    string
	Wiring  permutation.Table
	Notches string
	// Greek marks the thin Beta and Gamma wheels that only fit the leftmost
	// slot of a four rotor machine and never step.
	Greek bool
}

// ReflectorSpec describes one reflector.
type ReflectorSpec struct {
	Name   string
	Wiring permutation.Table
	Thin   bool
}

var rotorWirings = map[string]struct {
	wiring  string
	notches string
	greek   bool
}{
	"I":     {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q", false},
	"II":    {"AJDKSIRUXBLHWTMCQGZNPYFVOE", "E", false},
	"III":   {"BDFHJLCPRTXVZNYEIWGAKMUSQO", "V", false},
	"IV":    {"ESOVPZJAYQUIRHXLNFTGKDCMWB", "J", false},
	"V":     {"VZBRGITYUPSDNHLXAWMJQOFECK", "Z", false},
	"VI":    {"JPGVOUMFYQBENHZRDKASXLICTW", "ZM", false},
	"VII":   {"NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM", false},
	"VIII":  {"FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM", false},
	"Beta":  {"LEYJVCNIXWPBQMDRTAKZGFUHOS", "", true},
	"Gamma": {"FSOKANUERHMBTIYCWLQPZXVGJD", "", true},
}

var reflectorCables = map[string]struct {
	cables []string
	thin   bool
}{
	"B":     {[]string{"AY", "BR", "CU", "DH", "EQ", "FS", "GL", "IP", "JX", "KN", "MO", "TZ", "VW"}, false},
	"C":     {[]string{"AF", "BV", "CP", "DJ", "EI", "GO", "HY", "KR", "LZ", "MX", "NW", "QT", "SU"}, false},
	"BThin": {[]string{"AE", "BN", "CK", "DQ", "FU", "GY", "HW", "IJ", "LO", "MP", "RX", "SZ", "TV"}, true},
	"CThin": {[]string{"AR", "BD", "CO", "EJ", "FN", "GT", "HK", "IV", "LM", "PW", "QZ", "SX", "UY"}, true},
}

var (
	rotors     map[string]RotorSpec
	reflectors map[string]ReflectorSpec
)

func init() {
	rotors = make(map[string]RotorSpec, len(rotorWirings))
	for name, w := range rotorWirings {
		tbl, err := permutation.FromWiring(w.wiring)
		if err != nil {
			panic(fmt.Sprintf("catalog: rotor %s: %v", name, err))
		}
		rotors[name] = RotorSpec{Name: name, Wiring: tbl, Notches: w.notches, Greek: w.greek}
	}

	reflectors = make(map[string]ReflectorSpec, len(reflectorCables))
	for name, r := range reflectorCables {
		tbl, err := permutation.FromPairs(r.cables)
		if err != nil {
			panic(fmt.Sprintf("catalog: reflector %s: %v", name, err))
		}
		if len(tbl.FixedPoints()) != 0 {
			panic(fmt.Sprintf("catalog: reflector %s has fixed points", name))
		}
		reflectors[name] = ReflectorSpec{Name: name, Wiring: tbl, Thin: r.thin}
	}
}

// LookupRotor returns the rotor registered under name.
func LookupRotor(name string) (RotorSpec, error) {
	spec, ok := rotors[name]
	if !ok {
		return RotorSpec{}, fmt.Errorf("%w: invalid rotor type: %s", ErrUnknownEntry, name)
	}
	return spec, nil
}

// LookupReflector returns the reflector registered under name.
func LookupReflector(name string) (ReflectorSpec, error) {
	spec, ok := reflectors[name]
	if !ok {
		return ReflectorSpec{}, fmt.Errorf("%w: invalid reflector type: %s", ErrUnknownEntry, name)
	}
	return spec, nil
}

// RotorNames lists every rotor name in catalog order.
func RotorNames() []string {
	return sortedNames(rotors, rotorOrder)
}

// ReflectorNames lists every reflector name in catalog order.
func ReflectorNames() []string {
	return sortedNames(reflectors, reflectorOrder)
}

var (
	rotorOrder     = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "Beta", "Gamma"}
	reflectorOrder = []string{"B", "C", "BThin", "CThin"}
)

func sortedNames[V any](m map[string]V, order []string) []string {
	rank := make(map[string]int, len(order))
	for i, n := range order {
		rank[n] = i
	}
	out := make([]string, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

// CheckModel verifies that the rotor names (leftmost first) and the reflector
// form a valid three or four rotor machine: Beta and Gamma only in the
// leftmost slot of a four rotor machine, which must hold one of them, and
// thin reflectors exactly in four rotor machines.
func CheckModel(rotorNames []string, reflectorName string) error {
	n := len(rotorNames)
	if n != 3 && n != 4 {
		return fmt.Errorf("%w: %d rotors, need 3 or 4", ErrMisplacedEntry, n)
	}
	for i, name := range rotorNames {
		spec, err := LookupRotor(name)
		if err != nil {
			return err
		}
		leftmostOfFour := n == 4 && i == 0
		if spec.Greek != leftmostOfFour {
			return fmt.Errorf("%w: rotor %s in slot %d of a %d rotor machine", ErrMisplacedEntry, name, i+1, n)
		}
	}
	refl, err := LookupReflector(reflectorName)
	if err != nil {
		return err
	}
	if refl.Thin != (n == 4) {
		return fmt.Errorf("%w: reflector %s in a %d rotor machine", ErrMisplacedEntry, reflectorName, n)
	}
	return nil
}
