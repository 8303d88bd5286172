// Package machine composes plugboard, rotors and reflector into the three and
// four rotor cipher machines.
//
// Rotors are always listed leftmost first, the way they read in the window:
// the last rotor is the fast one next to the plugboard and the first one sits
// against the reflector. In a four rotor machine the first rotor is a thin
// Beta or Gamma wheel that never steps.
//
// A Machine is not safe for concurrent use: Translate and Match advance the
// rotors. Give each goroutine its own Machine.
package machine

import (
	"errors"
	"fmt"
	"strings"

	"enigma/internal/alphabet"
	"enigma/internal/catalog"
	"enigma/internal/plugboard"
	"enigma/internal/reflector"
	"enigma/internal/rotor"
)

// ErrKeyLength is returned when a position or ring setting does not have one
// letter per rotor.
var ErrKeyLength = errors.New("need one letter per rotor")

// Machine is a configured cipher machine.
type Machine struct {
	rotors    []*rotor.Rotor
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
	start     string
}

type settings struct {
	position string
	ring     string
	cables   []string
}

// Option configures a Machine at construction.
type Option func(*settings)

// WithPosition sets the starting rotor positions, leftmost first.
func WithPosition(letters string) Option {
	return func(s *settings) { s.position = letters }
}

// WithRing sets the ring settings, leftmost first.
func WithRing(letters string) Option {
	return func(s *settings) { s.ring = letters }
}

// WithCables wires the plugboard.
func WithCables(cables ...string) Option {
	return func(s *settings) { s.cables = append(s.cables, cables...) }
}

// New builds a machine from catalog names. Three rotor names make a three
// rotor machine with a thick reflector, four names a four rotor machine with
// a thin reflector.
func New(rotorNames []string, reflectorName string, opts ...Option) (*Machine, error) {
	if err := catalog.CheckModel(rotorNames, reflectorName); err != nil {
		return nil, err
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	m := &Machine{rotors: make([]*rotor.Rotor, len(rotorNames))}
	for i, name := range rotorNames {
		var ropts []rotor.Option
		if i == len(rotorNames)-2 {
			ropts = append(ropts, rotor.WithDoubleStep())
		}
		r, err := rotor.New(name, ropts...)
		if err != nil {
			return nil, err
		}
		m.rotors[i] = r
	}

	var err error
	if m.reflector, err = reflector.New(reflectorName); err != nil {
		return nil, err
	}
	if m.plugboard, err = plugboard.New(s.cables...); err != nil {
		return nil, fmt.Errorf("plugboard: %w", err)
	}
	if s.position != "" {
		if err := m.SetPosition(s.position); err != nil {
			return nil, err
		}
	}
	if s.ring != "" {
		if err := m.SetRing(s.ring); err != nil {
			return nil, err
		}
	}
	m.start = m.Position()
	return m, nil
}

// Position returns the letters in the rotor windows.
func (m *Machine) Position() string {
	b := make([]byte, len(m.rotors))
	for i, r := range m.rotors {
		b[i] = r.Position()
	}
	return string(b)
}

// SetPosition turns every rotor to the given letter.
func (m *Machine) SetPosition(letters string) error {
	if err := m.checkKey("position", letters); err != nil {
		return err
	}
	for i, r := range m.rotors {
		if err := r.SetPosition(letters[i]); err != nil {
			return err
		}
	}
	return nil
}

// Ring returns the ring settings.
func (m *Machine) Ring() string {
	b := make([]byte, len(m.rotors))
	for i, r := range m.rotors {
		b[i] = r.Ring()
	}
	return string(b)
}

// SetRing sets every rotor's ring.
func (m *Machine) SetRing(letters string) error {
	if err := m.checkKey("ring", letters); err != nil {
		return err
	}
	for i, r := range m.rotors {
		if err := r.SetRing(letters[i]); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns the rotors to the position the machine was built with.
func (m *Machine) Reset() {
	_ = m.SetPosition(m.start)
}

// Rotors returns the rotor names, leftmost first.
func (m *Machine) Rotors() []string {
	names := make([]string, len(m.rotors))
	for i, r := range m.rotors {
		names[i] = r.Name()
	}
	return names
}

// Reflector returns the reflector name.
func (m *Machine) Reflector() string { return m.reflector.Name() }

// Plugboard gives access to the plugboard for rewiring.
func (m *Machine) Plugboard() *plugboard.Plugboard { return m.plugboard }

// Cables returns the current plugboard cables.
func (m *Machine) Cables() []string { return m.plugboard.Cables() }

// String describes the key, e.g. "I-II-III B pos=AAA ring=AAA cables=[AB]".
func (m *Machine) String() string {
	return fmt.Sprintf("%s %s pos=%s ring=%s cables=%v",
		strings.Join(m.Rotors(), "-"), m.Reflector(), m.Position(), m.Ring(), m.Cables())
}

// Translate enciphers text, advancing the rotors once per letter. Text must
// be uppercase A-Z; nothing is stepped if it is not.
func (m *Machine) Translate(text string) (string, error) {
	if err := alphabet.Check(text); err != nil {
		return "", err
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = alphabet.Letter(m.press(int(text[i] - 'A')))
	}
	return string(out), nil
}

// Match reports whether this machine turns plaintext into ciphertext. It
// stops at the first differing letter, leaving the rotors where they got to,
// so it is meant for a freshly built machine.
func (m *Machine) Match(plaintext, ciphertext string) bool {
	if len(plaintext) != len(ciphertext) || !alphabet.Valid(plaintext) || !alphabet.Valid(ciphertext) {
		return false
	}
	for i := 0; i < len(plaintext); i++ {
		if m.press(int(plaintext[i]-'A')) != int(ciphertext[i]-'A') {
			return false
		}
	}
	return true
}

func (m *Machine) checkKey(what, letters string) error {
	if len(letters) != len(m.rotors) {
		return fmt.Errorf("%w: %s %q for %d rotors", ErrKeyLength, what, letters, len(m.rotors))
	}
	if err := alphabet.Check(letters); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// step advances the fast rotor, then the one beside it on turnover or on its
// own notch, then the one after that on the middle rotor's turnover. In a four
// rotor machine the leftmost rotor is never reached.
func (m *Machine) step() {
	n := len(m.rotors)
	turnover := m.rotors[n-1].Step(true)
	turnover = m.rotors[n-2].Step(turnover)
	m.rotors[n-3].Step(turnover)
}

// press is one key press: step, then plugboard, rotors right to left,
// reflector, rotors left to right, plugboard.
func (m *Machine) press(c int) int {
	m.step()
	c = m.plugboard.TranslateIndex(c)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].RTransIndex(c)
	}
	c = m.reflector.TranslateIndex(c)
	for _, r := range m.rotors {
		c = r.LTransIndex(c)
	}
	return m.plugboard.TranslateIndex(c)
}
