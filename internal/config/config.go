// Package config reads key sheets and search sheets written in YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"enigma/internal/alphabet"
	"enigma/internal/catalog"
	"enigma/internal/machine"
	"enigma/internal/plugboard"
	"enigma/internal/search"
)

// ErrEmpty is returned for a sheet without content.
var ErrEmpty = errors.New("empty sheet")

// Cables is a list of plugboard cables. In YAML it is either a sequence
// ([AB, CD]) or one space separated string ("AB CD").
type Cables []string

// UnmarshalYAML accepts both cable notations.
func (c *Cables) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*c = list
		return nil
	default:
		return fmt.Errorf("line %d: cables must be a string or a list", value.Line)
	}
}

// Key is a daily key sheet entry.
type Key struct {
	Rotors    []string `yaml:"rotors"`
	Reflector string   `yaml:"reflector"`
	Position  string   `yaml:"position,omitempty"`
	Ring      string   `yaml:"ring,omitempty"`
	Cables    Cables   `yaml:"cables,omitempty"`
}

// ParseKey decodes a key sheet. Unknown fields are rejected.
func ParseKey(data []byte) (*Key, error) {
	var k Key
	if err := decode(data, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

// Validate reports every problem with the key at once.
func (k *Key) Validate() error {
	var err error
	err = multierr.Append(err, catalog.CheckModel(k.Rotors, k.Reflector))
	err = multierr.Append(err, checkLetters("position", k.Position, len(k.Rotors)))
	err = multierr.Append(err, checkLetters("ring", k.Ring, len(k.Rotors)))
	if _, perr := plugboard.New(k.Cables...); perr != nil {
		err = multierr.Append(err, fmt.Errorf("cables: %w", perr))
	}
	return err
}

// Machine builds the machine the key describes.
func (k *Key) Machine() (*machine.Machine, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	var opts []machine.Option
	if k.Position != "" {
		opts = append(opts, machine.WithPosition(k.Position))
	}
	if k.Ring != "" {
		opts = append(opts, machine.WithRing(k.Ring))
	}
	opts = append(opts, machine.WithCables(k.Cables...))
	return machine.New(k.Rotors, k.Reflector, opts...)
}

// Search is a known plaintext attack request.
type Search struct {
	Rotors     []string `yaml:"rotors"`
	Greek      []string `yaml:"greek,omitempty"`
	Reflectors []string `yaml:"reflectors"`
	Position   string   `yaml:"position"`
	Cables     Cables   `yaml:"cables,omitempty"`
	Plaintext  string   `yaml:"plaintext"`
	Ciphertext string   `yaml:"ciphertext"`
	Workers    int      `yaml:"workers,omitempty"`
	First      bool     `yaml:"first,omitempty"`
}

// ParseSearch decodes a search sheet. Unknown fields are rejected.
func ParseSearch(data []byte) (*Search, error) {
	var s Search
	if err := decode(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Space returns the search space the sheet declares.
func (s *Search) Space() search.Space {
	return search.Space{
		Rotors:     s.Rotors,
		Greek:      s.Greek,
		Reflectors: s.Reflectors,
		Position:   s.Position,
		Cables:     s.Cables,
	}
}

// Validate reports every problem with the sheet at once.
func (s *Search) Validate() error {
	var err error
	err = multierr.Append(err, s.Space().Validate())
	if perr := alphabet.Check(s.Plaintext); perr != nil {
		err = multierr.Append(err, fmt.Errorf("plaintext: %w", perr))
	}
	if cerr := alphabet.Check(s.Ciphertext); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("ciphertext: %w", cerr))
	}
	if len(s.Plaintext) != len(s.Ciphertext) {
		err = multierr.Append(err, fmt.Errorf("%w: %d and %d", search.ErrTextMismatch, len(s.Plaintext), len(s.Ciphertext)))
	}
	if s.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers must not be negative, got %d", s.Workers))
	}
	return err
}

// Options turns the sheet's tuning fields into searcher options.
func (s *Search) Options() []search.Option {
	var opts []search.Option
	if s.Workers > 0 {
		opts = append(opts, search.WithWorkers(s.Workers))
	}
	if s.First {
		opts = append(opts, search.WithFirstOnly())
	}
	return opts
}

func checkLetters(what, letters string, rotors int) error {
	if letters == "" {
		return nil
	}
	if len(letters) != rotors {
		return fmt.Errorf("%w: %s %q for %d rotors", machine.ErrKeyLength, what, letters, rotors)
	}
	if err := alphabet.Check(letters); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmpty
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode sheet: %w", err)
	}
	return nil
}
