// Package rotor implements a single cipher wheel: a fixed wiring turned by a
// movable position and a ring offset, with notches driving the next wheel.
package rotor

import (
	"fmt"

	"enigma/internal/alphabet"
	"enigma/internal/catalog"
	"enigma/internal/permutation"
)

// Rotor is one wheel. Position and ring are kept as contact indexes.
type Rotor struct {
	name       string
	wiring     permutation.Table
	notches    [alphabet.Size]bool
	position   int
	ring       int
	doublestep bool
}

// Option configures a Rotor at construction.
type Option func(*Rotor) error

// WithPosition sets the starting position letter.
func WithPosition(c byte) Option {
	return func(r *Rotor) error { return r.SetPosition(c) }
}

// WithRing sets the ring setting letter.
func WithRing(c byte) Option {
	return func(r *Rotor) error { return r.SetRing(c) }
}

// WithDoubleStep lets the rotor advance on its own when it sits at a notch.
// Only the wheel next to the fast rotor carries this behaviour.
func WithDoubleStep() Option {
	return func(r *Rotor) error {
		r.doublestep = true
		return nil
	}
}

// New looks name up in the catalog and builds the rotor at position A, ring A.
func New(name string, opts ...Option) (*Rotor, error) {
	spec, err := catalog.LookupRotor(name)
	if err != nil {
		return nil, err
	}
	return FromSpec(spec, opts...)
}

// FromSpec builds a rotor from a catalog entry.
func FromSpec(spec catalog.RotorSpec, opts ...Option) (*Rotor, error) {
	r := &Rotor{name: spec.Name, wiring: spec.Wiring}
	for i := 0; i < len(spec.Notches); i++ {
		n, err := alphabet.Index(spec.Notches[i])
		if err != nil {
			return nil, fmt.Errorf("rotor %s notch: %w", spec.Name, err)
		}
		r.notches[n] = true
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the catalog name of the rotor.
func (r *Rotor) Name() string { return r.name }

// Position returns the letter showing in the window.
func (r *Rotor) Position() byte { return alphabet.Letter(r.position) }

// SetPosition turns the rotor so that c shows in the window.
func (r *Rotor) SetPosition(c byte) error {
	i, err := alphabet.Index(c)
	if err != nil {
		return fmt.Errorf("rotor %s position: %w", r.name, err)
	}
	r.position = i
	return nil
}

// Ring returns the ring setting letter.
func (r *Rotor) Ring() byte { return alphabet.Letter(r.ring) }

// SetRing sets the offset between wiring and the position markings.
func (r *Rotor) SetRing(c byte) error {
	i, err := alphabet.Index(c)
	if err != nil {
		return fmt.Errorf("rotor %s ring: %w", r.name, err)
	}
	r.ring = i
	return nil
}

// DoubleStep reports whether the rotor advances by itself at a notch.
func (r *Rotor) DoubleStep() bool { return r.doublestep }

// AtNotch reports whether the current position is one of the notches.
func (r *Rotor) AtNotch() bool { return r.notches[r.position] }

// Step is one mechanical click. The rotor advances when trigger is set, or
// when it double steps and sits at a notch. The result tells the caller
// whether the rotor left a notch, i.e. whether the next rotor must turn.
func (r *Rotor) Step(trigger bool) (turnover bool) {
	if !trigger && !(r.doublestep && r.notches[r.position]) {
		return false
	}
	turnover = r.notches[r.position]
	r.position = alphabet.Mod(r.position + 1)
	return turnover
}

// RTrans passes a letter through the rotor on the way to the reflector.
func (r *Rotor) RTrans(c byte) byte {
	i, err := alphabet.Index(c)
	if err != nil {
		return c
	}
	return alphabet.Letter(r.RTransIndex(i))
}

// LTrans passes a letter through the rotor on the way back from the
// reflector. It is the inverse of RTrans for the same position and ring.
func (r *Rotor) LTrans(c byte) byte {
	i, err := alphabet.Index(c)
	if err != nil {
		return c
	}
	return alphabet.Letter(r.LTransIndex(i))
}

// RTransIndex is RTrans over contact indexes.
func (r *Rotor) RTransIndex(i int) int {
	off := r.offset()
	return alphabet.Mod(r.wiring.Map(alphabet.Mod(i+off)) - off)
}

// LTransIndex is LTrans over contact indexes.
func (r *Rotor) LTransIndex(i int) int {
	off := r.offset()
	return alphabet.Mod(r.wiring.Unmap(alphabet.Mod(i+off)) - off)
}

// tables returns the right-to-left and left-to-right mappings for the
// current position and ring.
func (r *Rotor) tables() (rtable, ltable string) {
	var rt, lt [alphabet.Size]byte
	for i := 0; i < alphabet.Size; i++ {
		rt[i] = alphabet.Letter(r.RTransIndex(i))
		lt[i] = alphabet.Letter(r.LTransIndex(i))
	}
	return string(rt[:]), string(lt[:])
}

func (r *Rotor) offset() int {
	return alphabet.Mod(r.position - r.ring)
}
