package search

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"enigma/internal/alphabet"
	"enigma/internal/catalog"
	"enigma/internal/machine"
	"enigma/internal/plugboard"
)

// ringCount is the number of ring triples for the three stepping rotors.
const ringCount = alphabet.Size * alphabet.Size * alphabet.Size

// ErrInvalidSpace is returned for a search space that cannot be enumerated.
var ErrInvalidSpace = errors.New("invalid search space")

// Space declares what a key search tries: every ordered choice of three
// distinct rotors from Rotors, optionally under every Greek wheel, with every
// reflector and every ring triple. Position and Cables are known and fixed.
type Space struct {
	Rotors     []string `json:"rotors" yaml:"rotors"`
	Greek      []string `json:"greek,omitempty" yaml:"greek,omitempty"`
	Reflectors []string `json:"reflectors" yaml:"reflectors"`
	Position   string   `json:"position" yaml:"position"`
	Cables     []string `json:"cables,omitempty" yaml:"cables,omitempty"`
}

// Candidate is one key tried by the search.
type Candidate struct {
	Rotors    []string `json:"rotors" yaml:"rotors"`
	Reflector string   `json:"reflector" yaml:"reflector"`
	Ring      string   `json:"ring" yaml:"ring"`
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s %s %s", strings.Join(c.Rotors, " "), c.Reflector, c.Ring)
}

// Validate checks that the space names known, correctly placed entries, that
// the position fits the model and that the cables can be plugged in.
func (s Space) Validate() error {
	if len(s.Rotors) < 3 {
		return fmt.Errorf("%w: need at least 3 candidate rotors, have %d", ErrInvalidSpace, len(s.Rotors))
	}
	seen := make(map[string]bool, len(s.Rotors))
	for _, r := range s.Rotors {
		if seen[r] {
			return fmt.Errorf("%w: rotor %s listed twice", ErrInvalidSpace, r)
		}
		seen[r] = true
	}
	if len(s.Reflectors) == 0 {
		return fmt.Errorf("%w: no candidate reflectors", ErrInvalidSpace)
	}

	for _, r := range s.Rotors {
		spec, err := catalog.LookupRotor(r)
		if err != nil {
			return err
		}
		if spec.Greek {
			return fmt.Errorf("%w: rotor %s cannot step", catalog.ErrMisplacedEntry, r)
		}
	}
	for _, g := range s.Greek {
		spec, err := catalog.LookupRotor(g)
		if err != nil {
			return err
		}
		if !spec.Greek {
			return fmt.Errorf("%w: rotor %s is not a Greek wheel", catalog.ErrMisplacedEntry, g)
		}
	}
	for _, name := range s.Reflectors {
		spec, err := catalog.LookupReflector(name)
		if err != nil {
			return err
		}
		if spec.Thin != (len(s.Greek) > 0) {
			return fmt.Errorf("%w: reflector %s in a %d rotor machine", catalog.ErrMisplacedEntry, name, s.rotorCount())
		}
	}

	if len(s.Position) != s.rotorCount() {
		return fmt.Errorf("%w: position %q for %d rotors", machine.ErrKeyLength, s.Position, s.rotorCount())
	}
	if err := alphabet.Check(s.Position); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if _, err := plugboard.New(s.Cables...); err != nil {
		return fmt.Errorf("cables: %w", err)
	}
	return nil
}

// Size is the number of candidates in the space.
func (s Space) Size() int64 {
	n := int64(len(s.Rotors))
	return n * (n - 1) * (n - 2) * int64(s.greekCount()) * int64(len(s.Reflectors)) * ringCount
}

// At decodes the i-th candidate. Candidates are ordered by rotor order, then
// Greek wheel, then reflector, then ring with the rightmost ring letter
// changing fastest.
func (s Space) At(i int64) Candidate {
	ring := int(i % ringCount)
	i /= ringCount
	refl := s.Reflectors[i%int64(len(s.Reflectors))]
	i /= int64(len(s.Reflectors))
	g := int(i % int64(s.greekCount()))
	i /= int64(s.greekCount())

	n := int64(len(s.Rotors))
	pool := append([]string(nil), s.Rotors...)
	order := make([]string, 0, 3)
	for _, div := range []int64{(n - 1) * (n - 2), n - 2, 1} {
		k := i / div
		i %= div
		order = append(order, pool[k])
		pool = append(pool[:k], pool[k+1:]...)
	}

	rings := []byte{
		alphabet.Letter(ring / (alphabet.Size * alphabet.Size)),
		alphabet.Letter(ring / alphabet.Size),
		alphabet.Letter(ring),
	}
	greek := ""
	if len(s.Greek) > 0 {
		greek = s.Greek[g]
		rings = append([]byte{'A'}, rings...)
	}
	return Candidate{Rotors: s.withGreek(greek, order), Reflector: refl, Ring: string(rings)}
}

// Candidates yields every candidate lazily, in At order. Ranging over it again
// restarts from the beginning.
func (s Space) Candidates() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, c := range s.Range(0, s.Size()) {
			if !yield(c) {
				return
			}
		}
	}
}

// Range yields the candidates with index in [lo, hi) together with their
// index, so a space can be split between workers.
func (s Space) Range(lo, hi int64) iter.Seq2[int64, Candidate] {
	return func(yield func(int64, Candidate) bool) {
		if size := s.Size(); hi > size {
			hi = size
		}
		for i := lo; i < hi; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Machine builds a fresh machine for c at the space's position and cables.
func (s Space) Machine(c Candidate) (*machine.Machine, error) {
	opts := []machine.Option{machine.WithCables(s.Cables...)}
	if s.Position != "" {
		opts = append(opts, machine.WithPosition(s.Position))
	}
	if c.Ring != "" {
		opts = append(opts, machine.WithRing(c.Ring))
	}
	return machine.New(c.Rotors, c.Reflector, opts...)
}

func (s Space) withGreek(greek string, order []string) []string {
	if greek == "" {
		return order
	}
	return append([]string{greek}, order...)
}

func (s Space) greekCount() int {
	if len(s.Greek) == 0 {
		return 1
	}
	return len(s.Greek)
}

func (s Space) rotorCount() int {
	if len(s.Greek) == 0 {
		return 3
	}
	return 4
}
