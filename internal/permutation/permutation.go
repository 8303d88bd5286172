// Package permutation provides the 26 entry letter bijection shared by the
// plugboard, the reflectors and the rotor wirings.
package permutation

import (
	"errors"
	"fmt"

	"enigma/internal/alphabet"
)

var (
	// ErrNotPermutation is returned when a wiring maps two letters to the same
	// output or has the wrong length.
	ErrNotPermutation = errors.New("wiring is not a permutation")
	// ErrBadPair is returned by FromPairs for a malformed or overlapping pair.
	ErrBadPair = errors.New("invalid letter pair")
)

// Table maps every contact index to another and back. The zero value is not
// usable; start from Identity.
type Table struct {
	fwd [alphabet.Size]uint8
	inv [alphabet.Size]uint8
}

// Identity returns the table that maps every letter to itself.
func Identity() Table {
	var t Table
	for i := range t.fwd {
		t.fwd[i] = uint8(i)
		t.inv[i] = uint8(i)
	}
	return t
}

// FromWiring builds a full permutation from a 26 letter wiring string where
// the i-th letter is the image of the i-th letter of the alphabet.
func FromWiring(wiring string) (Table, error) {
	if len(wiring) != alphabet.Size {
		return Table{}, fmt.Errorf("%w: length %d", ErrNotPermutation, len(wiring))
	}
	var (
		t    Table
		seen [alphabet.Size]bool
	)
	for i := 0; i < len(wiring); i++ {
		out, err := alphabet.Index(wiring[i])
		if err != nil {
			return Table{}, err
		}
		if seen[out] {
			return Table{}, fmt.Errorf("%w: %c used twice", ErrNotPermutation, wiring[i])
		}
		seen[out] = true
		t.fwd[i] = uint8(out)
		t.inv[out] = uint8(i)
	}
	return t, nil
}

// FromPairs builds an involution swapping the two letters of every pair.
// Letters not named by any pair map to themselves.
func FromPairs(pairs []string) (Table, error) {
	t := Identity()
	var used [alphabet.Size]bool
	for _, p := range pairs {
		if len(p) != 2 {
			return Table{}, fmt.Errorf("%w: %q", ErrBadPair, p)
		}
		a, err := alphabet.Index(p[0])
		if err != nil {
			return Table{}, err
		}
		b, err := alphabet.Index(p[1])
		if err != nil {
			return Table{}, err
		}
		if a == b || used[a] || used[b] {
			return Table{}, fmt.Errorf("%w: %q", ErrBadPair, p)
		}
		used[a], used[b] = true, true
		t.fwd[a], t.fwd[b] = uint8(b), uint8(a)
		t.inv[a], t.inv[b] = uint8(b), uint8(a)
	}
	return t, nil
}

// Map returns the image of contact i.
func (t *Table) Map(i int) int {
	return int(t.fwd[i])
}

// Unmap returns the contact whose image is i.
func (t *Table) Unmap(i int) int {
	return int(t.inv[i])
}

// Translate maps a letter forward. Bytes outside A-Z are returned unchanged.
func (t *Table) Translate(c byte) byte {
	if c < 'A' || c > 'Z' {
		return c
	}
	return t.fwd[c-'A'] + 'A'
}

// IsInvolution reports whether the table is its own inverse.
func (t *Table) IsInvolution() bool {
	return t.fwd == t.inv
}

// FixedPoints returns the letters that map to themselves.
func (t *Table) FixedPoints() []byte {
	var out []byte
	for i, v := range t.fwd {
		if int(v) == i {
			out = append(out, alphabet.Letter(i))
		}
	}
	return out
}

// String renders the forward mapping as a 26 letter wiring string.
func (t Table) String() string {
	var b [alphabet.Size]byte
	for i, v := range t.fwd {
		b[i] = v + 'A'
	}
	return string(b[:])
}
