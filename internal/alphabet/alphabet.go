// Package alphabet converts between the uppercase Latin letters the machine
// works on and their 0-25 contact indexes.
package alphabet

import (
	"errors"
	"fmt"
)

// Size is the number of letters, contacts and rotor positions.
const Size = 26

// ErrBadChar is returned for any character outside A-Z.
var ErrBadChar = errors.New("character outside A-Z")

// Index returns the contact index of letter c.
func Index(c byte) (int, error) {
	if c < 'A' || c > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrBadChar, c)
	}
	return int(c - 'A'), nil
}

// Letter returns the letter for index i, taken mod Size.
func Letter(i int) byte {
	return byte(Mod(i)) + 'A'
}

// Mod reduces i into 0..Size-1, also for negative values.
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}

// Valid reports whether every byte of s is in A-Z.
func Valid(s string) bool {
	return Check(s) == nil
}

// Check returns an ErrBadChar error naming the first offending byte of s.
func Check(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return fmt.Errorf("%w: %q at offset %d", ErrBadChar, s[i], i)
		}
	}
	return nil
}

