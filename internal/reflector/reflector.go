// Package reflector implements the fixed wheel that sends the signal back
// through the rotors.
package reflector

import (
	"enigma/internal/catalog"
	"enigma/internal/permutation"
)

// Reflector is a fixed point free involution. It has no position and never
// steps.
type Reflector struct {
	name  string
	table permutation.Table
}

// New looks name up in the catalog.
func New(name string) (*Reflector, error) {
	spec, err := catalog.LookupReflector(name)
	if err != nil {
		return nil, err
	}
	return &Reflector{name: spec.Name, table: spec.Wiring}, nil
}

// Name returns the catalog name.
func (r *Reflector) Name() string { return r.name }


// Translate reflects letter c.
func (r *Reflector) Translate(c byte) byte { return r.table.Translate(c) }

// TranslateIndex is Translate over contact indexes.
func (r *Reflector) TranslateIndex(i int) int { return r.table.Map(i) }
