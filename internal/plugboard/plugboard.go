// Package plugboard implements the front panel letter swapping stage.
package plugboard

import (
	"errors"
	"fmt"

	"enigma/internal/alphabet"
	"enigma/internal/permutation"
)

var (
	// ErrBadChar is returned for a plug outside A-Z.
	ErrBadChar = alphabet.ErrBadChar
	// ErrDuplicatePlug is returned when a letter is already wired.
	ErrDuplicatePlug = errors.New("plug already wired")
	// ErrMissingPlug is returned when removing a letter that is not wired.
	ErrMissingPlug = errors.New("plug not wired")
	// ErrNeedTwoPlugs is returned for a cable that is not exactly two letters.
	ErrNeedTwoPlugs = errors.New("cable needs exactly two plugs")
	// ErrIncorrectCable is returned when removing a cable that is not present
	// in either letter order.
	ErrIncorrectCable = errors.New("no such cable")
)

// Plugboard holds up to 13 cables, each joining two distinct letters.
// Every change rebuilds the lookup table so Translate stays a single index.
type Plugboard struct {
	plugs  [alphabet.Size]bool
	cables []string
	table  permutation.Table
}

// New returns a plugboard wired with the given cables.
func New(cables ...string) (*Plugboard, error) {
	p := &Plugboard{table: permutation.Identity()}
	for _, cable := range cables {
		if err := p.AddCable(cable); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// InsertPlug marks c as wired.
func (p *Plugboard) InsertPlug(c byte) error {
	i, err := alphabet.Index(c)
	if err != nil {
		return err
	}
	if p.plugs[i] {
		return fmt.Errorf("%w: %c", ErrDuplicatePlug, c)
	}
	p.plugs[i] = true
	return nil
}

// RemovePlug marks c as free. A plug held by a cable can only be freed
// through RemoveCable.
func (p *Plugboard) RemovePlug(c byte) error {
	i, err := alphabet.Index(c)
	if err != nil || !p.plugs[i] {
		return fmt.Errorf("%w: %q", ErrMissingPlug, c)
	}
	if cable, ok := p.cableOf(c); ok {
		return fmt.Errorf("%w: %c is held by cable %s", ErrIncorrectCable, c, cable)
	}
	p.plugs[i] = false
	return nil
}

// AddCable joins the two letters of cable. On error the board is unchanged.
func (p *Plugboard) AddCable(cable string) error {
	if len(cable) != 2 {
		return fmt.Errorf("%w: %q", ErrNeedTwoPlugs, cable)
	}
	if err := p.InsertPlug(cable[0]); err != nil {
		return err
	}
	if err := p.InsertPlug(cable[1]); err != nil {
		p.plugs[cable[0]-'A'] = false
		return err
	}
	p.cables = append(p.cables, cable)
	if err := p.activate(); err != nil {
		p.cables = p.cables[:len(p.cables)-1]
		p.plugs[cable[0]-'A'] = false
		p.plugs[cable[1]-'A'] = false
		return err
	}
	return nil
}

// RemoveCable unplugs the cable joining the two letters, in either order.
// On error the board is unchanged.
func (p *Plugboard) RemoveCable(cable string) error {
	if len(cable) != 2 {
		return fmt.Errorf("%w: %q", ErrNeedTwoPlugs, cable)
	}
	for i := 0; i < 2; i++ {
		c := cable[i]
		if c < 'A' || c > 'Z' || !p.plugs[c-'A'] {
			return fmt.Errorf("%w: %q", ErrMissingPlug, c)
		}
	}
	reversed := string([]byte{cable[1], cable[0]})
	for i, existing := range p.cables {
		if existing == cable || existing == reversed {
			p.plugs[cable[0]-'A'] = false
			p.plugs[cable[1]-'A'] = false
			p.cables = append(p.cables[:i], p.cables[i+1:]...)
			return p.activate()
		}
	}
	return fmt.Errorf("%w: %s", ErrIncorrectCable, cable)
}

// Cables returns a copy of the current cables in insertion order.
func (p *Plugboard) Cables() []string {
	return append([]string(nil), p.cables...)
}

// Translate returns the letter c is cabled to, or c itself.
func (p *Plugboard) Translate(c byte) byte {
	return p.table.Translate(c)
}

// TranslateIndex is Translate over contact indexes.
func (p *Plugboard) TranslateIndex(i int) int {
	return p.table.Map(i)
}

func (p *Plugboard) cableOf(c byte) (string, bool) {
	for _, cable := range p.cables {
		if cable[0] == c || cable[1] == c {
			return cable, true
		}
	}
	return "", false
}

func (p *Plugboard) activate() error {
	tbl, err := permutation.FromPairs(p.cables)
	if err != nil {
		return fmt.Errorf("plugboard: cables %v: %w", p.cables, err)
	}
	p.table = tbl
	return nil
}
