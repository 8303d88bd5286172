// Package message prepares text for the machine and wraps it in the
// operator procedures used to send it: five letter groups and a message key
// sent under an indicator.
package message

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"enigma/internal/machine"
)

// ErrIndicator is returned when a doubled message key does not repeat.
var ErrIndicator = errors.New("indicator key does not repeat")

// Normalize turns free text into machine input: spaces become X, letters are
// uppercased with accents dropped, everything else is removed.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, text)
	if err != nil {
		plain = text
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(plain) {
		switch {
		case r == ' ':
			b.WriteByte('X')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Group splits text into blocks of size letters separated by spaces.
func Group(text string, size int) string {
	if size < 1 {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text[i:min(i+size, len(text))])
	}
	return b.String()
}

// Ungroup removes the spacing added by Group.
func Ungroup(text string) string {
	return strings.Join(strings.Fields(text), "")
}

// Encode sets the rotors to key and enciphers the normalized text.
func Encode(m *machine.Machine, key, text string) (string, error) {
	if err := m.SetPosition(key); err != nil {
		return "", err
	}
	return m.Translate(Normalize(text))
}

// EncodeIndicator enciphers text under a message key with the doubled
// indicator procedure. key holds two rotor settings: the first is sent in
// the clear and used to encipher the second twice; the body is then
// enciphered starting at the second.
func EncodeIndicator(m *machine.Machine, key, text string) (string, error) {
	n := len(m.Rotors())
	if len(key) != 2*n {
		return "", fmt.Errorf("%w: %q for %d rotors", machine.ErrKeyLength, key, n)
	}
	ground, msgKey := key[:n], key[n:]
	indicator, err := Encode(m, ground, msgKey+msgKey)
	if err != nil {
		return "", err
	}
	body, err := Encode(m, msgKey, text)
	if err != nil {
		return "", err
	}
	return ground + indicator + body, nil
}

// DecodeIndicator reverses EncodeIndicator, returning the message key and
// the plaintext. Spaces in cipher are ignored.
func DecodeIndicator(m *machine.Machine, cipher string) (key, plain string, err error) {
	cipher = Ungroup(cipher)
	n := len(m.Rotors())
	if len(cipher) < 3*n {
		return "", "", fmt.Errorf("%w: message shorter than its indicator", machine.ErrKeyLength)
	}
	ground := cipher[:n]
	if err := m.SetPosition(ground); err != nil {
		return "", "", err
	}
	doubled, err := m.Translate(cipher[n : 3*n])
	if err != nil {
		return "", "", err
	}
	if doubled[:n] != doubled[n:] {
		return "", "", fmt.Errorf("%w: %s", ErrIndicator, doubled)
	}
	msgKey := doubled[:n]
	if err := m.SetPosition(msgKey); err != nil {
		return "", "", err
	}
	plain, err = m.Translate(cipher[3*n:])
	if err != nil {
		return "", "", err
	}
	return ground + msgKey, plain, nil
}
