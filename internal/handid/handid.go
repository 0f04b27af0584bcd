// Package handid generates sortable identifiers for dealt showdowns.
package handid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID: 128 bits in 5-bit groups, padded with two
// leading zero bits
const Length = 26

// Generator creates IDs, reading randomness from an optional source
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses the uuid package's
// crypto source.
func NewGenerator(rand io.Reader) *Generator {
	return &Generator{rand: rand}
}

// Generate creates a new ID from a UUIDv7
func Generate() (string, error) {
	return NewGenerator(nil).Generate()
}

// MustGenerate is Generate that panics on error
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// Generate creates a new ID using the generator's source
func (g *Generator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID as a 26-character base32 string. Encoded IDs sort
// in the same order as the UUIDs they came from.
func Encode(id uuid.UUID) string {
	var out [Length]byte
	for i := range out {
		var v byte
		for b := range 5 {
			pos := i*5 + b - 2
			v <<= 1
			if pos >= 0 && id[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

// Decode parses an encoded ID back into its UUID
func Decode(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}
	for i := range len(s) {
		v := strings.IndexByte(alphabet, s[i])
		for b := range 5 {
			pos := i*5 + b - 2
			if pos < 0 || v&(0x10>>b) == 0 {
				continue
			}
			id[pos/8] |= 0x80 >> (pos % 8)
		}
	}
	return id, nil
}

// Validate checks that s is a well-formed ID
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("id must be exactly %d characters, got %d", Length, len(s))
	}

	// The two padding bits leave at most three bits in the first character
	if s[0] > '7' {
		return fmt.Errorf("id first character must be 0-7, got %c", s[0])
	}

	for i := range len(s) {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}
	return nil
}
