// Package secretgen generates high-entropy alphanumeric secrets.
package secretgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/sethvargo/go-password/password"
)

// DefaultLength is the number of symbols in a generated secret.
// log2(62^32) is roughly 190 bits.
const DefaultLength = 32

// Alphabet is the symbol set secrets are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrRNGUnavailable is returned when the entropy source cannot be read
var ErrRNGUnavailable = errors.New("random source unavailable")

// Generator draws secrets from a cryptographic random source.
type Generator struct {
	gen    *password.Generator
	length int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLength overrides DefaultLength. Non-positive values are ignored.
func WithLength(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.length = n
		}
	}
}

// New returns a Generator reading from r.
// A nil r uses crypto/rand, which is backed by the OS entropy source.
func New(r io.Reader, opts ...Option) *Generator {
	if r == nil {
		r = rand.Reader
	}
	// Alphabet goes in as the only letter set; Next asks for no upper case,
	// digits or symbols, so every symbol is drawn from Alphabet alone.
	// NewGenerator has no failing path for a non-nil input.
	gen, _ := password.NewGenerator(&password.GeneratorInput{
		LowerLetters: Alphabet,
		Reader:       r,
	})
	g := &Generator{gen: gen, length: DefaultLength}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a fresh secret. Symbols are drawn uniformly from Alphabet.
func (g *Generator) Next() (string, error) {
	s, err := g.gen.Generate(g.length, 0, 0, true, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRNGUnavailable, err)
	}
	return s, nil
}
