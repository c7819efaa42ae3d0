// Package namegen generates human-readable identifiers for generated users.
// Format: adjective-noun (e.g., "calm-otter")
package namegen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"regexp"
)

var (
	// ErrRNGUnavailable is returned when the entropy source cannot be read
	ErrRNGUnavailable = errors.New("random source unavailable")

	// ErrInvalidPrefix is returned for prefixes that would break the identifier shape
	ErrInvalidPrefix = errors.New("invalid identifier prefix")
)

var prefixPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// adjectives is a list of positive/neutral adjectives
var adjectives = []string{
	"admiring", "agile", "amazing", "bold", "brave",
	"bright", "busy", "calm", "clever", "cool",
	"daring", "determined", "eager", "elegant", "epic",
	"fearless", "focused", "friendly", "gallant", "gentle",
	"gracious", "happy", "hopeful", "hungry", "jolly",
	"keen", "kind", "laughing", "lucid", "merry",
	"modest", "nifty", "noble", "peaceful", "pensive",
	"quirky", "relaxed", "serene", "sharp", "silly",
	"sleepy", "stoic", "swift", "tender", "thirsty",
	"upbeat", "vibrant", "vigilant", "witty", "zealous",
}

// nouns is a list of animals
var nouns = []string{
	"alpaca", "badger", "beaver", "bison", "bobcat",
	"camel", "condor", "cougar", "coyote", "crane",
	"dingo", "dolphin", "eagle", "falcon", "ferret",
	"finch", "fox", "gecko", "gazelle", "heron",
	"ibex", "jackal", "jaguar", "kestrel", "koala",
	"lemur", "lynx", "magpie", "marmot", "meerkat",
	"moose", "narwhal", "ocelot", "orca", "osprey",
	"otter", "panda", "pelican", "puffin", "quokka",
	"raven", "robin", "salmon", "seal", "tapir",
	"toucan", "walrus", "wombat", "yak", "zebra",
}

// Generator draws identifiers from its own random source.
type Generator struct {
	rand   io.Reader
	prefix string
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrefix prepends prefix to every identifier ("ci-calm-otter").
// Invalid prefixes are ignored; see ValidatePrefix.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		if ValidatePrefix(prefix) == nil {
			g.prefix = prefix
		}
	}
}

// New returns a Generator reading from r. A nil r uses crypto/rand.
func New(r io.Reader, opts ...Option) *Generator {
	if r == nil {
		r = rand.Reader
	}
	g := &Generator{rand: r}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a fresh identifier. Every call is an independent draw.
func (g *Generator) Next() (string, error) {
	adj, err := g.randInt(len(adjectives))
	if err != nil {
		return "", err
	}
	noun, err := g.randInt(len(nouns))
	if err != nil {
		return "", err
	}

	id := adjectives[adj] + "-" + nouns[noun]
	if g.prefix != "" {
		id = g.prefix + "-" + id
	}
	return id, nil
}

// ValidatePrefix reports whether prefix can lead an identifier.
// The empty prefix is valid and means no prefix.
func ValidatePrefix(prefix string) error {
	if prefix == "" || prefixPattern.MatchString(prefix) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
}

// randInt returns a cryptographically random int in [0, max)
func (g *Generator) randInt(max int) (int, error) {
	n, err := rand.Int(g.rand, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRNGUnavailable, err)
	}
	return int(n.Int64()), nil
}
