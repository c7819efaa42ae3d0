package secretgen

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{32}$`)
	g := New(nil)

	for i := 0; i < 1000; i++ {
		s, err := g.Next()
		require.NoError(t, err)
		assert.Regexp(t, pattern, s)
		assert.False(t, strings.ContainsAny(s, "${}"), "secret %q contains token characters", s)
	}
}

func TestNext_Uniqueness(t *testing.T) {
	const count = 10000
	g := New(nil)
	seen := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		s, err := g.Next()
		require.NoError(t, err)
		_, dup := seen[s]
		require.False(t, dup, "collision at iteration %d: %s", i, s)
		seen[s] = struct{}{}
	}
}

func TestNext_CoversAlphabet(t *testing.T) {
	g := New(nil)
	seen := make(map[rune]bool)

	// 200 * 32 draws over 62 symbols; every symbol appears with overwhelming probability
	for i := 0; i < 200; i++ {
		s, err := g.Next()
		require.NoError(t, err)
		for _, r := range s {
			seen[r] = true
		}
	}
	assert.Len(t, seen, len(Alphabet))
}

func TestWithLength(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"custom", 12, 12},
		{"zero keeps default", 0, DefaultLength},
		{"negative keeps default", -4, DefaultLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(nil, WithLength(tt.n)).Next()
			require.NoError(t, err)
			assert.Len(t, s, tt.want)
		})
	}
}

func TestNext_ReaderFailure(t *testing.T) {
	g := New(iotest.ErrReader(errors.New("no entropy")))

	_, err := g.Next()
	assert.ErrorIs(t, err, ErrRNGUnavailable)
}

func TestNext_DrawsFromReader(t *testing.T) {
	// Identical entropy streams yield identical secrets
	a, err := New(&streamReader{}).Next()
	require.NoError(t, err)
	b, err := New(&streamReader{}).Next()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Regexp(t, `^[A-Za-z0-9]{32}$`, a)
}

// streamReader yields a fixed, repeating byte stream.
type streamReader struct {
	next byte
}

func (r *streamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next += 29
	}
	return len(p), nil
}
