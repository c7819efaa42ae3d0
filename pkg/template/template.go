// Package template replaces generator tokens in env templates.
package template

import (
	"errors"
	"fmt"
	"strings"
)

// Token literals recognized in templates.
const (
	UserToken     = "${GENERATE_USER}"
	PasswordToken = "${GENERATE_PASSWORD}"
)

// unsafeChars may never appear in a generated value, so a replacement can
// never form a new token.
const unsafeChars = "${}"

// ErrUnsafeValue is returned when a source yields a value containing token characters
var ErrUnsafeValue = errors.New("generated value contains token characters")

// Source produces a fresh value on every call.
type Source interface {
	Next() (string, error)
}

// Token pairs a literal with the source that replaces it.
type Token struct {
	Literal string
	Source  Source
}

// DefaultTokens returns the token table in substitution order: users, then passwords.
func DefaultTokens(users, passwords Source) []Token {
	return []Token{
		{Literal: UserToken, Source: users},
		{Literal: PasswordToken, Source: passwords},
	}
}

// Substitute replaces every occurrence of each token, one class at a time in
// table order. Occurrences are filled left to right and each one draws a new
// value from its source.
func Substitute(text string, tokens []Token) (string, error) {
	for _, tok := range tokens {
		out, err := replaceAll(text, tok)
		if err != nil {
			return "", err
		}
		text = out
	}
	return text, nil
}

// Count reports how many times each token literal occurs in text.
func Count(text string, tokens []Token) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok.Literal] = strings.Count(text, tok.Literal)
	}
	return counts
}

func replaceAll(text string, tok Token) (string, error) {
	if tok.Literal == "" {
		return text, nil
	}
	n := strings.Count(text, tok.Literal)
	if n == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for i := 0; i < n; i++ {
		idx := strings.Index(rest, tok.Literal)
		value, err := tok.Source.Next()
		if err != nil {
			return "", fmt.Errorf("generate %s: %w", tok.Literal, err)
		}
		if strings.ContainsAny(value, unsafeChars) {
			return "", fmt.Errorf("%w: %s", ErrUnsafeValue, tok.Literal)
		}
		b.WriteString(rest[:idx])
		b.WriteString(value)
		rest = rest[idx+len(tok.Literal):]
	}
	b.WriteString(rest)

	return b.String(), nil
}
