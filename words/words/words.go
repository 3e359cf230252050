// Package words turns raw text into per-document token counts and ranks them.
//
// Count normalizes and filters a document into a TokenCount. Rank orders a
// single TokenCount by frequency and Common finds the tokens that recur across
// several documents. All functions are pure and safe for concurrent use; the
// only shared state is the read-only stop-word set.
package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MinTokenLen is the minimum number of characters a token must have.
const MinTokenLen = 3

var ErrBadToken = errors.New("token violates count invariants")

// Keyword is a token paired with its number of occurrences.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TokenCount maps tokens of one document to their occurrence counts and
// remembers the order in which tokens were first seen.
// The zero value is an empty TokenCount.
type TokenCount struct {
	tokens []string
	counts map[string]int
}

// Count lower-cases text, strips everything that is not a word character or
// whitespace, splits it on whitespace and counts the tokens that are neither
// stop words nor shorter than MinTokenLen.
func Count(text string) TokenCount {
	candidates := fields(text)
	tc := TokenCount{
		tokens: make([]string, 0, len(candidates)),
		counts: make(map[string]int, len(candidates)),
	}
	for _, candidate := range candidates {
		if !retained(candidate) {
			continue
		}
		if _, ok := tc.counts[candidate]; !ok {
			tc.tokens = append(tc.tokens, candidate)
		}
		tc.counts[candidate]++
	}
	return tc
}

// WordCount returns the number of whitespace separated words in text after
// case folding and punctuation stripping, before any filtering.
func WordCount(text string) int {
	return len(fields(text))
}

// NewTokenCount builds a TokenCount from keywords listed in first-seen order.
// It rejects duplicates, non-positive counts and tokens Count would never
// produce.
func NewTokenCount(keywords []Keyword) (TokenCount, error) {
	tc := TokenCount{
		tokens: make([]string, 0, len(keywords)),
		counts: make(map[string]int, len(keywords)),
	}
	for _, kw := range keywords {
		switch {
		case kw.Count < 1:
			return TokenCount{}, fmt.Errorf("%w: %q has count %d", ErrBadToken, kw.Word, kw.Count)
		case !isToken(kw.Word):
			return TokenCount{}, fmt.Errorf("%w: %q is not a valid token", ErrBadToken, kw.Word)
		}
		if _, ok := tc.counts[kw.Word]; ok {
			return TokenCount{}, fmt.Errorf("%w: duplicate token %q", ErrBadToken, kw.Word)
		}
		tc.tokens = append(tc.tokens, kw.Word)
		tc.counts[kw.Word] = kw.Count
	}
	return tc, nil
}

// Len returns the number of distinct tokens.
func (tc TokenCount) Len() int {
	return len(tc.tokens)
}

// Get returns the count of token, zero if absent.
func (tc TokenCount) Get(token string) int {
	return tc.counts[token]
}

// Tokens returns the distinct tokens in first-seen order.
func (tc TokenCount) Tokens() []string {
	tokens := make([]string, len(tc.tokens))
	copy(tokens, tc.tokens)
	return tokens
}

// Total returns the sum of all counts.
func (tc TokenCount) Total() int {
	var total int
	for _, count := range tc.counts {
		total += count
	}
	return total
}

// Keywords returns every token with its count in first-seen order.
func (tc TokenCount) Keywords() []Keyword {
	keywords := make([]Keyword, len(tc.tokens))
	for i, token := range tc.tokens {
		keywords[i] = Keyword{Word: token, Count: tc.counts[token]}
	}
	return keywords
}

func fields(text string) []string {
	return strings.Fields(normalize(text))
}

// normalize folds case and drops every rune that is not a letter, number,
// underscore or whitespace. Apostrophes go too, so "it's" becomes "its".
func normalize(text string) string {
	// a Caser keeps state, so one is made per call
	folded := cases.Fold().String(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, folded)
}

func isToken(word string) bool {
	f := fields(word)
	return len(f) == 1 && f[0] == word && retained(word)
}

func retained(token string) bool {
	return utf8.RuneCountInString(token) >= MinTokenLen && !IsStopWord(token)
}
