package words

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var ErrBadThreshold = errors.New("threshold must be positive")

// Rank returns the tokens of counts occurring at least minOccurrences times,
// most frequent first. Equal counts keep their first-seen order.
func Rank(counts TokenCount, minOccurrences int) ([]Keyword, error) {
	if minOccurrences < 1 {
		return nil, fmt.Errorf("%w: min occurrences %d", ErrBadThreshold, minOccurrences)
	}
	ranked := make([]Keyword, 0, counts.Len())
	for _, token := range counts.tokens {
		if count := counts.counts[token]; count >= minOccurrences {
			ranked = append(ranked, Keyword{Word: token, Count: count})
		}
	}
	slices.SortStableFunc(ranked, byCountDesc)
	return ranked, nil
}

// Common returns the tokens that occur at least minOccurrences times in at
// least minDocuments of the given documents. The reported count is the total
// over all documents, including those where the token did not qualify.
// Ties keep the order in which tokens were first seen walking the documents
// in order. Fewer than two documents never have anything in common.
func Common(counts []TokenCount, minOccurrences, minDocuments int) ([]Keyword, error) {
	if minOccurrences < 1 {
		return nil, fmt.Errorf("%w: min occurrences %d", ErrBadThreshold, minOccurrences)
	}
	if minDocuments < 1 {
		return nil, fmt.Errorf("%w: min documents %d", ErrBadThreshold, minDocuments)
	}
	if len(counts) < 2 {
		return []Keyword{}, nil
	}

	var union []string
	totals := make(map[string]int)
	qualifying := make(map[string]int)
	for _, doc := range counts {
		for _, token := range doc.tokens {
			count := doc.counts[token]
			if _, ok := totals[token]; !ok {
				union = append(union, token)
			}
			totals[token] += count
			if count >= minOccurrences {
				qualifying[token]++
			}
		}
	}

	common := make([]Keyword, 0)
	for _, token := range union {
		if qualifying[token] >= minDocuments {
			common = append(common, Keyword{Word: token, Count: totals[token]})
		}
	}
	slices.SortStableFunc(common, byCountDesc)
	return common, nil
}

func byCountDesc(a, b Keyword) int {
	return cmp.Compare(b.Count, a.Count)
}
