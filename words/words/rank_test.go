package words_test

import (
	"keyword-service/words/words"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		desc           string
		text           string
		minOccurrences int
		expected       []words.Keyword
		wantErr        bool
	}{
		{
			desc:           "success - below threshold dropped",
			text:           "cat cat cat dog dog bird",
			minOccurrences: 2,
			expected: []words.Keyword{
				{Word: "cat", Count: 3},
				{Word: "dog", Count: 2},
			},
		},
		{
			desc:           "success - ties keep first seen order",
			text:           "alpha beta alpha beta",
			minOccurrences: 1,
			expected: []words.Keyword{
				{Word: "alpha", Count: 2},
				{Word: "beta", Count: 2},
			},
		},
		{
			desc:           "success - sorted by count",
			text:           "bird dog cat dog cat cat",
			minOccurrences: 1,
			expected: []words.Keyword{
				{Word: "cat", Count: 3},
				{Word: "dog", Count: 2},
				{Word: "bird", Count: 1},
			},
		},
		{
			desc:           "success - nothing qualifies",
			text:           "cat dog bird",
			minOccurrences: 5,
			expected:       []words.Keyword{},
		},
		{
			desc:           "success - empty text",
			text:           "",
			minOccurrences: 1,
			expected:       []words.Keyword{},
		},
		{
			desc:           "error - zero threshold",
			text:           "cat cat",
			minOccurrences: 0,
			wantErr:        true,
		},
		{
			desc:           "error - negative threshold",
			text:           "cat cat",
			minOccurrences: -3,
			wantErr:        true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ranked, err := words.Rank(words.Count(tc.text), tc.minOccurrences)
			if tc.wantErr {
				require.ErrorIs(t, err, words.ErrBadThreshold)
				require.Nil(t, ranked)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, ranked)
		})
	}
}

func TestRankMonotonic(t *testing.T) {
	counts := words.Count(`kernel kernel kernel kernel scheduler scheduler scheduler
		memory memory paging interrupt interrupt interrupt interrupt interrupt`)
	for low := 1; low <= 6; low++ {
		for high := low; high <= 6; high++ {
			wide, err := words.Rank(counts, low)
			require.NoError(t, err)
			narrow, err := words.Rank(counts, high)
			require.NoError(t, err)

			tokens := make(map[string]bool, len(wide))
			for _, kw := range wide {
				tokens[kw.Word] = true
			}
			for _, kw := range narrow {
				require.True(t, tokens[kw.Word], "%q in rank(%d) but not in rank(%d)", kw.Word, high, low)
			}
		}
	}
}

func TestRankSubsequenceOfCounts(t *testing.T) {
	counts := words.Count("The cat sat on the mat with another cat and a hat on the mat")
	ranked, err := words.Rank(counts, 1)
	require.NoError(t, err)
	for _, kw := range ranked {
		require.Equal(t, counts.Get(kw.Word), kw.Count)
		require.False(t, words.IsStopWord(kw.Word))
		require.GreaterOrEqual(t, len([]rune(kw.Word)), words.MinTokenLen)
	}
	require.Equal(t, counts.Len(), len(ranked))
}

func TestCommon(t *testing.T) {
	testCases := []struct {
		desc           string
		docs           []string
		minOccurrences int
		minDocuments   int
		expected       []words.Keyword
		wantErr        bool
	}{
		{
			desc:           "success - qualifies in both documents",
			docs:           []string{"fish fish fish", "fish fish"},
			minOccurrences: 2,
			minDocuments:   2,
			expected:       []words.Keyword{{Word: "fish", Count: 5}},
		},
		{
			desc:           "success - fails per document threshold",
			docs:           []string{"fish fish fish", "fish fish"},
			minOccurrences: 3,
			minDocuments:   2,
			expected:       []words.Keyword{},
		},
		{
			desc:           "success - total includes non qualifying documents",
			docs:           []string{"data data data model", "data data model model model", "data"},
			minOccurrences: 2,
			minDocuments:   2,
			expected:       []words.Keyword{{Word: "data", Count: 6}},
		},
		{
			desc:           "success - ties keep union order",
			docs:           []string{"beta alpha beta alpha", "alpha beta alpha beta"},
			minOccurrences: 1,
			minDocuments:   2,
			expected: []words.Keyword{
				{Word: "beta", Count: 4},
				{Word: "alpha", Count: 4},
			},
		},
		{
			desc:           "success - sorted by total",
			docs:           []string{"rust rust golang", "golang golang golang rust zig", "zig zig"},
			minOccurrences: 1,
			minDocuments:   2,
			expected: []words.Keyword{
				{Word: "golang", Count: 4},
				{Word: "rust", Count: 3},
				{Word: "zig", Count: 3},
			},
		},
		{
			desc:           "success - one document has nothing in common",
			docs:           []string{"fish fish fish"},
			minOccurrences: 1,
			minDocuments:   1,
			expected:       []words.Keyword{},
		},
		{
			desc:           "success - no documents",
			docs:           nil,
			minOccurrences: 1,
			minDocuments:   2,
			expected:       []words.Keyword{},
		},
		{
			desc:           "success - min documents above document count",
			docs:           []string{"fish fish", "fish fish"},
			minOccurrences: 1,
			minDocuments:   3,
			expected:       []words.Keyword{},
		},
		{
			desc:           "error - zero min occurrences",
			docs:           []string{"fish", "fish"},
			minOccurrences: 0,
			minDocuments:   2,
			wantErr:        true,
		},
		{
			desc:           "error - zero min documents",
			docs:           []string{"fish", "fish"},
			minOccurrences: 1,
			minDocuments:   0,
			wantErr:        true,
		},
		{
			desc:           "error - negative min documents with one document",
			docs:           []string{"fish"},
			minOccurrences: 1,
			minDocuments:   -1,
			wantErr:        true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			counts := make([]words.TokenCount, len(tc.docs))
			for i, doc := range tc.docs {
				counts[i] = words.Count(doc)
			}
			common, err := words.Common(counts, tc.minOccurrences, tc.minDocuments)
			if tc.wantErr {
				require.ErrorIs(t, err, words.ErrBadThreshold)
				require.Nil(t, common)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, common)
		})
	}
}

func TestCommonExcludesStopWords(t *testing.T) {
	docs := []words.TokenCount{
		words.Count("The video is about the channel and the kernel. Subscribe!"),
		words.Count("THE kernel, the channel, the video: subscribe to it"),
	}
	common, err := words.Common(docs, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []words.Keyword{{Word: "kernel", Count: 2}}, common)
}
