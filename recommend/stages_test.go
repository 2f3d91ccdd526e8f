package recommend

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/mager/cadence/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, vectors []corpus.Vector, ids []string) *corpus.FeatureStore {
	t.Helper()
	fs, err := corpus.NewFeatureStore(vectors, ids)
	require.NoError(t, err)
	return fs
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func TestRetrieve(t *testing.T) {
	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldMood: {"energetic": {0, 1, 2, 3}},
		corpus.FieldTime: {"morning": {3, 1, 7}},
	})

	assert.ElementsMatch(t, []int{1, 3}, Retrieve(idx, "energetic", "morning"))
}

func TestRetrieveUnknownTerms(t *testing.T) {
	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldMood: {"energetic": {0, 1}},
		corpus.FieldTime: {"morning": {0, 1}},
	})

	cases := []struct{ mood, time string }{
		{"sleepy", "morning"},
		{"energetic", "brunch"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.mood, tc.time), func(t *testing.T) {
			got := Retrieve(idx, tc.mood, tc.time)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}

	assert.Empty(t, Retrieve(corpus.NewIndex(nil), "energetic", "morning"))
}

func TestNarrowNoPreferences(t *testing.T) {
	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldArtist: {"abba": {1}},
	})
	candidates := seq(0, 20)

	assert.Equal(t, candidates, Narrow(idx, candidates, Settings{}))
	assert.Equal(t, candidates, Narrow(idx, candidates, Settings{
		FavoriteArtists: []string{"nobody"},
		FavoriteGenres:  []string{"polka"},
	}))
}

// Preferences matching 2 of 20 candidates cannot fill a response.
func TestNarrowFallsBackWhenTooFew(t *testing.T) {
	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldArtist: {"abba": {3}, "queen": {11}},
	})
	candidates := seq(0, 20)

	got := Narrow(idx, candidates, Settings{FavoriteArtists: []string{"abba", "queen"}})
	assert.Equal(t, candidates, got)
}

func TestNarrowApplies(t *testing.T) {
	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldArtist: {"abba": seq(0, 10)},
		corpus.FieldGenre:  {"disco": seq(5, 16), "ska": {99}},
	})
	candidates := seq(0, 30)

	got := Narrow(idx, candidates, Settings{
		FavoriteArtists: []string{"abba"},
		FavoriteGenres:  []string{"disco", "ska"},
	})
	assert.Equal(t, seq(0, 16), got)
}

func TestNarrowNeverShrinksBelowCap(t *testing.T) {
	var evens []int
	for i := 0; i < 100; i += 2 {
		evens = append(evens, i)
	}
	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldGenre: {"rock": evens},
	})
	s := Settings{FavoriteGenres: []string{"rock"}}

	for n := 0; n < 60; n++ {
		candidates := seq(0, n)
		got := Narrow(idx, candidates, s)
		if len(got) < ResultCap {
			assert.Equal(t, candidates, got, "short result must be the unnarrowed set")
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	v := corpus.Vector{0.75, 0.85, 0.80, 0.10, 0.10, 0.00, 0.60, 0.80}

	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity(v, corpus.Vector{}))
	assert.Equal(t, 0.0, CosineSimilarity(corpus.Vector{}, corpus.Vector{}))
	assert.False(t, math.IsNaN(CosineSimilarity(corpus.Vector{}, v)))

	orthogonal := CosineSimilarity(corpus.Vector{1}, corpus.Vector{0, 1})
	assert.Equal(t, 0.0, orthogonal)

	opposite := CosineSimilarity(corpus.Vector{1, 1}, corpus.Vector{-1, -1})
	assert.InDelta(t, -1.0, opposite, 1e-9)
}

func TestMoodVector(t *testing.T) {
	assert.Equal(t, corpus.Vector{0.75, 0.85, 0.80, 0.10, 0.10, 0.00, 0.60, 0.80}, MoodVector("energetic"))
	assert.Equal(t, neutral, MoodVector("bored"))
	assert.Len(t, Moods(), 8)
	assert.Equal(t, "energetic", Moods()[0])
}

// Three energetic morning songs rank by similarity to the energetic profile.
func TestRankEnergeticMorning(t *testing.T) {
	fs := newStore(t, []corpus.Vector{
		{0.30, 0.25, 0.40, 0.05, 0.75, 0.10, 0.15, 0.30}, // melancholic
		{0.75, 0.85, 0.80, 0.10, 0.10, 0.00, 0.60, 0.80}, // energetic
		{0.60, 0.70, 0.70, 0.10, 0.30, 0.10, 0.50, 0.60},
	}, []string{"a", "b", "c"})

	ranked := Rank(fs, []int{0, 1, 2}, "energetic")

	require.Len(t, ranked, 3)
	assert.Equal(t, []int{1, 2, 0}, []int{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.True(t, sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	}))
}

func TestRankIsPermutation(t *testing.T) {
	vectors := make([]corpus.Vector, 50)
	ids := make([]string, 50)
	for i := range vectors {
		for d := range vectors[i] {
			vectors[i][d] = float64((i*7+d*3)%11) / 10
		}
		ids[i] = fmt.Sprintf("sp%d", i)
	}
	fs := newStore(t, vectors, ids)
	candidates := []int{4, 9, 0, 33, 17, 49, 2}

	ranked := Rank(fs, candidates, "party")

	got := make([]int, len(ranked))
	for i, c := range ranked {
		got[i] = c.ID
	}
	assert.ElementsMatch(t, candidates, got)
}

func TestRankEmpty(t *testing.T) {
	fs := newStore(t, nil, nil)
	assert.Empty(t, Rank(fs, nil, "calm"))
	assert.Empty(t, Rank(fs, []int{}, "calm"))
}

func TestSelectDedupsBySpotifyID(t *testing.T) {
	fs := newStore(t, make([]corpus.Vector, 3), []string{"same", "same", "other"})
	ranked := []Candidate{{ID: 1, Score: 0.9}, {ID: 0, Score: 0.8}, {ID: 2, Score: 0.7}}

	assert.Equal(t, []string{"same", "other"}, Select(fs, ranked, ResultCap))
}

func TestSelectCap(t *testing.T) {
	n := 40
	ids := make([]string, n)
	ranked := make([]Candidate, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("sp%d", i%25)
		ranked[i] = Candidate{ID: i}
	}
	fs := newStore(t, make([]corpus.Vector, n), ids)

	got := Select(fs, ranked, ResultCap)

	require.Len(t, got, ResultCap)
	seen := map[string]bool{}
	for i, id := range got {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
		assert.Equal(t, fmt.Sprintf("sp%d", i), id, "rank order preserved")
	}
}

func TestSelectShortList(t *testing.T) {
	fs := newStore(t, make([]corpus.Vector, 2), []string{"a", "b"})
	assert.Equal(t, []string{"b", "a"}, Select(fs, []Candidate{{ID: 1}, {ID: 0}}, ResultCap))
	assert.Empty(t, Select(fs, nil, ResultCap))
}
