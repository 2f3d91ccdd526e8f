package recommend

import (
	"fmt"
	"testing"

	"github.com/mager/cadence/corpus"
	"github.com/mager/cadence/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCorpus builds 20 energetic morning songs whose similarity to the
// energetic profile decreases with their ID. Songs 0-9 are by "Abba".
func newTestCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()

	n := 20
	vectors := make([]corpus.Vector, n)
	ids := make([]string, n)
	ideal := MoodVector("energetic")
	for i := 0; i < n; i++ {
		v := ideal
		v[4] += float64(i) * 0.1 // drift acousticness away from the ideal
		vectors[i] = v
		ids[i] = fmt.Sprintf("sp%02d", i)
	}
	ids[5] = ids[4] // two corpus entries for one Spotify track

	fs, err := corpus.NewFeatureStore(vectors, ids)
	require.NoError(t, err)

	idx := corpus.NewIndex(map[string]map[string][]int{
		corpus.FieldMood:   {"energetic": seq(0, n)},
		corpus.FieldTime:   {"morning": seq(0, n)},
		corpus.FieldArtist: {"abba": seq(0, 10)},
		corpus.FieldGenre:  {"disco": seq(10, 20), "funk": seq(5, 20)},
	})

	c, err := corpus.New(idx, fs)
	require.NoError(t, err)
	return c
}

func TestEngineRecommend(t *testing.T) {
	log, recorded := logger.NewTestLogger()
	e := NewEngine(log, newTestCorpus(t))

	got := e.Recommend(Query{Mood: "Energetic", Time: "MORNING"})

	require.Len(t, got, ResultCap)
	assert.Equal(t, "sp00", got[0])
	assert.Equal(t, []string{"sp03", "sp04", "sp06"}, got[3:6], "duplicate Spotify ID emitted once")
	assert.Equal(t, 1, recorded.FilterMessage("Recommended songs").Len())
}

func TestEngineRecommendUnknownMood(t *testing.T) {
	log, _ := logger.NewTestLogger()
	e := NewEngine(log, newTestCorpus(t))

	assert.Empty(t, e.Recommend(Query{Mood: "sleepy", Time: "morning"}))
}

func TestEngineRecommendPreferences(t *testing.T) {
	log, _ := logger.NewTestLogger()
	e := NewEngine(log, newTestCorpus(t))

	// Abba alone covers 10 songs, short of a full response, so it is ignored.
	got := e.Recommend(Query{Mood: "energetic", Time: "morning", Settings: Settings{
		FavoriteArtists: []string{"ABBA"},
	}})
	assert.Equal(t, "sp00", got[0])
	assert.Len(t, got, ResultCap)

	// Abba or disco covers every song.
	got = e.Recommend(Query{Mood: "energetic", Time: "morning", Settings: Settings{
		FavoriteArtists: []string{"Abba"},
		FavoriteGenres:  []string{"Disco"},
	}})
	assert.Len(t, got, ResultCap)

	// Funk covers exactly 15 songs, enough to personalize.
	got = e.Recommend(Query{Mood: "energetic", Time: "morning", Settings: Settings{
		FavoriteGenres: []string{"FUNK"},
	}})
	require.Len(t, got, ResultCap)
	assert.Equal(t, "sp04", got[0], "song 5 shares song 4's Spotify ID")
	assert.NotContains(t, got, "sp00")
}

func TestEngineLookup(t *testing.T) {
	log, _ := logger.NewTestLogger()
	e := NewEngine(log, newTestCorpus(t))

	got := e.Lookup(corpus.FieldArtist, "Abba")
	assert.Equal(t, []string{"sp00", "sp01", "sp02", "sp03", "sp04", "sp06", "sp07", "sp08", "sp09"}, got)
	assert.Empty(t, e.Lookup(corpus.FieldArtist, "ab"))
}
