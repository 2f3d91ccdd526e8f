// Package recommend turns a mood and time of day into a ranked list of
// Spotify track IDs drawn from the loaded corpus.
package recommend

import (
	"strings"

	"github.com/mager/cadence/corpus"
	"github.com/mager/cadence/metrics"
	"go.uber.org/zap"
)

// Query is a single recommendation request.
type Query struct {
	Mood     string
	Time     string
	Settings Settings
}

// Engine runs the retrieval, narrowing, ranking and selection stages over a
// shared read-only corpus.
type Engine struct {
	log    *zap.SugaredLogger
	corpus *corpus.Corpus
}

func NewEngine(log *zap.SugaredLogger, c *corpus.Corpus) *Engine {
	return &Engine{log: log, corpus: c}
}

// Recommend returns at most ResultCap distinct Spotify IDs, best match first.
func (e *Engine) Recommend(q Query) []string {
	mood := strings.ToLower(q.Mood)
	time := strings.ToLower(q.Time)
	settings := Settings{
		FavoriteArtists: normalize(q.Settings.FavoriteArtists),
		FavoriteGenres:  normalize(q.Settings.FavoriteGenres),
	}

	retrieved := Retrieve(e.corpus.Index, mood, time)
	candidates, narrowed := narrow(e.corpus.Index, retrieved, settings)
	ranked := Rank(e.corpus.Features, candidates, mood)
	selected := Select(e.corpus.Features, ranked, ResultCap)

	if !narrowed && hasPreferences(settings) {
		metrics.NarrowingFallbacks.Inc()
	}
	metrics.StageCandidates.WithLabelValues("retrieve").Observe(float64(len(retrieved)))
	metrics.StageCandidates.WithLabelValues("narrow").Observe(float64(len(candidates)))
	metrics.StageCandidates.WithLabelValues("select").Observe(float64(len(selected)))

	e.log.Debugw("Recommended songs",
		"mood", mood,
		"time", time,
		"retrieved", len(retrieved),
		"narrowed", narrowed,
		"candidates", len(candidates),
		"selected", len(selected),
	)

	return selected
}

// Lookup returns up to ResultCap distinct Spotify IDs for an exact index term,
// in posting order.
func (e *Engine) Lookup(field, term string) []string {
	ids := e.corpus.Index.Lookup(field, term)
	ranked := make([]Candidate, len(ids))
	for i, id := range ids {
		ranked[i] = Candidate{ID: id}
	}
	return Select(e.corpus.Features, ranked, ResultCap)
}

func hasPreferences(s Settings) bool {
	return len(s.FavoriteArtists) > 0 || len(s.FavoriteGenres) > 0
}

var Options = NewEngine
