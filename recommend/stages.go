package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/mager/cadence/corpus"
)

// ResultCap is the most songs a single recommendation returns.
const ResultCap = 15

// Settings are a listener's personalization preferences.
type Settings struct {
	FavoriteArtists []string `json:"favoriteArtists"`
	FavoriteGenres  []string `json:"favoriteGenres"`
}

// Candidate is a song with its similarity to the requested mood.
type Candidate struct {
	ID    int
	Score float64
}

// Retrieve returns the songs tagged with both mood and time. An unknown mood
// or time yields no songs.
func Retrieve(idx *corpus.Index, mood, time string) []int {
	moodSongs := idx.Postings(corpus.FieldMood, mood)
	timeSongs := idx.Postings(corpus.FieldTime, time)
	if len(moodSongs) == 0 || len(timeSongs) == 0 {
		return []int{}
	}
	return intersect(moodSongs, toSet(timeSongs))
}

// Narrow restricts candidates to songs by the listener's favorite artists or
// genres. Preferences are dropped when they match nothing, or when the
// narrowed list is too short to fill a response.
func Narrow(idx *corpus.Index, candidates []int, s Settings) []int {
	out, _ := narrow(idx, candidates, s)
	return out
}

// narrow also reports whether the preferences were applied.
func narrow(idx *corpus.Index, candidates []int, s Settings) ([]int, bool) {
	preferred := make(map[int]struct{})
	for _, artist := range s.FavoriteArtists {
		for _, id := range idx.Lookup(corpus.FieldArtist, artist) {
			preferred[id] = struct{}{}
		}
	}
	for _, genre := range s.FavoriteGenres {
		for _, id := range idx.Lookup(corpus.FieldGenre, genre) {
			preferred[id] = struct{}{}
		}
	}
	if len(preferred) == 0 {
		return candidates, false
	}

	narrowed := intersect(candidates, preferred)
	if len(narrowed) >= ResultCap {
		return narrowed, true
	}
	return candidates, false
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0 if
// either has zero magnitude.
func CosineSimilarity(a, b corpus.Vector) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	denom := math.Sqrt(magA) * math.Sqrt(magB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// Rank scores each candidate against the mood's ideal features and sorts
// them best first.
func Rank(fs *corpus.FeatureStore, candidates []int, mood string) []Candidate {
	ideal := MoodVector(mood)

	ranked := make([]Candidate, len(candidates))
	for i, id := range candidates {
		v, _ := fs.Vector(id)
		ranked[i] = Candidate{ID: id, Score: CosineSimilarity(v, ideal)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Select walks ranked in order and returns up to limit distinct Spotify IDs.
func Select(fs *corpus.FeatureStore, ranked []Candidate, limit int) []string {
	ids := make([]string, 0, min(limit, len(ranked)))
	seen := make(map[string]struct{}, limit)

	for _, c := range ranked {
		if len(ids) >= limit {
			break
		}
		id, ok := fs.SpotifyID(c.ID)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func normalize(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// intersect keeps the ids present in set, in their original order.
func intersect(ids []int, set map[int]struct{}) []int {
	out := make([]int, 0, min(len(ids), len(set)))
	for _, id := range ids {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
