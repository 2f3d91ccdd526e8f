package corpus

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Index fields.
const (
	FieldMood   = "mood"
	FieldTime   = "time"
	FieldArtist = "artist"
	FieldGenre  = "genre"
	FieldAlbum  = "album"
	FieldTrack  = "track"
)

// Fields lists every field the index carries.
var Fields = []string{FieldMood, FieldTime, FieldArtist, FieldGenre, FieldAlbum, FieldTrack}

// Index is an inverted index from (field, term) to the IDs of the songs
// carrying that term. Posting lists have set semantics.
type Index struct {
	postings map[string]map[string][]int
}

// NewIndex builds an Index, dropping duplicate IDs within each posting list.
func NewIndex(postings map[string]map[string][]int) *Index {
	idx := &Index{postings: make(map[string]map[string][]int, len(postings))}
	for field, terms := range postings {
		out := make(map[string][]int, len(terms))
		for term, ids := range terms {
			out[term] = uniq(ids)
		}
		idx.postings[field] = out
	}
	return idx
}

// Postings returns the posting list for term in field, or nil when either is
// absent. The returned slice is shared and must not be modified.
func (idx *Index) Postings(field, term string) []int {
	return idx.postings[field][term]
}

// Lookup lower-cases term and returns its exact-match posting list.
func (idx *Index) Lookup(field, term string) []int {
	return idx.Postings(field, strings.ToLower(term))
}

// Terms returns the sorted terms of a field.
func (idx *Index) Terms(field string) []string {
	terms := maps.Keys(idx.postings[field])
	sort.Strings(terms)
	return terms
}

// HasField reports whether the index carries field.
func (idx *Index) HasField(field string) bool {
	_, ok := idx.postings[field]
	return ok
}

// validate checks that every posting references a song below n.
func (idx *Index) validate(n int) error {
	for field, terms := range idx.postings {
		for term, ids := range terms {
			for _, id := range ids {
				if id < 0 || id >= n {
					return &IntegrityError{
						Field:  field,
						Term:   term,
						SongID: id,
						Reason: fmt.Sprintf("out of range [0, %d)", n),
					}
				}
			}
		}
	}
	return nil
}

// AlbumKey builds the album field key, which is scoped by artist.
func AlbumKey(album, artist string) string {
	return strings.ToLower(album) + "|" + strings.ToLower(artist)
}

// TrackTokens splits a title into the lower-cased words the track field is
// keyed by.
func TrackTokens(title string) []string {
	return strings.Fields(strings.ToLower(title))
}

func uniq(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
