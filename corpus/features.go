package corpus

// Dims is the number of audio features per song.
const Dims = 8

// Vector holds a song's audio features in the order
// danceability, energy, loudness, speechiness, acousticness,
// instrumentalness, valence, tempo.
type Vector [Dims]float64

// FeatureStore maps an internal song ID to its feature vector and
// its Spotify track ID.
type FeatureStore struct {
	vectors    []Vector
	spotifyIDs []string
}

// NewFeatureStore builds a FeatureStore. Both slices are indexed by song ID
// and must have the same length.
func NewFeatureStore(vectors []Vector, spotifyIDs []string) (*FeatureStore, error) {
	if len(vectors) != len(spotifyIDs) {
		return nil, &IntegrityError{Reason: "vectors and spotify_ids differ in length"}
	}
	return &FeatureStore{vectors: vectors, spotifyIDs: spotifyIDs}, nil
}

// Len reports the number of songs.
func (fs *FeatureStore) Len() int {
	return len(fs.vectors)
}

func (fs *FeatureStore) Vector(id int) (Vector, bool) {
	if id < 0 || id >= len(fs.vectors) {
		return Vector{}, false
	}
	return fs.vectors[id], true
}

func (fs *FeatureStore) SpotifyID(id int) (string, bool) {
	if id < 0 || id >= len(fs.spotifyIDs) {
		return "", false
	}
	return fs.spotifyIDs[id], true
}
