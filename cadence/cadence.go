package cadence

// Result is a recommended track as shown to a listener.
type Result struct {
	TrackName string `json:"track_name"`
	AlbumName string `json:"album_name"`
	// Artists is the track's primary artist.
	Artists string `json:"artists"`
}

// Unresolved is a recommended track whose metadata could not be fetched.
type Unresolved struct {
	SpotifyID string `json:"spotify_id"`
	Reason    string `json:"reason"`
}

// Unresolved reasons.
const (
	ReasonTimeout     = "timeout"
	ReasonNotFound    = "not_found"
	ReasonCircuitOpen = "circuit_open"
	ReasonError       = "error"
)
