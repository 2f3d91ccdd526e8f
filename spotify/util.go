package spotify

import (
	"strings"

	spot "github.com/zmb3/spotify/v2"
)

// GetFirstArtist returns the first artist
func GetFirstArtist(artists []spot.SimpleArtist) string {
	if len(artists) == 0 {
		return "Various Artists"
	}

	return artists[0].Name
}

// ExtractID accepts either a bare track ID or a spotify:track:<id> URI.
func ExtractID(s string) spot.ID {
	parts := strings.Split(s, ":")
	if len(parts) == 3 && parts[0] == "spotify" {
		return spot.ID(parts[2])
	}
	return spot.ID(s)
}
