package recommend

import "github.com/mager/cadence/corpus"

type moodProfile struct {
	name   string
	vector corpus.Vector
}

// moods holds the ideal feature profile of each supported mood, in the order
// they are offered to listeners.
var moods = []moodProfile{
	{"energetic", corpus.Vector{0.75, 0.85, 0.80, 0.10, 0.10, 0.00, 0.60, 0.80}},
	{"melancholic", corpus.Vector{0.30, 0.25, 0.40, 0.05, 0.75, 0.10, 0.15, 0.30}},
	{"calm", corpus.Vector{0.35, 0.20, 0.30, 0.05, 0.80, 0.20, 0.40, 0.25}},
	{"intense", corpus.Vector{0.40, 0.90, 0.90, 0.15, 0.10, 0.05, 0.20, 0.75}},
	{"happy", corpus.Vector{0.70, 0.70, 0.65, 0.10, 0.20, 0.00, 0.90, 0.65}},
	{"focused", corpus.Vector{0.40, 0.50, 0.50, 0.05, 0.40, 0.80, 0.40, 0.50}},
	{"party", corpus.Vector{0.85, 0.80, 0.75, 0.10, 0.10, 0.00, 0.75, 0.70}},
	{"romantic", corpus.Vector{0.45, 0.30, 0.40, 0.05, 0.70, 0.05, 0.50, 0.35}},
}

var neutral = corpus.Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

var moodVectors = func() map[string]corpus.Vector {
	m := make(map[string]corpus.Vector, len(moods))
	for _, p := range moods {
		m[p.name] = p.vector
	}
	return m
}()

// Times lists the selectable times of day.
var Times = []string{"morning", "afternoon", "evening", "night"}

// MoodVector returns the ideal features for mood, or a neutral profile for an
// unknown mood. mood must already be lower-cased.
func MoodVector(mood string) corpus.Vector {
	if v, ok := moodVectors[mood]; ok {
		return v
	}
	return neutral
}

// Moods returns the supported mood names.
func Moods() []string {
	names := make([]string, len(moods))
	for i, p := range moods {
		names[i] = p.name
	}
	return names
}
