// Package corpus loads the pre-built song index and feature store. Both are
// read-only once loaded and safe to share between goroutines.
package corpus

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/mager/cadence/config"
	"go.uber.org/zap"
)

// Corpus bundles the inverted index with the feature store it points into.
type Corpus struct {
	Index    *Index
	Features *FeatureStore
}

type featuresFile struct {
	Vectors    [][]float64 `json:"vectors"`
	SpotifyIDs []string    `json:"spotify_ids"`
}

// New validates that idx only references songs present in fs.
func New(idx *Index, fs *FeatureStore) (*Corpus, error) {
	if err := idx.validate(fs.Len()); err != nil {
		return nil, err
	}
	return &Corpus{Index: idx, Features: fs}, nil
}

// Load reads the index and feature store artifacts from disk.
func Load(indexPath, featuresPath string) (*Corpus, error) {
	idx, err := loadIndex(indexPath)
	if err != nil {
		return nil, err
	}
	fs, err := loadFeatures(featuresPath)
	if err != nil {
		return nil, err
	}
	return New(idx, fs)
}

func loadIndex(path string) (*Index, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	var postings map[string]map[string][]int
	if err := json.Unmarshal(b, &postings); err != nil {
		return nil, fmt.Errorf("decode index %s: %w", path, err)
	}
	return NewIndex(postings), nil
}

func loadFeatures(path string) (*FeatureStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feature store: %w", err)
	}
	var ff featuresFile
	if err := json.Unmarshal(b, &ff); err != nil {
		return nil, fmt.Errorf("decode feature store %s: %w", path, err)
	}

	vectors := make([]Vector, len(ff.Vectors))
	for id, raw := range ff.Vectors {
		if len(raw) != Dims {
			return nil, &IntegrityError{Reason: fmt.Sprintf("song %d has %d features, want %d", id, len(raw), Dims)}
		}
		copy(vectors[id][:], raw)
	}
	return NewFeatureStore(vectors, ff.SpotifyIDs)
}

// ProvideCorpus loads the corpus named in the config. Any failure aborts startup.
func ProvideCorpus(cfg config.Config, log *zap.SugaredLogger) (*Corpus, error) {
	c, err := Load(cfg.IndexPath, cfg.FeaturesPath)
	if err != nil {
		log.Errorw("Failed to load corpus", "index", cfg.IndexPath, "features", cfg.FeaturesPath, "error", err)
		return nil, err
	}
	log.Infow("Loaded corpus", "songs", c.Features.Len(), "moods", len(c.Index.Terms(FieldMood)))
	return c, nil
}

var Options = ProvideCorpus
