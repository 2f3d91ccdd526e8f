package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `default:"8080"`
	LogLevel string `default:"info"`

	// IndexPath and FeaturesPath point at the pre-built corpus artifacts.
	IndexPath    string `default:"data/index.json"`
	FeaturesPath string `default:"data/fstore.json"`

	SpotifyID       string
	SpotifySecret   string
	SpotifyTokenURL string `default:"https://accounts.spotify.com/api/token"`
	SpotifyAPIURL   string `default:"https://api.spotify.com/v1/"`

	FetchTimeout     time.Duration `default:"5s"`
	FetchConcurrency int           `default:"8"`
	CatalogRPS       float64       `default:"20"`
}

func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("cadence", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
