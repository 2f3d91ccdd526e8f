package spotify

import (
	"context"
	"net/http"
	"time"

	"github.com/mager/cadence/config"
	gobreaker "github.com/sony/gobreaker/v2"
	spot "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// SpotifyClient fetches track metadata using an app-level client credentials
// token. The token is shared by all requests and refreshed when it expires.
type SpotifyClient struct {
	Client *spot.Client
	ID     string
	Secret string

	log         *zap.SugaredLogger
	tokens      oauth2.TokenSource
	breaker     *gobreaker.CircuitBreaker[*spot.FullTrack]
	limiter     *rate.Limiter
	timeout     time.Duration
	concurrency int
}

func ProvideSpotify(cfg config.Config, log *zap.SugaredLogger) *SpotifyClient {
	log.Infow("setting up spotify client", "token_url", cfg.SpotifyTokenURL, "api_url", cfg.SpotifyAPIURL)

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})

	creds := &clientcredentials.Config{
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		TokenURL:     cfg.SpotifyTokenURL,
	}
	tokens := creds.TokenSource(ctx)
	httpClient := oauth2.NewClient(ctx, tokens)

	opts := []spot.ClientOption{spot.WithRetry(true)}
	if cfg.SpotifyAPIURL != "" {
		opts = append(opts, spot.WithBaseURL(cfg.SpotifyAPIURL))
	}

	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	limit := rate.Inf
	if cfg.CatalogRPS > 0 {
		limit = rate.Limit(cfg.CatalogRPS)
	}

	return &SpotifyClient{
		Client:      spot.New(httpClient, opts...),
		ID:          cfg.SpotifyID,
		Secret:      cfg.SpotifySecret,
		log:         log,
		tokens:      tokens,
		breaker:     newBreaker(log),
		limiter:     rate.NewLimiter(limit, concurrency),
		timeout:     timeout,
		concurrency: concurrency,
	}
}

// Configured reports whether client credentials were supplied.
func (c *SpotifyClient) Configured() bool {
	return c.ID != "" && c.Secret != ""
}

var Options = ProvideSpotify
