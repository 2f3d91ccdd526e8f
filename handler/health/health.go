package health

import (
	"net/http"

	"github.com/mager/cadence/corpus"
	"github.com/mager/cadence/handler"
	"github.com/mager/cadence/spotify"
	"go.uber.org/zap"
)

// HealthHandler reports whether the server is up and its dependencies are set.
type HealthHandler struct {
	log           *zap.SugaredLogger
	spotifyClient *spotify.SpotifyClient
	corpus        *corpus.Corpus
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

func (*HealthHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, spotifyClient *spotify.SpotifyClient, c *corpus.Corpus) *HealthHandler {
	return &HealthHandler{
		log:           log,
		spotifyClient: spotifyClient,
		corpus:        c,
	}
}

type Response struct {
	Server  bool `json:"server"`
	Spotify bool `json:"spotify"`
	Songs   int  `json:"songs"`
}

// Health check
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("health check")

	resp := Response{
		Server:  true,
		Spotify: h.spotifyClient.Configured(),
		Songs:   h.corpus.Features.Len(),
	}

	if err := handler.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}
