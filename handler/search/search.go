package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mager/cadence/cadence"
	"github.com/mager/cadence/handler"
	"github.com/mager/cadence/recommend"
	"github.com/mager/cadence/spotify"
	"github.com/mager/cadence/validation"
	"go.uber.org/zap"
)

// Recommender ranks Spotify IDs for a query.
type Recommender interface {
	Recommend(q recommend.Query) []string
}

// Enricher resolves Spotify IDs to display records.
type Enricher interface {
	Enrich(ctx context.Context, ids []string) (spotify.Enrichment, error)
}

// SearchHandler recommends songs for a mood and time of day.
type SearchHandler struct {
	log         *zap.SugaredLogger
	recommender Recommender
	enricher    Enricher
}

func (*SearchHandler) Pattern() string {
	return "/search"
}

func (*SearchHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewSearchHandler builds a new SearchHandler.
func NewSearchHandler(log *zap.SugaredLogger, engine *recommend.Engine, spotifyClient *spotify.SpotifyClient) *SearchHandler {
	return &SearchHandler{
		log:         log,
		recommender: engine,
		enricher:    spotifyClient,
	}
}

type SearchRequest struct {
	Mood     string             `json:"mood" validate:"required"`
	Time     string             `json:"time" validate:"required"`
	Settings recommend.Settings `json:"settings"`
}

type SearchResponse struct {
	Results    []cadence.Result     `json:"results"`
	Unresolved []cadence.Unresolved `json:"unresolved,omitempty"`
}

// Search for songs by mood and time of day
// @Summary Recommend songs
// @Description Rank songs matching a mood and time of day, optionally personalized by favorite artists and genres
// @Tags Search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search request"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} handler.ErrorResponse
// @Failure 503 {object} handler.ErrorResponse
// @Router /search [post]
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(req); err != nil {
		handler.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ids := h.recommender.Recommend(recommend.Query{
		Mood:     req.Mood,
		Time:     req.Time,
		Settings: req.Settings,
	})

	resp, err := enrich(r.Context(), h.enricher, ids)
	if err != nil {
		h.log.Errorw("Search failed", "mood", req.Mood, "time", req.Time, "error", err)
		writeEnrichError(w, err)
		return
	}

	h.log.Infow("Search",
		"mood", req.Mood,
		"time", req.Time,
		"results", len(resp.Results),
		"unresolved", len(resp.Unresolved),
	)
	if err := handler.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}

func enrich(ctx context.Context, e Enricher, ids []string) (SearchResponse, error) {
	if len(ids) == 0 {
		return SearchResponse{Results: []cadence.Result{}}, nil
	}
	en, err := e.Enrich(ctx, ids)
	if err != nil {
		return SearchResponse{}, err
	}
	return SearchResponse{Results: en.Results, Unresolved: en.Unresolved}, nil
}

func writeEnrichError(w http.ResponseWriter, err error) {
	if errors.Is(err, spotify.ErrEnrichmentUnavailable) {
		handler.Error(w, http.StatusServiceUnavailable, spotify.ErrEnrichmentUnavailable.Error())
		return
	}
	handler.Error(w, http.StatusInternalServerError, "search failed")
}
