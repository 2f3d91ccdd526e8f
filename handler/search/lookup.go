package search

import (
	"net/http"

	"github.com/mager/cadence/corpus"
	"github.com/mager/cadence/handler"
	"github.com/mager/cadence/recommend"
	"github.com/mager/cadence/spotify"
	"github.com/mager/cadence/validation"
	"go.uber.org/zap"
)

// Looker finds Spotify IDs by exact index term.
type Looker interface {
	Lookup(field, term string) []string
}

// LookupHandler finds songs by artist, genre, album or a word of the title.
type LookupHandler struct {
	log      *zap.SugaredLogger
	looker   Looker
	enricher Enricher
}

func (*LookupHandler) Pattern() string {
	return "/lookup"
}

func (*LookupHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewLookupHandler builds a new LookupHandler.
func NewLookupHandler(log *zap.SugaredLogger, engine *recommend.Engine, spotifyClient *spotify.SpotifyClient) *LookupHandler {
	return &LookupHandler{
		log:      log,
		looker:   engine,
		enricher: spotifyClient,
	}
}

type LookupRequest struct {
	Field  string `validate:"required,oneof=artist genre album track"`
	Term   string `validate:"required_unless=Field album"`
	Album  string `validate:"required_if=Field album"`
	Artist string `validate:"required_if=Field album"`
}

// Look up songs by exact term
// @Summary Look up songs
// @Description Find songs whose artist, genre, album or title word exactly matches a term
// @Tags Search
// @Produce json
// @Param field query string true "artist, genre, album or track"
// @Param term query string false "Term to match (artist, genre, track)"
// @Param album query string false "Album name (album)"
// @Param artist query string false "Album artist (album)"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} handler.ErrorResponse
// @Failure 503 {object} handler.ErrorResponse
// @Router /lookup [get]
func (h *LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := LookupRequest{
		Field:  q.Get("field"),
		Term:   q.Get("term"),
		Album:  q.Get("album"),
		Artist: q.Get("artist"),
	}
	if err := validation.ValidateStruct(req); err != nil {
		handler.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	term := req.Term
	switch req.Field {
	case corpus.FieldAlbum:
		term = corpus.AlbumKey(req.Album, req.Artist)
	case corpus.FieldTrack:
		tokens := corpus.TrackTokens(req.Term)
		if len(tokens) != 1 {
			handler.Error(w, http.StatusBadRequest, "track lookup takes a single word")
			return
		}
		term = tokens[0]
	}

	ids := h.looker.Lookup(req.Field, term)
	resp, err := enrich(r.Context(), h.enricher, ids)
	if err != nil {
		h.log.Errorw("Lookup failed", "field", req.Field, "term", term, "error", err)
		writeEnrichError(w, err)
		return
	}

	h.log.Infow("Lookup", "field", req.Field, "term", term, "results", len(resp.Results))
	if err := handler.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}
