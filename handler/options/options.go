package options

import (
	"net/http"

	"github.com/mager/cadence/corpus"
	"github.com/mager/cadence/handler"
	"github.com/mager/cadence/recommend"
	"go.uber.org/zap"
)

// OptionsHandler lists the values a listener can pick from.
type OptionsHandler struct {
	log    *zap.SugaredLogger
	corpus *corpus.Corpus
}

func (*OptionsHandler) Pattern() string {
	return "/options"
}

func (*OptionsHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewOptionsHandler builds a new OptionsHandler.
func NewOptionsHandler(log *zap.SugaredLogger, c *corpus.Corpus) *OptionsHandler {
	return &OptionsHandler{log: log, corpus: c}
}

type OptionsResponse struct {
	Moods   []string `json:"moods"`
	Times   []string `json:"times"`
	Artists []string `json:"artists"`
	Genres  []string `json:"genres"`
}

// List selectable options
// @Summary List options
// @Description List supported moods and times of day, and the artists and genres in the corpus
// @Tags Search
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /options [get]
func (h *OptionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := OptionsResponse{
		Moods:   recommend.Moods(),
		Times:   recommend.Times,
		Artists: h.corpus.Index.Terms(corpus.FieldArtist),
		Genres:  h.corpus.Index.Terms(corpus.FieldGenre),
	}
	if err := handler.JSON(w, http.StatusOK, resp); err != nil {
		h.log.Errorw("Failed to encode response", "error", err)
	}
}
