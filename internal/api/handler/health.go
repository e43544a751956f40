package handler

import (
	"net/http"

	"github.com/mcoot/wordscramble/internal/api/response"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/wordsource"
)

// HealthHandler reports whether the word lists are ready
type HealthHandler struct {
	dictionary *dictionary.Service
	wordSource *wordsource.Service
}

// NewHealthHandler creates a new health handler.
// dictionary may be nil when words are checked remotely.
func NewHealthHandler(dictionary *dictionary.Service, wordSource *wordsource.Service) *HealthHandler {
	return &HealthHandler{
		dictionary: dictionary,
		wordSource: wordSource,
	}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, _ *http.Request) {
	resp := response.Health{Status: "ok"}
	if h.wordSource != nil {
		resp.CorpusSize = h.wordSource.WordCount()
		if resp.CorpusSize == 0 {
			resp.Status = "degraded"
		}
	}
	if h.dictionary != nil {
		resp.DictionarySize = h.dictionary.WordCount()
	}

	response.JSON(w, http.StatusOK, resp)
}
