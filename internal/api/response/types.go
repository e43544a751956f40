package response

import (
	"time"
	"unicode/utf8"

	"github.com/mcoot/wordscramble/internal/model"
)

// UsedWord is an accepted word with its letter count
type UsedWord struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

// Session represents a session in API responses.
// UsedWords are ordered most recent first.
type Session struct {
	ID        string     `json:"id"`
	RootWord  string     `json:"root_word"`
	UsedWords []UsedWord `json:"used_words"`
	Score     int        `json:"score"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	used := make([]UsedWord, 0, len(s.UsedWords))
	for _, w := range s.UsedWords {
		used = append(used, UsedWord{Word: w, Length: utf8.RuneCountInString(w)})
	}
	return Session{
		ID:        string(s.ID),
		RootWord:  s.RootWord,
		UsedWords: used,
		Score:     s.Score(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SubmitResponse is the response for an accepted word
type SubmitResponse struct {
	Word    string  `json:"word"`
	Session Session `json:"session"`
}

// Health is the response for the health endpoint
type Health struct {
	Status         string `json:"status"`
	DictionarySize int    `json:"dictionary_size,omitempty"`
	CorpusSize     int    `json:"corpus_size"`
}
