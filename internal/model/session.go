package model

import (
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// SessionID uniquely identifies a game session
type SessionID string

// Session is a single game played against one root word
type Session struct {
	ID       SessionID
	RootWord string

	// UsedWords holds accepted words, most recent first
	UsedWords []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionView is the read-only state a candidate is validated against
type SessionView struct {
	RootWord  string
	UsedWords []string
}

// CandidateValidator decides whether a normalized candidate may be accepted.
// It returns nil to accept or a *RejectionError describing the first failed rule.
type CandidateValidator interface {
	Validate(candidate string, view SessionView) error
}

// NewSession creates a session with no accepted words
func NewSession(id SessionID, rootWord string, now time.Time) (*Session, error) {
	if err := ValidateRootWord(rootWord); err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		RootWord:  rootWord,
		UsedWords: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Score is the total letters across accepted words multiplied by the word count
func (s *Session) Score() int {
	letters := 0
	for _, w := range s.UsedWords {
		letters += utf8.RuneCountInString(w)
	}
	return letters * len(s.UsedWords)
}

// View returns a snapshot that the validator cannot use to mutate the session
func (s *Session) View() SessionView {
	return SessionView{
		RootWord:  s.RootWord,
		UsedWords: slices.Clone(s.UsedWords),
	}
}

// Submit normalizes raw input and runs it through the validator.
// On acceptance the word is inserted at the front of UsedWords and returned.
// A rejected candidate leaves the session untouched.
func (s *Session) Submit(raw string, validator CandidateValidator, now time.Time) (string, error) {
	candidate := NormalizeCandidate(raw)
	if err := validator.Validate(candidate, s.View()); err != nil {
		return "", err
	}

	s.UsedWords = slices.Insert(s.UsedWords, 0, candidate)
	s.UpdatedAt = now
	return candidate, nil
}

// Restart switches to a new root word and forgets all accepted words
func (s *Session) Restart(rootWord string, now time.Time) error {
	if err := ValidateRootWord(rootWord); err != nil {
		return err
	}
	s.RootWord = rootWord
	s.UsedWords = []string{}
	s.UpdatedAt = now
	return nil
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	c.UsedWords = slices.Clone(s.UsedWords)
	if c.UsedWords == nil {
		c.UsedWords = []string{}
	}
	return &c
}

// NormalizeCandidate lowercases input and strips surrounding whitespace
func NormalizeCandidate(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateRootWord checks a root word is non-empty, lowercase and free of whitespace
func ValidateRootWord(word string) error {
	if word == "" {
		return ErrInvalidRootWord
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsUpper(r) {
			return ErrInvalidRootWord
		}
	}
	return nil
}
