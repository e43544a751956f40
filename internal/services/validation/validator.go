package validation

import (
	"slices"
	"unicode/utf8"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
)

// MinWordLength is the shortest word a player may submit
const MinWordLength = 3

// Validator runs candidate words through the game rules.
// Rules are checked in a fixed order and the first failure is reported:
// empty, already used, not possible, not real, starter word, too short.
type Validator struct {
	oracle   dictionary.Oracle
	language string
}

// New creates a new Validator that checks words against oracle in language
func New(oracle dictionary.Oracle, language string) *Validator {
	if language == "" {
		language = dictionary.DefaultLanguage
	}
	return &Validator{
		oracle:   oracle,
		language: language,
	}
}

// Validate checks a normalized candidate against the session view.
// Returns nil if the word may be accepted, otherwise a *model.RejectionError.
func (v *Validator) Validate(candidate string, view model.SessionView) error {
	reject := func(reason model.RejectionReason) error {
		return model.NewRejection(reason, candidate, view.RootWord)
	}

	switch {
	case candidate == "":
		return reject(model.RejectionEmptyInput)
	case !IsOriginal(candidate, view.UsedWords):
		return reject(model.RejectionAlreadyUsed)
	case !IsPossible(candidate, view.RootWord):
		return reject(model.RejectionNotPossible)
	case !v.oracle.IsValidWord(candidate, v.language):
		return reject(model.RejectionNotReal)
	case candidate == view.RootWord:
		return reject(model.RejectionIsStarterWord)
	case utf8.RuneCountInString(candidate) < MinWordLength:
		return reject(model.RejectionTooShort)
	}
	return nil
}

// IsOriginal reports whether word has not been accepted before
func IsOriginal(word string, usedWords []string) bool {
	return !slices.Contains(usedWords, word)
}

// IsPossible reports whether word can be spelled from the letters of root.
// Each letter of root may be used at most once.
func IsPossible(word, root string) bool {
	available := []rune(root)
	for _, letter := range word {
		idx := slices.Index(available, letter)
		if idx < 0 {
			return false
		}
		available = slices.Delete(available, idx, idx+1)
	}
	return true
}

var _ model.CandidateValidator = (*Validator)(nil)
