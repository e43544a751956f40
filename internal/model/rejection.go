package model

import (
	"errors"
	"fmt"
)

// RejectionReason identifies which rule a candidate word failed
type RejectionReason string

const (
	RejectionEmptyInput    RejectionReason = "empty_input"     // Nothing was typed
	RejectionAlreadyUsed   RejectionReason = "already_used"    // Word was accepted earlier
	RejectionNotPossible   RejectionReason = "not_possible"    // Letters not available in the root word
	RejectionNotReal       RejectionReason = "not_real"        // Dictionary does not know the word
	RejectionIsStarterWord RejectionReason = "is_starter_word" // Word is the root word itself
	RejectionTooShort      RejectionReason = "too_short"       // Fewer than three letters
)

// RejectionError is returned when a submitted word is not accepted.
// The session is never modified when this is returned.
type RejectionError struct {
	Reason   RejectionReason
	Word     string
	RootWord string
}

// NewRejection creates a RejectionError for the given candidate
func NewRejection(reason RejectionReason, word, rootWord string) *RejectionError {
	return &RejectionError{
		Reason:   reason,
		Word:     word,
		RootWord: rootWord,
	}
}

// Error implements error interface
func (e *RejectionError) Error() string {
	if e.Reason == RejectionEmptyInput {
		return "no word submitted"
	}
	return fmt.Sprintf("word %q rejected: %s", e.Word, e.Reason)
}

// Alert reports whether the rejection should be shown to the player.
// Empty input is ignored quietly.
func (e *RejectionError) Alert() bool {
	return e.Reason != RejectionEmptyInput
}

// Title returns the short heading shown for this rejection
func (e *RejectionError) Title() string {
	switch e.Reason {
	case RejectionAlreadyUsed:
		return "Word used already!"
	case RejectionNotPossible:
		return "Word not possible"
	case RejectionNotReal:
		return "Word not recognized"
	case RejectionIsStarterWord:
		return "Starter word used"
	case RejectionTooShort:
		return "Word Length Issue"
	default:
		return ""
	}
}

// Message returns the explanation shown for this rejection
func (e *RejectionError) Message() string {
	switch e.Reason {
	case RejectionAlreadyUsed:
		return "Be more original!"
	case RejectionNotPossible:
		return fmt.Sprintf("You can't spell that word from %s!", e.RootWord)
	case RejectionNotReal:
		return "You can't just make them up you know!"
	case RejectionIsStarterWord:
		return "Using the starter word is not allowed!"
	case RejectionTooShort:
		return "The word must be longer than two characters."
	default:
		return ""
	}
}

// AsRejection extracts a RejectionError from err, if there is one
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
