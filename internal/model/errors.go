package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidRootWord = errors.New("root word must be non-empty lowercase without whitespace")

	// Word list errors
	ErrCorpusNotLoaded = errors.New("root word corpus not loaded")
	ErrCorpusEmpty     = errors.New("root word corpus is empty")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// ErrConfiguration marks startup failures the application must resolve
	// before a game can be played
	ErrConfiguration = errors.New("configuration error")
)
