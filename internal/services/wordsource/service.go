package wordsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage"
)

// Source supplies root words for new sessions
type Source interface {
	PickRoot(ctx context.Context) (string, error)
}

// ConfigurationError reports that the root word corpus cannot be used.
// It is a startup problem, not a game rule failure.
type ConfigurationError struct {
	Source string
	Err    error
}

// Error implements error interface
func (e *ConfigurationError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("root word corpus unavailable: %v", e.Err)
	}
	return fmt.Sprintf("root word corpus %s unavailable: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets callers match any configuration error with model.ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == model.ErrConfiguration
}

// Service picks random root words from a fixed corpus
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu    sync.RWMutex
	words []string
}

// New creates a new word source
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// LoadFromFile loads the corpus from a newline separated file
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigurationError{Source: path, Err: err}
	}

	words, err := s.setWords(strings.Split(string(data), "\n"))
	if err != nil {
		return &ConfigurationError{Source: path, Err: err}
	}

	if err := s.storage.SaveCorpusWords(ctx, words); err != nil {
		return err
	}

	s.logger.Info("root word corpus loaded",
		slog.String("path", path),
		slog.Int("word_count", len(words)),
	)
	return nil
}

// LoadFromStorage loads a corpus previously saved by another instance
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetCorpusWords(ctx)
	if err != nil {
		if errors.Is(err, model.ErrCorpusNotLoaded) {
			return &ConfigurationError{Source: "storage", Err: err}
		}
		return err
	}
	if _, err := s.setWords(words); err != nil {
		return &ConfigurationError{Source: "storage", Err: err}
	}
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	if _, err := s.setWords(words); err != nil {
		return &ConfigurationError{Err: err}
	}
	return nil
}

// setWords normalizes entries, dropping blanks and anything that isn't a usable root word
func (s *Service) setWords(entries []string) ([]string, error) {
	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		word := strings.ToLower(strings.TrimSpace(entry))
		if model.ValidateRootWord(word) != nil {
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, model.ErrCorpusEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	return words, nil
}

// PickRoot returns a uniformly random word from the corpus
func (s *Service) PickRoot(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.words) == 0 {
		return "", &ConfigurationError{Err: model.ErrCorpusNotLoaded}
	}
	return s.words[s.random.Intn(len(s.words))], nil
}

// WordCount returns the number of words in the corpus
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

var _ Source = (*Service)(nil)
