package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/wordscramble/internal/storage"
)

// DefaultLanguage is the language the bundled word list is written in
const DefaultLanguage = "en"

// Oracle answers whether a whole string is a correctly spelled word
type Oracle interface {
	IsValidWord(word, language string) bool
}

// Service provides dictionary lookups from a word list held in memory
type Service struct {
	storage  storage.Storage
	logger   *slog.Logger
	language string

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService for the given language
func New(storage storage.Storage, language string, logger *slog.Logger) *Service {
	if language == "" {
		language = DefaultLanguage
	}
	return &Service{
		storage:  storage,
		logger:   logger,
		language: language,
		words:    make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage so other instances can load without the file
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.String("language", s.language),
		slog.Int("word_count", len(words)),
	)

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		s.words[strings.ToLower(word)] = struct{}{}
	}
	s.loaded = true
	return nil
}

// IsValidWord checks the whole word exists in the dictionary for the language
func (s *Service) IsValidWord(word, language string) bool {
	if word == "" || !strings.EqualFold(language, s.language) {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Language returns the language of the loaded word list
func (s *Service) Language() string {
	return s.language
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
