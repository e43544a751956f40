package factory

import (
	"time"

	"github.com/mcoot/wordscramble/internal/dependencies/mocks"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	"github.com/mcoot/wordscramble/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	dictService := dictionary.New(store, dictionary.DefaultLanguage, logger)
	app := newWithDependencies(store, dictService, dictService, dictionary.DefaultLanguage, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordLists loads a small dictionary and root word corpus for testing
func (t *TestApp) LoadTestWordLists() error {
	if err := t.DictionaryService.LoadWords(testutil.TestWords()); err != nil {
		return err
	}
	return t.WordSource.LoadWords(testutil.TestRootWords())
}
