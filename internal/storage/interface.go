package storage

import (
	"context"

	"github.com/mcoot/wordscramble/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Root word corpus operations (order is preserved)
	GetCorpusWords(ctx context.Context) ([]string, error)
	SaveCorpusWords(ctx context.Context, words []string) error
}
