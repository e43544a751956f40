package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordscramble/internal/dependencies/clock"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/wordsource"
	"github.com/mcoot/wordscramble/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Submission is the outcome of an accepted word
type Submission struct {
	Word    string
	Session *model.Session
}

// Controller manages session lifecycle and word submission
type Controller struct {
	storage   storage.Storage
	source    wordsource.Source
	validator model.CandidateValidator
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	locks *sessionLocks
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	source wordsource.Source,
	validator model.CandidateValidator,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		source:    source,
		validator: validator,
		clock:     clock,
		random:    random,
		logger:    logger,
		locks:     newSessionLocks(),
	}
}

// NewSession starts a session with a root word drawn from the word source
func (c *Controller) NewSession(ctx context.Context) (*model.Session, error) {
	root, err := c.source.PickRoot(ctx)
	if err != nil {
		c.logger.Error("failed to pick root word", slog.String("error", err.Error()))
		return nil, err
	}
	return c.NewSessionWithRoot(ctx, root)
}

// NewSessionWithRoot starts a session with a caller-chosen root word
func (c *Controller) NewSessionWithRoot(ctx context.Context, root string) (*model.Session, error) {
	id := model.SessionID(c.random.String(12, sessionIDAlphabet))

	session, err := model.NewSession(id, root, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("root_word", root),
	)

	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// Submit validates raw input against the session and records it when accepted.
// Rejections are returned as *model.RejectionError with the session unchanged.
func (c *Controller) Submit(ctx context.Context, id model.SessionID, raw string) (*Submission, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	word, err := session.Submit(raw, c.validator, c.clock.Now())
	if err != nil {
		if rej, ok := model.AsRejection(err); ok && rej.Alert() {
			c.logger.Debug("word rejected",
				slog.String("session_id", string(id)),
				slog.String("word", rej.Word),
				slog.String("reason", string(rej.Reason)),
			)
		}
		return nil, err
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("word accepted",
		slog.String("session_id", string(id)),
		slog.String("word", word),
		slog.Int("score", session.Score()),
	)

	return &Submission{Word: word, Session: session}, nil
}

// Restart draws a new root word and clears the session's accepted words
func (c *Controller) Restart(ctx context.Context, id model.SessionID) (*model.Session, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	root, err := c.source.PickRoot(ctx)
	if err != nil {
		c.logger.Error("failed to pick root word",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	previousScore := session.Score()
	if err := session.Restart(root, c.clock.Now()); err != nil {
		return nil, err
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session restarted",
		slog.String("session_id", string(id)),
		slog.String("root_word", root),
		slog.Int("previous_score", previousScore),
	)

	return session, nil
}

// EndSession discards a session
func (c *Controller) EndSession(ctx context.Context, id model.SessionID) error {
	unlock := c.locks.lock(id)
	defer unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return err
	}

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session ended",
		slog.String("session_id", string(id)),
		slog.Int("final_score", session.Score()),
		slog.Int("word_count", len(session.UsedWords)),
	)
	return nil
}
