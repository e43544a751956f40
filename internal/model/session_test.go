package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acceptAll accepts anything that isn't already used
type acceptAll struct{}

func (acceptAll) Validate(candidate string, view SessionView) error {
	for _, w := range view.UsedWords {
		if w == candidate {
			return NewRejection(RejectionAlreadyUsed, candidate, view.RootWord)
		}
	}
	return nil
}

// mutatingValidator tries to tamper with the view it is given
type mutatingValidator struct{}

func (mutatingValidator) Validate(candidate string, view SessionView) error {
	if len(view.UsedWords) > 0 {
		view.UsedWords[0] = "tampered"
	}
	return NewRejection(RejectionNotReal, candidate, view.RootWord)
}

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, root string) *Session {
	t.Helper()
	s, err := NewSession("session-1", root, testNow)
	require.NoError(t, err)
	return s
}

func expectedScore(words []string) int {
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return total * len(words)
}

func TestNewSessionStartsEmpty(t *testing.T) {
	s := newTestSession(t, "silksong")

	assert.Equal(t, "silksong", s.RootWord)
	assert.Empty(t, s.UsedWords)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, testNow, s.CreatedAt)
}

func TestNewSessionRejectsInvalidRootWord(t *testing.T) {
	for _, root := range []string{"", "Silksong", "silk song", " silk"} {
		_, err := NewSession("id", root, testNow)
		assert.ErrorIs(t, err, ErrInvalidRootWord, "root %q", root)
	}
}

func TestSubmitPrependsNormalizedWord(t *testing.T) {
	s := newTestSession(t, "silksong")
	later := testNow.Add(time.Minute)

	word, err := s.Submit("  SILK \n", acceptAll{}, later)
	require.NoError(t, err)
	assert.Equal(t, "silk", word)

	word, err = s.Submit("song", acceptAll{}, later)
	require.NoError(t, err)
	assert.Equal(t, "song", word)

	assert.Equal(t, []string{"song", "silk"}, s.UsedWords)
	assert.Equal(t, later, s.UpdatedAt)
}

func TestSubmitRejectionLeavesStateUntouched(t *testing.T) {
	s := newTestSession(t, "silksong")
	_, err := s.Submit("silk", acceptAll{}, testNow)
	require.NoError(t, err)

	for range 2 {
		_, err = s.Submit("silk", acceptAll{}, testNow.Add(time.Hour))
		rej, ok := AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, RejectionAlreadyUsed, rej.Reason)
		assert.Equal(t, []string{"silk"}, s.UsedWords)
		assert.Equal(t, 4, s.Score())
		assert.Equal(t, testNow, s.UpdatedAt)
	}
}

func TestValidatorCannotMutateSession(t *testing.T) {
	s := newTestSession(t, "silksong")
	_, err := s.Submit("silk", acceptAll{}, testNow)
	require.NoError(t, err)

	_, err = s.Submit("song", mutatingValidator{}, testNow)
	require.Error(t, err)
	assert.Equal(t, []string{"silk"}, s.UsedWords)
}

func TestScoreLaw(t *testing.T) {
	s := newTestSession(t, "silksong")
	assert.Equal(t, expectedScore(s.UsedWords), s.Score())

	for _, w := range []string{"silk", "song", "sing", "oil", "links"} {
		_, err := s.Submit(w, acceptAll{}, testNow)
		require.NoError(t, err)
		assert.Equal(t, expectedScore(s.UsedWords), s.Score())
	}

	// (4+4+4+3+5) * 5
	assert.Equal(t, 100, s.Score())
}

func TestRestartClearsWords(t *testing.T) {
	s := newTestSession(t, "silksong")
	_, err := s.Submit("silk", acceptAll{}, testNow)
	require.NoError(t, err)

	later := testNow.Add(time.Minute)
	require.NoError(t, s.Restart("cat", later))

	assert.Equal(t, "cat", s.RootWord)
	assert.Empty(t, s.UsedWords)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, later, s.UpdatedAt)
}

func TestRestartRejectsInvalidRootWord(t *testing.T) {
	s := newTestSession(t, "silksong")
	_, err := s.Submit("silk", acceptAll{}, testNow)
	require.NoError(t, err)

	err = s.Restart("", testNow)
	assert.ErrorIs(t, err, ErrInvalidRootWord)
	assert.Equal(t, "silksong", s.RootWord)
	assert.Equal(t, []string{"silk"}, s.UsedWords)
}

func TestCloneIsIndependent(t *testing.T) {
	s := newTestSession(t, "silksong")
	_, err := s.Submit("silk", acceptAll{}, testNow)
	require.NoError(t, err)

	c := s.Clone()
	c.UsedWords[0] = "song"

	assert.Equal(t, []string{"silk"}, s.UsedWords)
	assert.Equal(t, s.ID, c.ID)
}

func TestRejectionPresentation(t *testing.T) {
	rej := NewRejection(RejectionNotPossible, "zz", "silksong")
	assert.True(t, rej.Alert())
	assert.Equal(t, "Word not possible", rej.Title())
	assert.Equal(t, "You can't spell that word from silksong!", rej.Message())

	empty := NewRejection(RejectionEmptyInput, "", "silksong")
	assert.False(t, empty.Alert())
	assert.Empty(t, empty.Title())
}
