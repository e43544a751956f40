package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordscramble/internal/factory"
)

// scriptedInput replays fixed lines, then reports end of input
type scriptedInput struct {
	lines []string
}

func (s *scriptedInput) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newTestPlayer(t *testing.T) (*player, *factory.TestApp, *bytes.Buffer) {
	t.Helper()
	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestWordLists())

	var buf bytes.Buffer
	return &player{controller: app.GameController, out: &buf}, app, &buf
}

func TestPlayAcceptsAndRejectsWords(t *testing.T) {
	p, app, buf := newTestPlayer(t)
	app.MockRandom.QueueString("LOCAL1")

	in := &scriptedInput{lines: []string{"silk", "", "silk", "zz", "songs"}}
	require.NoError(t, p.run(context.Background(), in, "silksong"))

	out := buf.String()
	assert.Contains(t, out, "SILKSONG")
	assert.Contains(t, out, "   4  silk")
	assert.Contains(t, out, "Your current score is 4")
	assert.Contains(t, out, "Word used already!\n  Be more original!")
	assert.Contains(t, out, "You can't spell that word from silksong!")
	assert.Contains(t, out, "Your current score is 18")
	assert.Contains(t, out, "Final score: 18")

	// Session is discarded on exit
	assert.Equal(t, 0, app.Storage.(interface{ SessionCount() int }).SessionCount())
}

func TestPlayNewRestartsRound(t *testing.T) {
	p, app, buf := newTestPlayer(t)
	app.MockRandom.QueueString("LOCAL1")
	app.MockRandom.QueueIntn(1)

	in := &scriptedInput{lines: []string{"silk", "/new", "thorn", "/quit"}}
	require.NoError(t, p.run(context.Background(), in, "silksong"))

	out := buf.String()
	assert.Contains(t, out, "HORNET")
	assert.Contains(t, out, "   5  thorn")
	assert.Contains(t, out, "Final score: 5")
}

func TestPlayWithoutCorpus(t *testing.T) {
	app := factory.NewTestApp()
	p := &player{controller: app.GameController, out: io.Discard}

	err := p.run(context.Background(), &scriptedInput{}, "")
	assert.Error(t, err)
}

func TestOutputPrintsSession(t *testing.T) {
	var out bytes.Buffer
	o := newOutputTo("text", &out, io.Discard)

	o.Print(Session{
		ID:       "ABC",
		RootWord: "silksong",
		UsedWords: []UsedWord{
			{Word: "songs", Length: 5},
			{Word: "silk", Length: 4},
		},
		Score: 18,
	})

	assert.Equal(t, "Session: ABC\nRoot word: silksong\nWords (2):\n   5  songs\n   4  silk\nYour current score is 18\n", out.String())
}

func TestOutputJSON(t *testing.T) {
	var out bytes.Buffer
	o := newOutputTo("json", &out, io.Discard)
	o.Print(HealthResult{Status: "ok", CorpusSize: 3})

	var decoded HealthResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "ok", decoded.Status)
	assert.Equal(t, 3, decoded.CorpusSize)
}

func TestClientDecodesRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sessions/ABC/words", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"code":"ALREADY_USED","message":"Be more original!","title":"Word used already!","alert":true}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	err := c.Post("/api/v1/sessions/ABC/words", map[string]string{"word": "silk"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ALREADY_USED", apiErr.Code)
	assert.Equal(t, "Word used already!: Be more original!", err.Error())
	require.NotNil(t, apiErr.Alert)
	assert.True(t, *apiErr.Alert)
}

func TestConfigSessionFile(t *testing.T) {
	c := &Config{SessionFile: filepath.Join(t.TempDir(), "nested", "session")}

	_, err := c.ResolveSession("")
	assert.Error(t, err)

	require.NoError(t, c.SaveSession("ABC"))

	loaded := &Config{SessionFile: c.SessionFile}
	require.NoError(t, loaded.LoadSession())
	id, err := loaded.ResolveSession("")
	require.NoError(t, err)
	assert.Equal(t, "ABC", id)

	id, err = loaded.ResolveSession("XYZ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", id)

	require.NoError(t, loaded.ClearSession())
	require.NoError(t, loaded.ClearSession())
	assert.Empty(t, loaded.SessionID)
}
