package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter writing to stdout and stderr
func NewOutput(format string) *Output {
	return newOutputTo(format, os.Stdout, os.Stderr)
}

func newOutputTo(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// UsedWord response type
type UsedWord struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

// Session response type (matches API)
type Session struct {
	ID        string     `json:"id"`
	RootWord  string     `json:"root_word"`
	UsedWords []UsedWord `json:"used_words"`
	Score     int        `json:"score"`
}

// SubmitResult response type
type SubmitResult struct {
	Word    string  `json:"word"`
	Session Session `json:"session"`
}

// HealthResult response type
type HealthResult struct {
	Status         string `json:"status"`
	DictionarySize int    `json:"dictionary_size,omitempty"`
	CorpusSize     int    `json:"corpus_size"`
}

func (o *Output) printSession(s Session) {
	if s.ID != "" {
		_, _ = fmt.Fprintf(o.out, "Session: %s\n", s.ID)
	}
	_, _ = fmt.Fprintf(o.out, "Root word: %s\n", s.RootWord)
	o.printWords(s.UsedWords)
	o.printScore(s.Score)
}

func (o *Output) printWords(words []UsedWord) {
	if len(words) == 0 {
		return
	}
	_, _ = fmt.Fprintf(o.out, "Words (%d):\n", len(words))
	for _, w := range words {
		_, _ = fmt.Fprintf(o.out, "  %2d  %s\n", w.Length, w.Word)
	}
}

func (o *Output) printScore(score int) {
	_, _ = fmt.Fprintf(o.out, "Your current score is %d\n", score)
}

func (o *Output) printSubmitResult(r SubmitResult) {
	_, _ = fmt.Fprintf(o.out, "Accepted: %s\n", r.Word)
	o.printWords(r.Session.UsedWords)
	o.printScore(r.Session.Score)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Status: %s\n", h.Status)
	_, _ = fmt.Fprintf(o.out, "Root words: %d\n", h.CorpusSize)
	if h.DictionarySize > 0 {
		_, _ = fmt.Fprintf(o.out, "Dictionary words: %d\n", h.DictionarySize)
	}
}
