package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// TestWords is a small dictionary covering the words the test root words can make
func TestWords() []string {
	return []string{
		// silksong
		"silk", "silks", "song", "songs", "sing", "sings", "sign", "signs",
		"links", "kilns", "skin", "skins", "sink", "sinks", "soil", "soils",
		"lion", "lions", "loin", "oil", "oils", "log", "logs", "king", "kings",
		"ink", "inks", "kin", "ion", "ions", "sis", "gin", "so", "silksong",
		// hornet
		"hornet", "thorn", "north", "other", "throne", "honer", "tenor", "toner",
		"note", "tone", "hero", "horn", "rent", "tern", "hot", "the", "hen", "ten",
		// cat
		"cat", "act", "at",
	}
}

// TestRootWords is a small corpus of root words
func TestRootWords() []string {
	return []string{"silksong", "hornet", "cat"}
}
