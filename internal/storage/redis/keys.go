package redis

import (
	"fmt"

	"github.com/mcoot/wordscramble/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordscramble"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// corpusKey returns the Redis key for the ordered root word list
func corpusKey() string {
	return fmt.Sprintf("%s:corpus", keyPrefix)
}
