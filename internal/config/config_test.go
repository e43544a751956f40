package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "data/start.txt", cfg.CorpusPath)
	assert.Equal(t, "data/words.txt", cfg.Dictionary.Path)
	assert.Equal(t, "en", cfg.Dictionary.Language)
	assert.Equal(t, time.Hour, cfg.Dictionary.CacheTTL)
	assert.Equal(t, 5.0, cfg.Dictionary.RateLimit)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, 24*time.Hour, cfg.Storage.SessionTTL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
port: 9090
corpus_path: /srv/start.txt
dictionary:
  url: http://dictionary.local/entries
  timeout: 2s
storage:
  type: redis
  redis_url: redis://cache:6379
  session_ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/srv/start.txt", cfg.CorpusPath)
	assert.Equal(t, "http://dictionary.local/entries", cfg.Dictionary.URL)
	assert.Equal(t, 2*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, 30*time.Minute, cfg.Storage.SessionTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORDSCRAMBLE_PORT", "7070")
	t.Setenv("WORDSCRAMBLE_STORAGE_TYPE", "redis")
	t.Setenv("WORDSCRAMBLE_STORAGE_REDIS_URL", "redis://env:6379")
	t.Setenv("WORDSCRAMBLE_DICTIONARY_LANGUAGE", "de")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "redis://env:6379", cfg.Storage.RedisURL)
	assert.Equal(t, "de", cfg.Dictionary.Language)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:       8080,
			CorpusPath: "start.txt",
			Dictionary: DictionaryConfig{Path: "words.txt"},
			Storage:    StorageConfig{Type: "memory"},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Storage.Type = "redis"
	assert.ErrorContains(t, cfg.Validate(), "redis_url")

	cfg = valid()
	cfg.Storage.Type = "postgres"
	assert.ErrorContains(t, cfg.Validate(), "invalid storage.type")

	cfg = valid()
	cfg.CorpusPath = ""
	assert.ErrorContains(t, cfg.Validate(), "corpus_path")

	cfg = valid()
	cfg.Dictionary.Path = ""
	assert.ErrorContains(t, cfg.Validate(), "dictionary")

	cfg = valid()
	cfg.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "port")
}
