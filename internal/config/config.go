package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. WORDSCRAMBLE_PORT
const EnvPrefix = "WORDSCRAMBLE"

// Config holds server configuration
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	// CorpusPath is the newline separated list of root words
	CorpusPath string `mapstructure:"corpus_path"`

	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Storage    StorageConfig    `mapstructure:"storage"`
}

// DictionaryConfig selects how words are checked
type DictionaryConfig struct {
	// Path is a word list file, used when URL is empty
	Path     string `mapstructure:"path"`
	Language string `mapstructure:"language"`

	// URL switches to a remote dictionary service
	URL      string        `mapstructure:"url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// RateLimit caps remote lookups per second; zero disables it
	RateLimit float64 `mapstructure:"rate_limit"`
}

// StorageConfig selects the session store
type StorageConfig struct {
	Type       string        `mapstructure:"type"`
	RedisURL   string        `mapstructure:"redis_url"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("corpus_path", "data/start.txt")
	v.SetDefault("dictionary.path", "data/words.txt")
	v.SetDefault("dictionary.language", "en")
	v.SetDefault("dictionary.url", "")
	v.SetDefault("dictionary.timeout", 5*time.Second)
	v.SetDefault("dictionary.cache_ttl", time.Hour)
	v.SetDefault("dictionary.rate_limit", 5.0)
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.session_ttl", 24*time.Hour)
}

// Load reads configuration from defaults, an optional YAML file and the environment.
// Environment variables use the WORDSCRAMBLE_ prefix with nested keys joined by
// underscores, e.g. WORDSCRAMBLE_STORAGE_REDIS_URL.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "memory":
	case "redis":
		if c.Storage.RedisURL == "" {
			return errors.New("storage.redis_url required when storage.type is redis")
		}
	default:
		return fmt.Errorf("invalid storage.type %q: must be 'memory' or 'redis'", c.Storage.Type)
	}

	if c.CorpusPath == "" {
		return errors.New("corpus_path is required")
	}
	if c.Dictionary.URL == "" && c.Dictionary.Path == "" {
		return errors.New("one of dictionary.path or dictionary.url is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
