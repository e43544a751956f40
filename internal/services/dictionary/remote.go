package dictionary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// RemoteConfig holds settings for a dictionary lookup service
type RemoteConfig struct {
	// BaseURL is the entries endpoint, e.g. https://api.dictionaryapi.dev/api/v2/entries.
	// Lookups are made against {BaseURL}/{language}/{word}.
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond caps outgoing lookups; zero disables the limit
	RequestsPerSecond float64
	Burst             int
}

// DefaultRemoteConfig returns sensible defaults for a remote dictionary
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		BaseURL:           "https://api.dictionaryapi.dev/api/v2/entries",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 5,
		Burst:             5,
	}
}

// RemoteOracle checks words against an HTTP dictionary service.
// A 200 response means the word exists; anything else, including
// transport failures, is treated as an unknown word.
type RemoteOracle struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewRemoteOracle creates a new RemoteOracle
func NewRemoteOracle(cfg RemoteConfig, logger *slog.Logger) *RemoteOracle {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRemoteConfig().Timeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &RemoteOracle{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		limiter:    limiter,
		logger:     logger,
	}
}

// IsValidWord performs a blocking lookup bounded by the configured timeout.
// Failed lookups answer false.
func (o *RemoteOracle) IsValidWord(word, language string) bool {
	valid, _ := o.Lookup(word, language)
	return valid
}

// Lookup is IsValidWord with failures reported. A nil error means the
// answer came from the dictionary and is safe to remember.
func (o *RemoteOracle) Lookup(word, language string) (bool, error) {
	if word == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	valid, err := o.lookup(ctx, word, language)
	if err != nil {
		o.logger.Warn("dictionary lookup failed",
			slog.String("word", word),
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
		return false, err
	}
	return valid, nil
}

func (o *RemoteOracle) lookup(ctx context.Context, word, language string) (bool, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return false, fmt.Errorf("rate limited: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s/%s/%s", o.baseURL, url.PathEscape(language), url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

var (
	_ Oracle       = (*RemoteOracle)(nil)
	_ LookupOracle = (*RemoteOracle)(nil)
)
