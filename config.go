package northlight

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/northlight/northlight-go/internal/logging"
)

const (
	// SDKVersion is the wire version reported by this SDK
	SDKVersion = "1.0.0"

	// DefaultBaseURL is the hosted Northlight API endpoint
	DefaultBaseURL = "https://northlight.app/api/v1"

	// endpointSuffix is the path suffix every base URL must end with
	endpointSuffix = "/api/v1"
)

// Config holds the project identity for a Northlight client: the API key,
// an optional custom endpoint, and optional user attribution. One instance
// is expected to live for the process lifetime, created at the application's
// composition root and shared by every client that talks to the same project.
//
// All methods are safe for concurrent use. No invariant spans multiple
// fields, so a single RWMutex over simple reads and writes suffices.
type Config struct {
	mu             sync.RWMutex
	apiKey         string
	baseURL        string
	userEmail      string
	userIdentifier string
}

// NewConfig creates an unconfigured Config. Network operations fail with an
// invalid-API-key error until Configure is called with a non-empty key.
func NewConfig() *Config {
	return &Config{}
}

// Configure stores the API key and optional custom base URL. An empty API key
// logs a warning and leaves the Config untouched rather than failing; this
// mirrors the permissive initialization the hosted SDKs have always had.
// Calling Configure again rotates the credentials.
func (c *Config) Configure(apiKey string, baseURL string) {
	if apiKey == "" {
		logging.Warn("empty API key provided, ignoring Configure call")
		return
	}

	c.mu.Lock()
	c.apiKey = apiKey
	c.baseURL = baseURL
	c.mu.Unlock()

	prefix := apiKey
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	if baseURL != "" {
		logging.Info("SDK configured",
			zap.String("api_key_prefix", prefix),
			zap.String("base_url", baseURL),
		)
	} else {
		logging.Info("SDK configured", zap.String("api_key_prefix", prefix))
	}
}

// IsConfigured reports whether an API key has been set
func (c *Config) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey != ""
}

// APIKey returns the configured API key, or an invalid-API-key error when
// Configure was never called with a non-empty key.
func (c *Config) APIKey() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.apiKey == "" {
		return "", NewInvalidAPIKeyError()
	}
	return c.apiKey, nil
}

// SetUserEmail sets the email attached to subsequent submissions.
// An empty string clears it.
func (c *Config) SetUserEmail(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userEmail = email
}

// UserEmail returns the configured user email, or "" when unset
func (c *Config) UserEmail() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userEmail
}

// SetUserIdentifier sets the device-scoped identifier sent with votes.
// An empty string clears it.
func (c *Config) SetUserIdentifier(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userIdentifier = id
}

// UserIdentifier returns the configured user identifier, or "" when unset
func (c *Config) UserIdentifier() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userIdentifier
}

// EnsureUserIdentifier returns the configured user identifier, generating and
// storing a fresh random one when none is set. Callers that want the
// identifier to survive process restarts should persist it themselves or let
// the vote ledger do so.
func (c *Config) EnsureUserIdentifier() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userIdentifier == "" {
		c.userIdentifier = uuid.NewString()
	}
	return c.userIdentifier
}

// Endpoint returns the base URL all request paths are appended to: the custom
// base URL normalized to end in /api/v1, or DefaultBaseURL when none was set.
func (c *Config) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.baseURL == "" {
		return DefaultBaseURL
	}
	return normalizeBaseURL(c.baseURL)
}

// normalizeBaseURL guarantees the /api/v1 suffix on a custom base URL.
// Normalization is idempotent: an already-normalized value is returned
// unchanged.
func normalizeBaseURL(raw string) string {
	switch {
	case strings.HasSuffix(raw, endpointSuffix):
		return raw
	case strings.HasSuffix(raw, "/"):
		return raw + strings.TrimPrefix(endpointSuffix, "/")
	default:
		return raw + endpointSuffix
	}
}
