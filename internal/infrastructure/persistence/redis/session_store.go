// Package redis implements the Redis-backed session store. A session is
// an opaque bearer token mapping to the (team, username) pair that
// authenticated; tokens expire on their own, so logout is just letting
// the TTL run out.
package redis

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Config holds Redis connection configuration.
type Config struct {
	// Host is the Redis server hostname.
	Host string

	// Port is the Redis server port.
	Port int

	// Password is the Redis authentication password (empty if no auth).
	Password string

	// DB is the Redis database number (0-15).
	DB int

	// PoolSize is the maximum number of socket connections.
	PoolSize int

	// MinIdleConns is the minimum number of idle connections.
	MinIdleConns int

	// MaxRetries is the maximum number of retries before giving up.
	MaxRetries int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads.
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes.
	WriteTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         6379,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Addr returns the Redis address in "host:port" format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var (
	// ErrSessionConnection is returned when the Redis connection fails.
	ErrSessionConnection = errors.New("session: connection failed")
)

// PrefixSession namespaces session keys.
const PrefixSession = "session:"

// DefaultSessionTTL is how long a token stays valid without renewal.
const DefaultSessionTTL = 7 * 24 * time.Hour

// tokenBytes of entropy per token; 32 bytes encode to 43 URL-safe chars.
const tokenBytes = 32

// Session is the authenticated identity a token resolves to.
type Session struct {
	TeamID   string    `json:"teamId"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issuedAt"`
}

// SessionStore issues and verifies bearer tokens backed by Redis.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a session store and verifies the connection.
func NewSessionStore(cfg Config) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionConnection, err)
	}

	return &SessionStore{client: client, ttl: DefaultSessionTTL}, nil
}

// NewSessionStoreFromURL creates a session store from a redis:// URL.
func NewSessionStoreFromURL(redisURL string) (*SessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("session: failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionConnection, err)
	}

	return &SessionStore{client: client, ttl: DefaultSessionTTL}, nil
}

// WithTTL overrides the session lifetime.
func (s *SessionStore) WithTTL(ttl time.Duration) *SessionStore {
	s.ttl = ttl
	return s
}

// Issue creates a fresh token for the given identity.
func (s *SessionStore) Issue(ctx context.Context, teamID shared.TeamID, username shared.Username) (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	payload, err := json.Marshal(Session{
		TeamID:   teamID.String(),
		Username: username.String(),
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("session: failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, PrefixSession+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session: failed to store token: %w", err)
	}
	return token, nil
}

// Verify resolves a token to its session. Returns
// shared.ErrSessionNotFound for unknown or expired tokens.
func (s *SessionStore) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, shared.ErrTokenRequired
	}

	payload, err := s.client.Get(ctx, PrefixSession+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shared.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session: failed to load token: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal session: %w", err)
	}

	// Sliding expiry: activity keeps the session alive.
	_ = s.client.Expire(ctx, PrefixSession+token, s.ttl).Err()

	return &sess, nil
}

// Revoke deletes a token. Unknown tokens are not an error.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, PrefixSession+token).Err(); err != nil {
		return fmt.Errorf("session: failed to revoke token: %w", err)
	}
	return nil
}

// Ping checks the Redis connection for the health endpoint.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
