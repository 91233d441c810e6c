package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadService.
const (
	EnvAddr        = "AEROVLM_ADDR"
	EnvDatabaseURL = "DATABASE_URL"
	EnvTokenKey    = "TOKEN_KEY"
	EnvClientID    = "API_CLIENT_ID"
	EnvSecretHash  = "API_SECRET_HASH"
	EnvRateLimit   = "RATE_LIMIT"
	EnvRateBurst   = "RATE_BURST"
)

// Service defaults.
const (
	DefaultAddr      = ":8080"
	DefaultRateLimit = 5.0 // requests per second per client IP
	DefaultRateBurst = 10
)

// Service is the HTTP server configuration. An empty DatabaseURL selects the
// in-memory store.
type Service struct {
	Addr        string
	DatabaseURL string
	TokenKey    string
	ClientID    string
	SecretHash  string // bcrypt hash of the client secret
	RateLimit   float64
	RateBurst   int
}

// LoadService loads the given .env files (default ".env"; missing files are
// ignored) and reads the service settings from the environment.
//
// Errors: ErrMissingKey when TOKEN_KEY, API_CLIENT_ID or API_SECRET_HASH is
// empty, ErrBadValue for unparsable rate settings.
func LoadService(envFiles ...string) (*Service, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	s := &Service{
		Addr:        getenv(EnvAddr, DefaultAddr),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		TokenKey:    os.Getenv(EnvTokenKey),
		ClientID:    os.Getenv(EnvClientID),
		SecretHash:  os.Getenv(EnvSecretHash),
		RateLimit:   DefaultRateLimit,
		RateBurst:   DefaultRateBurst,
	}
	for _, req := range []struct{ name, val string }{
		{EnvTokenKey, s.TokenKey},
		{EnvClientID, s.ClientID},
		{EnvSecretHash, s.SecretHash},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("config: %s: %w", req.name, ErrMissingKey)
		}
	}

	var err error
	if v := os.Getenv(EnvRateLimit); v != "" {
		if s.RateLimit, err = strconv.ParseFloat(v, 64); err != nil || s.RateLimit <= 0 {
			return nil, fmt.Errorf("config: %s=%q: %w", EnvRateLimit, v, ErrBadValue)
		}
	}
	if v := os.Getenv(EnvRateBurst); v != "" {
		if s.RateBurst, err = strconv.Atoi(v); err != nil || s.RateBurst <= 0 {
			return nil, fmt.Errorf("config: %s=%q: %w", EnvRateBurst, v, ErrBadValue)
		}
	}

	return s, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
