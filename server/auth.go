package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	bearerPrefix     = "Bearer "
	accessTokenParam = "access_token"
	tokenIssuer      = "aerovlm"
)

var errNoToken = errors.New("server: missing bearer token")

// TokenRequest is the body of POST /api/token.
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// TokenResponse carries a signed HS256 token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Auth issues and checks bearer tokens for a single API client.
type Auth struct {
	key        []byte
	clientID   string
	secretHash []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewAuth returns an Auth signing with key. secretHash is the bcrypt hash of
// the client secret.
func NewAuth(key []byte, clientID, secretHash string, ttl time.Duration) *Auth {
	return &Auth{
		key:        key,
		clientID:   clientID,
		secretHash: []byte(secretHash),
		ttl:        ttl,
		now:        time.Now,
	}
}

// HashSecret returns the bcrypt hash to put in API_SECRET_HASH.
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(b), err
}

// TokenHandler exchanges client credentials for a token.
func (a *Auth) TokenHandler(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	idOK := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(a.clientID)) == 1
	secretErr := bcrypt.CompareHashAndPassword(a.secretHash, []byte(req.ClientSecret))
	if !idOK || secretErr != nil {
		writeJSONError(w, http.StatusUnauthorized, "invalid client credentials")
		return
	}

	tok, err := a.issue(req.ClientID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "token signing failed")
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: tok,
		TokenType:   strings.TrimSpace(bearerPrefix),
		ExpiresIn:   int64(a.ttl / time.Second),
	})
}

func (a *Auth) issue(subject string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

func (a *Auth) validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.key, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired(), jwt.WithTimeFunc(a.now))
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenInvalidClaims
	}

	return nil
}

// Middleware rejects requests without a valid bearer token.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, err := bearerToken(r)
		if err == nil {
			err = a.validate(tok)
		}
		if err != nil {
			w.Header().Set("WWW-Authenticate", strings.TrimSpace(bearerPrefix))
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimPrefix(h, bearerPrefix), nil
	}
	if q := r.URL.Query().Get(accessTokenParam); q != "" {
		return q, nil
	}

	return "", errNoToken
}
