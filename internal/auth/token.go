package auth

import (
	"sync"
	"time"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"golang.org/x/oauth2"
)

// Token is an OAuth2 access token as held by the token managers.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	ExpiresAt    time.Time `json:"-"`
}

// Valid reports whether the token can be used. Tokens that expire within
// TokenExpirationBuffer are already treated as expired.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// tokenFromOAuth2 converts an oauth2.Token.
func tokenFromOAuth2(token *oauth2.Token) *Token {
	if token == nil {
		return nil
	}

	return &Token{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
}

// TokenStore holds the current token and is safe for concurrent use.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token, or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.Set(nil)
}
