package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrEmptyToken               = errors.New("token source returned an empty access token")
)

// TokenManager supplies access tokens to the HTTP layer.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager always returns the same token.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a manager for a fixed access token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	store := NewTokenStore()
	store.Set(&Token{AccessToken: token})

	return &StaticTokenManager{store: store}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token == nil || token.AccessToken == "" {
		return "", ErrEmptyToken
	}

	return token.AccessToken, nil
}

// RefreshToken always fails; a static token has no way to renew itself.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken replaces the static token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}

// SourceTokenManager obtains tokens from an oauth2.TokenSource and keeps the
// current one in a TokenStore.
type SourceTokenManager struct {
	source oauth2.TokenSource
	store  *TokenStore
	mutex  sync.Mutex
}

// NewSourceTokenManager creates a manager backed by source.
func NewSourceTokenManager(source oauth2.TokenSource) *SourceTokenManager {
	return &SourceTokenManager{
		source: source,
		store:  NewTokenStore(),
	}
}

// GetToken returns a valid access token, fetching a new one when the stored
// token is missing or about to expire.
func (m *SourceTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken discards the stored token and asks the source for a new one.
func (m *SourceTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.store.Clear()

	token, err := m.source.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}

	if token == nil || token.AccessToken == "" {
		return ErrEmptyToken
	}

	m.store.Set(tokenFromOAuth2(token))

	return nil
}

// SetToken seeds the store, e.g. with a token cached from a previous run.
func (m *SourceTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}
