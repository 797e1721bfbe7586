package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"golang.org/x/oauth2/google"
)

// Static errors for err113 compliance.
var (
	ErrKeyFileRequired = errors.New("service account key file path is required")
)

// NewServiceAccountTokenManager creates a token manager from the contents of
// a service account JSON key. Without scopes the realtime-bidding scope is
// requested.
func NewServiceAccountTokenManager(ctx context.Context, keyJSON []byte, scopes ...string) (*SourceTokenManager, error) {
	if len(scopes) == 0 {
		scopes = []string{constants.RealTimeBiddingScope}
	}

	config, err := google.JWTConfigFromJSON(keyJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}

	return NewSourceTokenManager(config.TokenSource(ctx)), nil
}

// NewServiceAccountTokenManagerFromFile reads a service account JSON key from
// path and creates a token manager for it.
func NewServiceAccountTokenManagerFromFile(ctx context.Context, path string, scopes ...string) (*SourceTokenManager, error) {
	if path == "" {
		return nil, ErrKeyFileRequired
	}

	keyJSON, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading service account key file: %w", err)
	}

	return NewServiceAccountTokenManager(ctx, keyJSON, scopes...)
}
