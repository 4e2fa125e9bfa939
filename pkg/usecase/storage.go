package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/balaclava-guy/isofetch/pkg/domain"
)

// TokenStorage caches the GitHub token under the user config directory,
// so runs that had to fall back to the gh CLI do not spawn it again.
type TokenStorage struct {
	configDir string
}

func NewTokenStorage() *TokenStorage {
	homeDir, _ := os.UserHomeDir()
	return &TokenStorage{
		configDir: filepath.Join(homeDir, ".config", "isofetch"),
	}
}

type storedToken struct {
	AccessToken string `json:"access_token"`
}

func (s *TokenStorage) tokenPath() string {
	return filepath.Join(s.configDir, "token.json")
}

// GetToken returns the cached token, or "" when none is stored yet.
func (s *TokenStorage) GetToken(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.tokenPath()) // #nosec G304 - path is under the fixed config directory
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", domain.ErrConfiguration.Wrap(err)
	}

	var token storedToken
	if err := json.Unmarshal(data, &token); err != nil {
		return "", domain.ErrConfiguration.Wrap(err)
	}

	return token.AccessToken, nil
}

// SaveToken caches the token with owner-only permissions.
func (s *TokenStorage) SaveToken(ctx context.Context, token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	data, err := json.Marshal(storedToken{AccessToken: token})
	if err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	if err := os.WriteFile(s.tokenPath(), data, 0600); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	return nil
}
