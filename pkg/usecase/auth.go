package usecase

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// AuthService resolves a GitHub token non-interactively: environment
// variable first, then the stored token file, then the gh CLI. A batch
// fetch tool running on build machines cannot service a browser flow.
type AuthService struct {
	storage *TokenStorage
}

func NewAuthService() interfaces.AuthService {
	return &AuthService{
		storage: NewTokenStorage(),
	}
}

func (s *AuthService) GetToken(ctx context.Context) (string, error) {
	logger := ctxlog.From(ctx)

	for _, env := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(env); token != "" {
			logger.Debug("using token from environment", slog.String("var", env))
			return token, nil
		}
	}

	token, err := s.storage.GetToken(ctx)
	if err != nil {
		return "", err
	}
	if token != "" {
		logger.Debug("using stored token")
		return token, nil
	}

	// Last resort: ask the gh CLI, which the original workflow already
	// required for authentication. Cache the result so subsequent runs
	// skip the subprocess.
	output, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err == nil {
		if token := strings.TrimSpace(string(output)); token != "" {
			logger.Debug("using token from gh CLI")
			if saveErr := s.storage.SaveToken(ctx, token); saveErr != nil {
				logger.Warn("failed to cache token", slog.String("error", saveErr.Error()))
			}
			return token, nil
		}
	}

	return "", nil
}

func (s *AuthService) GetAuthenticatedClient(ctx context.Context) (*github.Client, error) {
	token, err := s.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	if token == "" {
		return nil, domain.ErrAuthentication.Wrap(goerr.New(
			"no GitHub token available: set GITHUB_TOKEN or run 'gh auth login'"))
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc), nil
}
