package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/balaclava-guy/isofetch/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func RunFetch(ctx context.Context, cmd *cli.Command) error {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	ctx = ctxlog.With(ctx, logger)

	config := &Config{
		Repo:         cmd.String("repo"),
		Workflow:     cmd.String("workflow"),
		ArtifactName: cmd.String("artifact-name"),
		RunID:        cmd.Int64("run-id"),
		SHA:          cmd.String("sha"),
		LastCommit:   cmd.Bool("last-commit"),
		Watch:        cmd.Bool("watch"),
		PollInterval: cmd.Duration("poll-interval"),
		Timeout:      cmd.Duration("timeout"),
		RunListLimit: cmd.Int("run-list-limit"),
		Dest:         cmd.String("dest"),
		WorkDir:      cmd.String("workdir"),
		KeepWorkDir:  cmd.Bool("keep-workdir"),
		SkipVerify:   cmd.Bool("no-verify"),
		Digest:       cmd.String("digest"),
		Pattern:      cmd.String("pattern"),
	}

	shaPrefix := config.SHA
	if config.LastCommit {
		currentDir, err := os.Getwd()
		if err != nil {
			return err
		}
		head, err := usecase.LocalHeadCommit(ctx, currentDir)
		if err != nil {
			return fmt.Errorf("failed to resolve local HEAD commit: %w", err)
		}
		shaPrefix = head
	}

	fetchConfig, err := config.ToFetchConfig(shaPrefix)
	if err != nil {
		return err
	}

	hasher, err := usecase.NewHasher(config.Digest)
	if err != nil {
		return err
	}

	authService := usecase.NewAuthService()
	githubService := usecase.NewGitHubService(authService)
	reporter := NewStageReporter()

	pipeline := usecase.NewPipeline(usecase.PipelineOptions{
		Query:     githubService,
		Download:  githubService,
		Extractor: usecase.NewArchiveExtractor(),
		Hasher:    hasher,
		Clock:     usecase.NewClock(),
		Reporter:  reporter,
		Config:    fetchConfig,
	})

	result, err := pipeline.Execute(ctx)
	if err != nil {
		return err
	}

	reporter.Donef("Done. ISO ready at: %s", result.Delivered)
	return nil
}
