package usecase

import (
	"context"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ArtifactLocator finds the named artifact on a resolved run and
// confirms it has not expired.
type ArtifactLocator struct {
	query  interfaces.RunQueryService
	clock  interfaces.Clock
	config *model.FetchConfig
}

func NewArtifactLocator(query interfaces.RunQueryService, clock interfaces.Clock, config *model.FetchConfig) *ArtifactLocator {
	return &ArtifactLocator{
		query:  query,
		clock:  clock,
		config: config,
	}
}

func (l *ArtifactLocator) Locate(ctx context.Context, runID int64) (*model.Artifact, error) {
	return pollUntil(ctx, l.clock, l.config.Watch, l.config.PollInterval, l.config.Timeout,
		"waiting for artifact availability",
		func(ctx context.Context) (*model.Artifact, error) {
			return l.check(ctx, runID)
		})
}

func (l *ArtifactLocator) check(ctx context.Context, runID int64) (*model.Artifact, error) {
	artifacts, err := l.query.ListArtifacts(ctx, l.config.Repo, runID)
	if err != nil {
		return nil, err
	}

	for _, artifact := range artifacts {
		if artifact.Name != l.config.ArtifactName {
			continue
		}
		if artifact.Expired {
			return nil, domain.ErrArtifactExpired.Wrap(goerr.New(
				"artifact exists but is past retention",
				goerr.V("artifact", artifact.Name),
				goerr.V("run_id", runID),
			))
		}
		return artifact, nil
	}

	return nil, domain.ErrArtifactNotFound.Wrap(goerr.New(
		"artifact not available yet, re-run with --watch to poll",
		goerr.V("artifact", l.config.ArtifactName),
		goerr.V("run_id", runID),
	))
}
