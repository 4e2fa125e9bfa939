package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/balaclava-guy/isofetch/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func locatorConfig(watch bool) *model.FetchConfig {
	return &model.FetchConfig{
		Repo:         model.Repository{Owner: "balaclava-guy", Name: "hyper-recovery"},
		ArtifactName: "live-iso",
		Watch:        watch,
		PollInterval: 20 * time.Second,
		Timeout:      time.Hour,
	}
}

func TestLocateArtifactFound(t *testing.T) {
	query := &fakeQueryService{
		artifactSeq: [][]*model.Artifact{{
			{ID: 1, Name: "boot-logs", SizeInBytes: 1024},
			{ID: 2, Name: "live-iso", SizeInBytes: 900000000},
		}},
	}

	locator := usecase.NewArtifactLocator(query, newFakeClock(), locatorConfig(false))
	artifact, err := locator.Locate(context.Background(), 12345)

	gt.NoError(t, err)
	gt.Equal(t, artifact.ID, int64(2))
	gt.Equal(t, artifact.SizeInBytes, int64(900000000))
}

func TestLocateArtifactExpired(t *testing.T) {
	query := &fakeQueryService{
		artifactSeq: [][]*model.Artifact{{
			{ID: 2, Name: "live-iso", Expired: true},
		}},
	}
	clock := newFakeClock()

	locator := usecase.NewArtifactLocator(query, clock, locatorConfig(true))
	_, err := locator.Locate(context.Background(), 12345)

	gt.Error(t, err)
	gt.True(t, domain.ErrArtifactExpired.Is(err))
	// Expiry is terminal: no polling even with watch enabled.
	gt.Equal(t, query.artifactCalls, 1)
	gt.Equal(t, len(clock.sleeps), 0)
}

func TestLocateArtifactMissingWithoutWatch(t *testing.T) {
	query := &fakeQueryService{
		artifactSeq: [][]*model.Artifact{{}},
	}

	locator := usecase.NewArtifactLocator(query, newFakeClock(), locatorConfig(false))
	_, err := locator.Locate(context.Background(), 12345)

	gt.Error(t, err)
	gt.True(t, domain.ErrArtifactNotFound.Is(err))
}

func TestLocateArtifactAppearsAfterPolling(t *testing.T) {
	query := &fakeQueryService{
		artifactSeq: [][]*model.Artifact{
			{},
			{},
			{{ID: 2, Name: "live-iso"}},
		},
	}
	clock := newFakeClock()

	locator := usecase.NewArtifactLocator(query, clock, locatorConfig(true))
	artifact, err := locator.Locate(context.Background(), 12345)

	gt.NoError(t, err)
	gt.Equal(t, artifact.ID, int64(2))
	gt.Equal(t, query.artifactCalls, 3)
	gt.Equal(t, len(clock.sleeps), 2)
}

func TestLocateArtifactTimeout(t *testing.T) {
	query := &fakeQueryService{
		artifactSeq: [][]*model.Artifact{{}},
	}
	clock := newFakeClock()

	config := locatorConfig(true)
	config.Timeout = time.Minute

	locator := usecase.NewArtifactLocator(query, clock, config)
	_, err := locator.Locate(context.Background(), 12345)

	gt.Error(t, err)
	gt.True(t, domain.ErrTimeout.Is(err))
}
