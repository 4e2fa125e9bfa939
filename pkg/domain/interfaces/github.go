package interfaces

import (
	"context"

	"github.com/balaclava-guy/isofetch/pkg/domain/model"
)

// RunQueryService answers read-only questions about workflow runs and
// their artifacts. Fakes implement it with scripted sequences in tests.
type RunQueryService interface {
	GetWorkflowRun(ctx context.Context, repo model.Repository, runID int64) (*model.WorkflowRun, error)
	ListWorkflowRuns(ctx context.Context, repo model.Repository, workflow string, limit int) ([]*model.WorkflowRun, error)
	ListArtifacts(ctx context.Context, repo model.Repository, runID int64) ([]*model.Artifact, error)
}

// ArtifactDownloadService streams an artifact bundle to a local file,
// creating parent directories as needed.
type ArtifactDownloadService interface {
	DownloadArtifact(ctx context.Context, repo model.Repository, artifactID int64, dest string) error
}
