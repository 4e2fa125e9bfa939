package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const downloadMaxRedirects = 4

// GitHubService implements both the run-query and artifact-download
// sides of the GitHub Actions API.
type GitHubService struct {
	authService interfaces.AuthService
	httpClient  *http.Client
}

func NewGitHubService(authService interfaces.AuthService) *GitHubService {
	return &GitHubService{
		authService: authService,
		httpClient:  http.DefaultClient,
	}
}

func (s *GitHubService) GetWorkflowRun(ctx context.Context, repo model.Repository, runID int64) (*model.WorkflowRun, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	run, _, err := client.Actions.GetWorkflowRunByID(ctx, repo.Owner, repo.Name, runID)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	return convertRun(run), nil
}

func (s *GitHubService) ListWorkflowRuns(ctx context.Context, repo model.Repository, workflow string, limit int) ([]*model.WorkflowRun, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	opts := &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	}

	runs, _, err := client.Actions.ListWorkflowRunsByFileName(ctx, repo.Owner, repo.Name, workflow, opts)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	workflowRuns := make([]*model.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		workflowRuns = append(workflowRuns, convertRun(run))
	}

	ctxlog.From(ctx).Debug("fetched workflow runs",
		slog.String("repo", repo.FullName()),
		slog.String("workflow", workflow),
		slog.Int("count", len(workflowRuns)),
	)

	return workflowRuns, nil
}

func (s *GitHubService) ListArtifacts(ctx context.Context, repo model.Repository, runID int64) ([]*model.Artifact, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	opts := &github.ListOptions{
		PerPage: 100,
	}

	list, _, err := client.Actions.ListWorkflowRunArtifacts(ctx, repo.Owner, repo.Name, runID, opts)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	artifacts := make([]*model.Artifact, 0, len(list.Artifacts))
	for _, a := range list.Artifacts {
		artifacts = append(artifacts, &model.Artifact{
			ID:          a.GetID(),
			Name:        a.GetName(),
			SizeInBytes: a.GetSizeInBytes(),
			Expired:     a.GetExpired(),
		})
	}

	return artifacts, nil
}

// DownloadArtifact streams the artifact bundle to dest. The API hands
// back a short-lived redirect URL; the actual bytes come from blob
// storage without authentication.
func (s *GitHubService) DownloadArtifact(ctx context.Context, repo model.Repository, artifactID int64, dest string) error {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return err
	}

	url, _, err := client.Actions.DownloadArtifact(ctx, repo.Owner, repo.Name, artifactID, downloadMaxRedirects)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.ErrAPIRequest.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ErrAPIRequest.Wrap(goerr.New("artifact download failed",
			goerr.V("status", resp.Status),
			goerr.V("artifact_id", artifactID),
		))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return domain.ErrAPIRequest.Wrap(err)
	}

	return f.Close()
}

// LocalHeadCommit resolves the HEAD commit of the git checkout at
// repoPath. Used by the --last-commit selector.
func LocalHeadCommit(ctx context.Context, repoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return "", domain.ErrRepository.Wrap(err)
	}
	return strings.TrimSpace(string(output)), nil
}

func convertRun(run *github.WorkflowRun) *model.WorkflowRun {
	workflowRun := &model.WorkflowRun{
		ID:        run.GetID(),
		HeadSHA:   run.GetHeadSHA(),
		Status:    convertStatus(run.GetStatus()),
		URL:       run.GetHTMLURL(),
		CreatedAt: run.GetCreatedAt().Time,
	}

	if run.GetStatus() == "completed" {
		workflowRun.Conclusion = convertConclusion(run.GetConclusion())
	}

	return workflowRun
}

func convertStatus(status string) model.WorkflowStatus {
	switch status {
	case "queued":
		return model.WorkflowStatusQueued
	case "in_progress":
		return model.WorkflowStatusInProgress
	case "completed":
		return model.WorkflowStatusCompleted
	default:
		return model.WorkflowStatus(status)
	}
}

func convertConclusion(conclusion string) model.WorkflowConclusion {
	switch conclusion {
	case "success":
		return model.WorkflowConclusionSuccess
	case "failure":
		return model.WorkflowConclusionFailure
	case "cancelled":
		return model.WorkflowConclusionCancelled
	case "skipped":
		return model.WorkflowConclusionSkipped
	case "timed_out":
		return model.WorkflowConclusionTimedOut
	default:
		return model.WorkflowConclusion(conclusion)
	}
}
