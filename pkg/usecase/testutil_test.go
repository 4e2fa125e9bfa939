package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// fakeClock advances its own notion of time on every sleep, so polling
// deadlines elapse without real delays.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	return nil
}

// fakeQueryService replays scripted responses. Each call consumes the
// next entry in its sequence; the final entry repeats.
type fakeQueryService struct {
	runSeq      []*model.WorkflowRun
	listSeq     [][]*model.WorkflowRun
	artifactSeq [][]*model.Artifact

	getCalls      int
	listCalls     int
	artifactCalls int
}

func (s *fakeQueryService) GetWorkflowRun(ctx context.Context, repo model.Repository, runID int64) (*model.WorkflowRun, error) {
	s.getCalls++
	if len(s.runSeq) == 0 {
		return nil, domain.ErrAPIRequest.Wrap(goerr.New("no scripted run"))
	}
	run := s.runSeq[0]
	if len(s.runSeq) > 1 {
		s.runSeq = s.runSeq[1:]
	}
	return run, nil
}

func (s *fakeQueryService) ListWorkflowRuns(ctx context.Context, repo model.Repository, workflow string, limit int) ([]*model.WorkflowRun, error) {
	s.listCalls++
	if len(s.listSeq) == 0 {
		return nil, nil
	}
	runs := s.listSeq[0]
	if len(s.listSeq) > 1 {
		s.listSeq = s.listSeq[1:]
	}
	return runs, nil
}

func (s *fakeQueryService) ListArtifacts(ctx context.Context, repo model.Repository, runID int64) ([]*model.Artifact, error) {
	s.artifactCalls++
	if len(s.artifactSeq) == 0 {
		return nil, nil
	}
	artifacts := s.artifactSeq[0]
	if len(s.artifactSeq) > 1 {
		s.artifactSeq = s.artifactSeq[1:]
	}
	return artifacts, nil
}

// fakeDownloadService writes scripted bundle bytes to the destination.
type fakeDownloadService struct {
	content []byte
	calls   int
}

func (s *fakeDownloadService) DownloadArtifact(ctx context.Context, repo model.Repository, artifactID int64, dest string) error {
	s.calls++
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, s.content, 0o644)
}

// fakeExtractor materializes scripted file trees instead of reading real
// archives, so pipeline tests need no archive tool.
type fakeExtractor struct {
	containerFiles  map[string][]byte
	compressedFiles map[string][]byte
	preflightErr    error
}

func (e *fakeExtractor) Preflight(ctx context.Context) error {
	return e.preflightErr
}

func (e *fakeExtractor) ExtractContainer(ctx context.Context, src, destDir string) error {
	return writeTree(destDir, e.containerFiles)
}

func (e *fakeExtractor) ExtractCompressed(ctx context.Context, src, destDir string) error {
	return writeTree(destDir, e.compressedFiles)
}

func writeTree(root string, files map[string][]byte) error {
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func successfulRun(id int64, sha string) *model.WorkflowRun {
	return &model.WorkflowRun{
		ID:         id,
		HeadSHA:    sha,
		Status:     model.WorkflowStatusCompleted,
		Conclusion: model.WorkflowConclusionSuccess,
		URL:        "https://github.com/balaclava-guy/hyper-recovery/actions/runs/12345",
	}
}
