package usecase

import (
	"context"
	"strings"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// RunResolver finds the one workflow run that satisfies the selector and
// has completed successfully.
type RunResolver struct {
	query  interfaces.RunQueryService
	clock  interfaces.Clock
	config *model.FetchConfig
}

func NewRunResolver(query interfaces.RunQueryService, clock interfaces.Clock, config *model.FetchConfig) *RunResolver {
	return &RunResolver{
		query:  query,
		clock:  clock,
		config: config,
	}
}

func (r *RunResolver) Resolve(ctx context.Context) (*model.WorkflowRun, error) {
	return pollUntil(ctx, r.clock, r.config.Watch, r.config.PollInterval, r.config.Timeout,
		"waiting for successful workflow run", r.check)
}

func (r *RunResolver) check(ctx context.Context) (*model.WorkflowRun, error) {
	if r.config.Selector.Explicit() {
		return r.checkExplicit(ctx)
	}
	return r.checkLatest(ctx)
}

// checkExplicit queries the run by id. A completed run with any
// conclusion other than success is terminal: it will never become
// successful, so polling stops immediately.
func (r *RunResolver) checkExplicit(ctx context.Context) (*model.WorkflowRun, error) {
	runID := r.config.Selector.RunID

	run, err := r.query.GetWorkflowRun(ctx, r.config.Repo, runID)
	if err != nil {
		return nil, err
	}

	if !run.Decided() {
		return nil, domain.ErrRunNotFound.Wrap(goerr.New(
			"run is not completed yet, re-run with --watch to poll",
			goerr.V("run_id", runID),
			goerr.V("status", run.Status),
		))
	}

	if !run.Succeeded() {
		return nil, domain.ErrRunNotSuccessful.Wrap(goerr.New(
			"run completed without success",
			goerr.V("run_id", runID),
			goerr.V("conclusion", run.Conclusion),
		))
	}

	return run, nil
}

// checkLatest lists recent runs for the workflow and returns the most
// recent completed+successful one, further narrowed by the revision
// prefix when one is given.
func (r *RunResolver) checkLatest(ctx context.Context) (*model.WorkflowRun, error) {
	runs, err := r.query.ListWorkflowRuns(ctx, r.config.Repo, r.config.Workflow, r.config.RunListLimit)
	if err != nil {
		return nil, err
	}

	prefix := r.config.Selector.SHAPrefix
	for _, run := range runs {
		if !run.Succeeded() {
			continue
		}
		if prefix != "" && !strings.HasPrefix(run.HeadSHA, prefix) {
			continue
		}
		return run, nil
	}

	return nil, domain.ErrRunNotFound.Wrap(goerr.New(
		"no successful completed run found, re-run with --watch to poll",
		goerr.V("workflow", r.config.Workflow),
		goerr.V("sha_prefix", prefix),
	))
}
