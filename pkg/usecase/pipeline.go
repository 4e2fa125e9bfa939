package usecase

import (
	"context"
	"log/slog"

	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// PipelineState names the stage the pipeline is currently in.
// Transitions are strictly forward; failed is terminal from any state.
type PipelineState string

const (
	StateResolvingRun     PipelineState = "resolving-run"
	StateLocatingArtifact PipelineState = "locating-artifact"
	StateDownloading      PipelineState = "downloading"
	StateExtracting       PipelineState = "extracting"
	StateVerifying        PipelineState = "verifying"
	StateDelivering       PipelineState = "delivering"
	StateDone             PipelineState = "done"
	StateFailed           PipelineState = "failed"
)

// Pipeline sequences resolve → locate → download → extract → verify →
// deliver. There is no retry of a completed stage within one invocation;
// the only retry mechanisms are the poll loops inside the resolver and
// locator, and re-invocation by the caller.
type Pipeline struct {
	query     interfaces.RunQueryService
	download  interfaces.ArtifactDownloadService
	extractor interfaces.ArchiveExtractor
	hasher    interfaces.Hasher
	clock     interfaces.Clock
	reporter  interfaces.Reporter
	config    *model.FetchConfig

	state PipelineState
}

type PipelineOptions struct {
	Query     interfaces.RunQueryService
	Download  interfaces.ArtifactDownloadService
	Extractor interfaces.ArchiveExtractor
	Hasher    interfaces.Hasher
	Clock     interfaces.Clock
	Reporter  interfaces.Reporter
	Config    *model.FetchConfig
}

func NewPipeline(opts PipelineOptions) *Pipeline {
	return &Pipeline{
		query:     opts.Query,
		download:  opts.Download,
		extractor: opts.Extractor,
		hasher:    opts.Hasher,
		clock:     opts.Clock,
		reporter:  opts.Reporter,
		config:    opts.Config,
	}
}

// Result describes a successful delivery.
type Result struct {
	Run         *model.WorkflowRun
	Artifact    *model.Artifact
	Delivered   string
	Digest      string
	WorkDir     string
	KeptWorkDir bool
}

// State returns the stage the last Execute call reached.
func (p *Pipeline) State() PipelineState {
	return p.state
}

func (p *Pipeline) Execute(ctx context.Context) (*Result, error) {
	logger := ctxlog.From(ctx)

	// Usage errors and missing tools surface before any remote
	// interaction.
	if err := p.config.Selector.Validate(); err != nil {
		return nil, p.fail(err)
	}
	if err := p.extractor.Preflight(ctx); err != nil {
		return nil, p.fail(err)
	}
	deliverer := NewDeliverer(p.hasher, p.config.SkipVerify)
	if err := deliverer.ValidateDestination(p.config.Dest); err != nil {
		return nil, p.fail(err)
	}

	p.state = StateResolvingRun
	p.stagef("Resolving workflow run (%s, %s)", p.config.Repo.FullName(), p.config.Workflow)
	resolver := NewRunResolver(p.query, p.clock, p.config)
	run, err := resolver.Resolve(ctx)
	if err != nil {
		return nil, p.fail(err)
	}
	sha := run.HeadSHA
	if len(sha) > 12 {
		sha = sha[:12]
	}
	p.stagef("Selected run %d (%s) %s", run.ID, sha, run.URL)

	p.state = StateLocatingArtifact
	locator := NewArtifactLocator(p.query, p.clock, p.config)
	artifact, err := locator.Locate(ctx, run.ID)
	if err != nil {
		return nil, p.fail(err)
	}
	p.stagef("Using artifact %q id=%d size=%d bytes", artifact.Name, artifact.ID, artifact.SizeInBytes)

	tree := model.NewWorkTree(p.config.WorkDir, run.ID)
	if err := tree.Create(); err != nil {
		return nil, p.fail(err)
	}

	p.state = StateDownloading
	bundle := tree.BundlePath(artifact.Name)
	p.stagef("Downloading artifact bundle to %s", bundle)
	if err := p.download.DownloadArtifact(ctx, p.config.Repo, artifact.ID, bundle); err != nil {
		return nil, p.fail(err)
	}

	p.state = StateExtracting
	p.stagef("Extracting bundle to %s", tree.OuterDir())
	if err := p.extractor.ExtractContainer(ctx, bundle, tree.OuterDir()); err != nil {
		return nil, p.fail(err)
	}

	archive, err := findLargest(tree.OuterDir(), p.config.ArchivePattern)
	if err != nil {
		return nil, p.fail(err)
	}
	p.stagef("Extracting %s to %s", archive, tree.InnerDir())
	if err := p.extractor.ExtractCompressed(ctx, archive, tree.InnerDir()); err != nil {
		return nil, p.fail(err)
	}

	payload, err := findLargest(tree.InnerDir(), p.config.PayloadPattern)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateVerifying
	sourceDigest, err := deliverer.SourceDigest(payload)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateDelivering
	p.stagef("Copying %s to %s", payload, p.config.Dest)
	delivered, digest, err := deliverer.Deliver(ctx, payload, p.config.Dest, sourceDigest)
	if err != nil {
		return nil, p.fail(err)
	}
	if digest != "" {
		p.stagef("Digest verified: %s", digest)
	}

	result := &Result{
		Run:         run,
		Artifact:    artifact,
		Delivered:   delivered,
		Digest:      digest,
		WorkDir:     tree.Root,
		KeptWorkDir: p.config.KeepWorkDir,
	}

	if p.config.KeepWorkDir {
		p.stagef("Kept workdir: %s", tree.Root)
	} else {
		if err := tree.Remove(); err != nil {
			logger.Warn("failed to remove workdir",
				slog.String("workdir", tree.Root),
				slog.String("error", err.Error()),
			)
		} else {
			p.stagef("Removed workdir: %s", tree.Root)
		}
	}

	p.state = StateDone
	return result, nil
}

func (p *Pipeline) fail(err error) error {
	p.state = StateFailed
	return err
}

func (p *Pipeline) stagef(format string, args ...any) {
	if p.reporter != nil {
		p.reporter.Stagef(format, args...)
	}
}
