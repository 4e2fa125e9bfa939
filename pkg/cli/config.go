package cli

import (
	"time"

	"github.com/balaclava-guy/isofetch/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

const (
	defaultRepo     = "balaclava-guy/hyper-recovery"
	defaultWorkflow = "build.yml"
	defaultArtifact = "live-iso"
	defaultDest     = "/Volumes/Ventoy"
)

type Config struct {
	Repo         string
	Workflow     string
	ArtifactName string
	RunID        int64
	SHA          string
	LastCommit   bool
	Watch        bool
	PollInterval time.Duration
	Timeout      time.Duration
	RunListLimit int
	Dest         string
	WorkDir      string
	KeepWorkDir  bool
	SkipVerify   bool
	Digest       string
	Pattern      string
}

// ToFetchConfig resolves the flag-level configuration into the value the
// pipeline consumes. shaPrefix is the already-resolved revision prefix
// (either --sha or the local HEAD when --last-commit was given).
func (c *Config) ToFetchConfig(shaPrefix string) (*model.FetchConfig, error) {
	repo, err := model.ParseRepository(c.Repo)
	if err != nil {
		return nil, err
	}

	return &model.FetchConfig{
		Repo:         repo,
		Workflow:     c.Workflow,
		ArtifactName: c.ArtifactName,
		Selector: model.Selector{
			RunID:     c.RunID,
			SHAPrefix: shaPrefix,
		},
		Watch:          c.Watch,
		PollInterval:   c.PollInterval,
		Timeout:        c.Timeout,
		RunListLimit:   c.RunListLimit,
		Dest:           c.Dest,
		WorkDir:        c.WorkDir,
		KeepWorkDir:    c.KeepWorkDir,
		SkipVerify:     c.SkipVerify,
		ArchivePattern: "*.7z",
		PayloadPattern: c.Pattern,
	}, nil
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"R"},
			Usage:   "GitHub repository in owner/name form",
			Value:   defaultRepo,
		},
		&cli.StringFlag{
			Name:    "workflow",
			Aliases: []string{"w"},
			Usage:   "Workflow file name",
			Value:   defaultWorkflow,
		},
		&cli.StringFlag{
			Name:  "artifact-name",
			Usage: "GitHub Actions artifact name",
			Value: defaultArtifact,
		},
		&cli.Int64Flag{
			Name:  "run-id",
			Usage: "Use this specific run id",
		},
		&cli.StringFlag{
			Name:  "sha",
			Usage: "Find latest successful run for this commit SHA/prefix",
		},
		&cli.BoolFlag{
			Name:  "last-commit",
			Usage: "Use local git HEAD commit SHA as the run selector",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "Poll until run/artifact is available",
		},
		&cli.DurationFlag{
			Name:    "poll-interval",
			Aliases: []string{"i"},
			Usage:   "Polling interval when --watch is enabled",
			Value:   20 * time.Second,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Overall deadline when --watch is enabled",
			Value: time.Hour,
		},
		&cli.IntFlag{
			Name:  "run-list-limit",
			Usage: "How many recent runs to inspect when selecting by SHA/latest",
			Value: 30,
		},
		&cli.StringFlag{
			Name:    "dest",
			Aliases: []string{"d"},
			Usage:   "Destination directory for the final ISO copy (must exist)",
			Value:   defaultDest,
		},
		&cli.StringFlag{
			Name:  "workdir",
			Usage: "Working directory (default: /tmp/hyper-iso-<run_id>)",
		},
		&cli.BoolFlag{
			Name:  "keep-workdir",
			Usage: "Keep working directory after successful run",
		},
		&cli.BoolFlag{
			Name:  "no-verify",
			Usage: "Skip digest verification after copy",
		},
		&cli.StringFlag{
			Name:  "digest",
			Usage: "Digest algorithm for verification (sha256 or blake3)",
			Value: "sha256",
		},
		&cli.StringFlag{
			Name:  "pattern",
			Usage: "Filename pattern of the payload inside the inner archive",
			Value: "*.iso",
		},
	}
}
