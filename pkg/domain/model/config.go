package model

import "time"

// FetchConfig carries everything the pipeline needs for one invocation.
// Defaults are supplied by the CLI layer; nothing here is process-global.
type FetchConfig struct {
	Repo         Repository
	Workflow     string
	ArtifactName string
	Selector     Selector

	Watch        bool
	PollInterval time.Duration
	Timeout      time.Duration
	RunListLimit int

	Dest        string
	WorkDir     string
	KeepWorkDir bool
	SkipVerify  bool

	// ArchivePattern matches the compressed layer inside the downloaded
	// bundle; PayloadPattern matches the final file inside that layer.
	ArchivePattern string
	PayloadPattern string
}
