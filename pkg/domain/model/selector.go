package model

import (
	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/m-mizutani/goerr/v2"
)

// Selector describes how the target workflow run is chosen. Exactly one
// mode is active per invocation: an explicit run id, or a revision-prefix
// match against recent successful runs (an empty prefix means "latest
// successful").
type Selector struct {
	RunID     int64
	SHAPrefix string
}

// Explicit reports whether the selector names a specific run id.
func (s Selector) Explicit() bool {
	return s.RunID != 0
}

// Validate rejects selectors that mix the explicit-id mode with a
// revision prefix. Called before any remote interaction.
func (s Selector) Validate() error {
	if s.Explicit() && s.SHAPrefix != "" {
		return domain.ErrSelectorConflict.Wrap(goerr.New(
			"use either an explicit run id or a revision prefix, not both",
			goerr.V("run_id", s.RunID),
			goerr.V("sha_prefix", s.SHAPrefix),
		))
	}
	return nil
}
