package interfaces

// Reporter emits user-facing progress, one line per pipeline stage.
type Reporter interface {
	Stagef(format string, args ...any)
	Donef(format string, args ...any)
}
