package interfaces

import "context"

// ArchiveExtractor unpacks the two nested archive layers. The container
// layer is the zip bundle the CI service wraps artifacts in; the
// compressed layer is the 7z archive the build job produces inside it.
type ArchiveExtractor interface {
	// Preflight fails when a required external extraction tool is not
	// installed. Called before any remote interaction.
	Preflight(ctx context.Context) error
	ExtractContainer(ctx context.Context, src, destDir string) error
	ExtractCompressed(ctx context.Context, src, destDir string) error
}
