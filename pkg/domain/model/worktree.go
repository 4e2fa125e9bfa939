package model

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkTree is the per-invocation staging directory. The root is keyed by
// the resolved run id, so invocations targeting different runs never
// collide. Two concurrent invocations against the same run id share the
// tree; that race is accepted and not guarded by a lock.
type WorkTree struct {
	Root string
}

// NewWorkTree builds the staging tree location for a run. An empty
// override selects the default under the system temp directory.
func NewWorkTree(override string, runID int64) WorkTree {
	if override != "" {
		return WorkTree{Root: override}
	}
	return WorkTree{Root: filepath.Join(os.TempDir(), fmt.Sprintf("hyper-iso-%d", runID))}
}

// DownloadDir holds the artifact bundle as downloaded.
func (w WorkTree) DownloadDir() string {
	return filepath.Join(w.Root, "download")
}

// OuterDir holds the contents of the container (zip) layer.
func (w WorkTree) OuterDir() string {
	return filepath.Join(w.Root, "zip-extract")
}

// InnerDir holds the contents of the compressed (7z) layer.
func (w WorkTree) InnerDir() string {
	return filepath.Join(w.Root, "extract")
}

// BundlePath is where the downloaded artifact bundle lands.
func (w WorkTree) BundlePath(artifactName string) string {
	return filepath.Join(w.DownloadDir(), artifactName+".zip")
}

func (w WorkTree) Create() error {
	return os.MkdirAll(w.Root, 0o755)
}

// Remove deletes the whole tree. Called on success only; failures leave
// the tree in place for post-mortem inspection.
func (w WorkTree) Remove() error {
	return os.RemoveAll(w.Root)
}
