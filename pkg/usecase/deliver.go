package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Deliverer copies the payload into the destination directory and
// verifies the copy against the source digest. The payload is copied,
// never moved, so the extraction stays available until cleanup.
type Deliverer struct {
	hasher     interfaces.Hasher
	skipVerify bool
}

func NewDeliverer(hasher interfaces.Hasher, skipVerify bool) *Deliverer {
	return &Deliverer{
		hasher:     hasher,
		skipVerify: skipVerify,
	}
}

// ValidateDestination rejects a missing or non-directory destination.
// The directory is never created here: a missing mount must not be
// silently replaced by a plain directory on the mount point.
func (d *Deliverer) ValidateDestination(destDir string) error {
	info, err := os.Stat(destDir)
	if err != nil {
		return domain.ErrInvalidDestination.Wrap(err, goerr.V("dest", destDir))
	}
	if !info.IsDir() {
		return domain.ErrInvalidDestination.Wrap(goerr.New(
			"destination exists but is not a directory",
			goerr.V("dest", destDir),
		))
	}
	return nil
}

// SourceDigest computes the payload digest before the copy. Returns ""
// when verification is disabled.
func (d *Deliverer) SourceDigest(payload string) (string, error) {
	if d.skipVerify {
		return "", nil
	}
	return d.hasher.Sum(payload)
}

// Deliver copies payload into destDir preserving its name, then compares
// the delivered copy's digest against the precomputed source digest. On
// mismatch the destination file must be treated as untrusted.
func (d *Deliverer) Deliver(ctx context.Context, payload, destDir, sourceDigest string) (string, string, error) {
	if err := d.ValidateDestination(destDir); err != nil {
		return "", "", err
	}

	dest := filepath.Join(destDir, filepath.Base(payload))
	if err := copyFile(payload, dest); err != nil {
		return "", "", err
	}

	if d.skipVerify {
		return dest, "", nil
	}

	srcSum := sourceDigest
	dstSum, err := d.hasher.Sum(dest)
	if err != nil {
		return "", "", err
	}

	if srcSum != dstSum {
		return "", "", domain.ErrVerification.Wrap(goerr.New(
			"digest mismatch after copy",
			goerr.V("source", srcSum),
			goerr.V("delivered", dstSum),
			goerr.V("dest", dest),
		))
	}

	return dest, dstSum, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) // #nosec G304 - src comes from the pipeline's own working tree
	if err != nil {
		// The payload was produced by the extraction stage; its absence
		// means the working tree is gone, not that the user misconfigured
		// anything.
		return domain.ErrExtraction.Wrap(err, goerr.V("payload", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return domain.ErrExtraction.Wrap(err, goerr.V("payload", src))
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return domain.ErrInvalidDestination.Wrap(err, goerr.V("dest", dest))
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return domain.ErrInvalidDestination.Wrap(err, goerr.V("dest", dest))
	}

	return out.Close()
}
