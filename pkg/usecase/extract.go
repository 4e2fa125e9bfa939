package usecase

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/klauspost/compress/zip"
	"github.com/m-mizutani/goerr/v2"
)

// sevenZipCandidates in preference order. 7zz is the standalone build
// shipped by 7-Zip upstream; 7z comes from p7zip packages.
var sevenZipCandidates = []string{"7zz", "7z"}

type archiveExtractor struct{}

func NewArchiveExtractor() interfaces.ArchiveExtractor {
	return &archiveExtractor{}
}

func (e *archiveExtractor) Preflight(ctx context.Context) error {
	if _, err := e.lookupSevenZip(); err != nil {
		return err
	}
	return nil
}

func (e *archiveExtractor) lookupSevenZip() (string, error) {
	for _, name := range sevenZipCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", domain.ErrToolMissing.Wrap(goerr.New(
		"no 7z extractor in PATH, install 7zz or 7z",
	))
}

// ExtractContainer unpacks the zip bundle the CI service wraps every
// artifact in. Entries that would escape destDir are rejected.
func (e *archiveExtractor) ExtractContainer(ctx context.Context, src, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return domain.ErrExtraction.Wrap(err)
	}

	reader, err := zip.OpenReader(src)
	if err != nil {
		return domain.ErrExtraction.Wrap(err, goerr.V("archive", src))
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := extractZipEntry(file, destDir); err != nil {
			return domain.ErrExtraction.Wrap(err, goerr.V("entry", file.Name))
		}
	}

	return nil
}

func extractZipEntry(file *zip.File, destDir string) error {
	if !filepath.IsLocal(filepath.FromSlash(file.Name)) {
		return goerr.New("archive entry escapes extraction directory",
			goerr.V("entry", file.Name))
	}

	target := filepath.Join(destDir, filepath.FromSlash(file.Name))

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// ExtractCompressed unpacks a 7z archive with the external extractor.
func (e *archiveExtractor) ExtractCompressed(ctx context.Context, src, destDir string) error {
	tool, err := e.lookupSevenZip()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return domain.ErrExtraction.Wrap(err)
	}

	cmd := exec.CommandContext(ctx, tool, "x", "-y", src, "-o"+destDir)
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return domain.ErrExtraction.Wrap(err,
			goerr.V("tool", tool),
			goerr.V("archive", src),
		)
	}

	return nil
}

// findLargest walks root for files whose base name matches pattern and
// returns the largest one. Zero matches is fatal; equal-size candidates
// resolve to the lexicographically smallest path so the choice is
// reproducible.
func findLargest(root, pattern string) (string, error) {
	type match struct {
		path string
		size int64
	}

	var matches []match
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		matches = append(matches, match{path: path, size: info.Size()})
		return nil
	})
	if err != nil {
		return "", domain.ErrExtraction.Wrap(err, goerr.V("root", root))
	}

	if len(matches) == 0 {
		return "", domain.ErrExtraction.Wrap(goerr.New(
			"no files matching pattern found",
			goerr.V("pattern", pattern),
			goerr.V("root", root),
		))
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].path < matches[j].path
	})

	best := matches[0]
	for _, m := range matches[1:] {
		if m.size > best.size {
			best = m
		}
	}

	return best.path, nil
}
