package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestHasherSHA256(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	gt.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	hasher, err := usecase.NewHasher("sha256")
	gt.NoError(t, err)
	gt.Equal(t, hasher.Algorithm(), "sha256")

	sum, err := hasher.Sum(path)
	gt.NoError(t, err)
	gt.Equal(t, sum, "sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9")
}

func TestHasherBlake3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	gt.NoError(t, os.WriteFile(path, nil, 0o644))

	hasher, err := usecase.NewHasher("blake3")
	gt.NoError(t, err)
	gt.Equal(t, hasher.Algorithm(), "blake3")

	sum, err := hasher.Sum(path)
	gt.NoError(t, err)
	gt.Equal(t, sum, "blake3:af1349b9f5f9a1a6a0404dee36dcc9499bcb25c9adc112b7cc9a93cae41f3262")
}

func TestHasherDefaultsToSHA256(t *testing.T) {
	hasher, err := usecase.NewHasher("")
	gt.NoError(t, err)
	gt.Equal(t, hasher.Algorithm(), "sha256")
}

func TestHasherUnknownAlgorithm(t *testing.T) {
	_, err := usecase.NewHasher("md5")
	gt.Error(t, err)
	gt.True(t, domain.ErrConfiguration.Is(err))
}

func TestHasherAlgorithmsNeverCollide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	gt.NoError(t, os.WriteFile(path, []byte("same content"), 0o644))

	sha, err := usecase.NewHasher("sha256")
	gt.NoError(t, err)
	blake, err := usecase.NewHasher("blake3")
	gt.NoError(t, err)

	shaSum, err := sha.Sum(path)
	gt.NoError(t, err)
	blakeSum, err := blake.Sum(path)
	gt.NoError(t, err)

	gt.NotEqual(t, shaSum, blakeSum)
}

func TestHasherMissingFile(t *testing.T) {
	hasher, err := usecase.NewHasher("sha256")
	gt.NoError(t, err)

	_, err = hasher.Sum(filepath.Join(t.TempDir(), "missing"))
	gt.Error(t, err)
	// An unreadable file is an I/O failure, not a digest mismatch.
	gt.False(t, domain.ErrVerification.Is(err))
}
