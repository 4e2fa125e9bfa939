package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"github.com/zeebo/blake3"
)

const hashChunkSize = 1 << 20

// NewHasher selects a digest implementation by name. SHA-256 is the
// default because operators compare the printed digest against
// `shasum -a 256` output by hand; BLAKE3 is offered for large images
// where hashing time is noticeable.
func NewHasher(algorithm string) (interfaces.Hasher, error) {
	switch algorithm {
	case "", "sha256":
		return &fileHasher{algorithm: "sha256", newHash: sha256.New}, nil
	case "blake3":
		return &fileHasher{algorithm: "blake3", newHash: func() hash.Hash { return blake3.New() }}, nil
	default:
		return nil, domain.ErrConfiguration.Wrap(goerr.New(
			"unknown digest algorithm, expected sha256 or blake3",
			goerr.V("algorithm", algorithm),
		))
	}
}

type fileHasher struct {
	algorithm string
	newHash   func() hash.Hash
}

func (h *fileHasher) Algorithm() string {
	return h.algorithm
}

// Sum digests the whole file in fixed-size chunks and returns
// "<algorithm>:<hex>".
func (h *fileHasher) Sum(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 - path comes from the pipeline's own working tree
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file for hashing", goerr.V("path", path))
	}
	defer f.Close()

	hasher := h.newHash()
	if _, err := io.CopyBuffer(hasher, f, make([]byte, hashChunkSize)); err != nil {
		return "", goerr.Wrap(err, "failed to read file for hashing", goerr.V("path", path))
	}

	return h.algorithm + ":" + hex.EncodeToString(hasher.Sum(nil)), nil
}
