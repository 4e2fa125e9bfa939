package interfaces

// Hasher computes a whole-file content digest, reading in fixed-size
// chunks so memory stays bounded for multi-gigabyte images. Sum returns
// an algorithm-prefixed string ("sha256:<hex>") so digests from
// different algorithms can never compare equal.
type Hasher interface {
	Algorithm() string
	Sum(path string) (string, error)
}
