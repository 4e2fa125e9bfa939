package model

// Artifact is the metadata of a named output bundle attached to one
// workflow run. An expired artifact can never be downloaded again.
type Artifact struct {
	ID          int64
	Name        string
	SizeInBytes int64
	Expired     bool
}
