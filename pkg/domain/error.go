package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrToolMissing        = goerr.New("required external tool not found")
	ErrSelectorConflict   = goerr.New("conflicting run selectors")
	ErrRunNotSuccessful   = goerr.New("workflow run did not succeed")
	ErrRunNotFound        = goerr.New("no qualifying workflow run")
	ErrArtifactNotFound   = goerr.New("artifact not available")
	ErrArtifactExpired    = goerr.New("artifact expired")
	ErrTimeout            = goerr.New("timed out waiting")
	ErrExtraction         = goerr.New("archive extraction failed")
	ErrVerification       = goerr.New("digest verification failed")
	ErrInvalidDestination = goerr.New("invalid destination directory")
	ErrAPIRequest         = goerr.New("API request failed")
	ErrAuthentication     = goerr.New("authentication failed")
	ErrConfiguration      = goerr.New("configuration error")
	ErrRepository         = goerr.New("repository error")
)

// Retryable reports whether another poll attempt could resolve the error.
// Everything else in the taxonomy is terminal: a completed run never changes
// its conclusion and an expired artifact never comes back.
func Retryable(err error) bool {
	return ErrRunNotFound.Is(err) || ErrArtifactNotFound.Is(err)
}
