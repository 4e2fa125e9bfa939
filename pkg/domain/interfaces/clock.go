package interfaces

import (
	"context"
	"time"
)

// Clock abstracts wall-clock time and poll sleeps so tests can simulate
// elapsed time without real delays.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until the context is cancelled.
	Sleep(ctx context.Context, d time.Duration) error
}
