package usecase

import (
	"context"
	"time"

	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
)

type systemClock struct{}

// NewClock returns the wall-clock implementation used in production.
func NewClock() interfaces.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
