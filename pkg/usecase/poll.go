package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/balaclava-guy/isofetch/pkg/domain"
	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
)

// pollUntil repeatedly calls check until it yields a value or a
// non-retryable error. With watch disabled the first retryable error is
// returned as-is ("retry with --watch"). With watch enabled, retryable
// errors sleep for interval and try again until the deadline elapses.
func pollUntil[T any](
	ctx context.Context,
	clock interfaces.Clock,
	watch bool,
	interval, timeout time.Duration,
	waitingMsg string,
	check func(ctx context.Context) (T, error),
) (T, error) {
	var zero T
	logger := ctxlog.From(ctx)
	deadline := clock.Now().Add(timeout)

	for {
		result, err := check(ctx)
		if err == nil {
			return result, nil
		}
		if !domain.Retryable(err) {
			return zero, err
		}
		if !watch {
			return zero, err
		}
		if !clock.Now().Before(deadline) {
			return zero, domain.ErrTimeout.Wrap(err)
		}

		logger.Info(waitingMsg, slog.Duration("interval", interval))
		if sleepErr := clock.Sleep(ctx, interval); sleepErr != nil {
			return zero, sleepErr
		}
	}
}
