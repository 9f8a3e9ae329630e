package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/retry"
)

func fastConfig() retry.Config {
	return retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}
}

func TestRetry_SucceedsAfterTransientErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Retry(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	t.Parallel()

	permanent := errors.New("password authentication failed")
	calls := 0
	err := retry.Retry(context.Background(), fastConfig(), func() error {
		calls++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	transient := errors.New("i/o timeout")
	err := retry.Retry(context.Background(), fastConfig(), func() error { return transient })

	require.ErrorIs(t, err, retry.ErrMaxAttemptsExceeded)
	require.ErrorIs(t, err, transient)
}

func TestRetry_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.Retry(ctx, fastConfig(), func() error { return nil })
	require.ErrorIs(t, err, retry.ErrContextCancelled)
}
