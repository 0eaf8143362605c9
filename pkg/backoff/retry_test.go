package backoff_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fleetline/driver-assist/pkg/backoff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	testCases := []struct {
		name         string
		failures     int
		maxAttempts  int
		wantAttempts int
		wantErr      bool
	}{
		{name: "first attempt succeeds", failures: 0, maxAttempts: 3, wantAttempts: 1},
		{name: "second attempt succeeds", failures: 1, maxAttempts: 3, wantAttempts: 2},
		{name: "last attempt succeeds", failures: 2, maxAttempts: 3, wantAttempts: 3},
		{name: "all attempts fail", failures: 5, maxAttempts: 3, wantAttempts: 3, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempts := 0
			opErr := errors.New("temporary error")

			err := backoff.Retry(context.Background(), backoff.Config{
				MaxAttempts:  tc.maxAttempts,
				InitialDelay: time.Millisecond,
			}, func() error {
				attempts++
				if attempts <= tc.failures {
					return opErr
				}
				return nil
			})

			assert.Equal(t, tc.wantAttempts, attempts)
			if tc.wantErr {
				// the last underlying failure comes back unchanged
				assert.ErrorIs(t, err, opErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_DelaysGrowExponentially(t *testing.T) {
	var timestamps []time.Time
	opErr := errors.New("always fails")

	initial := 20 * time.Millisecond
	err := backoff.Retry(context.Background(), backoff.Config{
		MaxAttempts:  3,
		InitialDelay: initial,
	}, func() error {
		timestamps = append(timestamps, time.Now())
		return opErr
	})

	require.ErrorIs(t, err, opErr)
	require.Len(t, timestamps, 3)

	// delays should be roughly initial and initial*2
	first := timestamps[1].Sub(timestamps[0])
	second := timestamps[2].Sub(timestamps[1])
	assert.GreaterOrEqual(t, first, initial)
	assert.GreaterOrEqual(t, second, 2*initial)
	assert.Less(t, first, second)
}

func TestRetry_NonRetriableStopsImmediately(t *testing.T) {
	fatal := errors.New("not found")
	attempts := 0

	err := backoff.Retry(context.Background(), backoff.Config{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
	}, func() error {
		attempts++
		return fatal
	}, fatal)

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestRetry_CancelledContextStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	opErr := errors.New("temporary error")
	attempts := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := backoff.Retry(ctx, backoff.Config{
		MaxAttempts:  3,
		InitialDelay: time.Minute,
	}, func() error {
		attempts++
		return opErr
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, opErr)
	assert.Equal(t, 1, attempts)
}

func TestRetry_MaxDelayCapsGrowth(t *testing.T) {
	var timestamps []time.Time
	opErr := errors.New("always fails")

	err := backoff.Retry(context.Background(), backoff.Config{
		MaxAttempts:  4,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     15 * time.Millisecond,
	}, func() error {
		timestamps = append(timestamps, time.Now())
		return opErr
	})

	require.ErrorIs(t, err, opErr)
	require.Len(t, timestamps, 4)

	last := timestamps[3].Sub(timestamps[2])
	assert.Less(t, last, 40*time.Millisecond)
}

func TestRetryValue(t *testing.T) {
	attempts := 0
	got, err := backoff.RetryValue(context.Background(), backoff.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
	}, func() (string, error) {
		attempts++
		if attempts < 2 {
			return "", errors.New("temporary error")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, attempts)
}
