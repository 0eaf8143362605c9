package backoff

import (
	"context"
	"errors"
	"time"
)

type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

func (cfg Config) withDefaults() Config {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Second
	}
	return cfg
}

// Retry invokes fn up to cfg.MaxAttempts times, sleeping an exponentially
// growing delay between attempts. The wait is cancellable: if ctx is done
// the sequence stops and the context error is returned wrapped around the
// last failure. Errors matching one of nonRetriable abort immediately.
// After the final attempt the last error is returned unchanged.
func Retry(ctx context.Context, cfg Config, fn func() error, nonRetriable ...error) error {
	cfg = cfg.withDefaults()
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		for _, stop := range nonRetriable {
			if errors.Is(err, stop) {
				return err
			}
		}

		if attempt == cfg.MaxAttempts {
			return err
		}

		if waitErr := wait(ctx, delay); waitErr != nil {
			return errors.Join(waitErr, err)
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return nil
}

// RetryValue is Retry for operations that produce a value.
func RetryValue[T any](ctx context.Context, cfg Config, fn func() (T, error), nonRetriable ...error) (T, error) {
	var result T
	err := Retry(ctx, cfg, func() error {
		var err error
		result, err = fn()
		return err
	}, nonRetriable...)
	return result, err
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
