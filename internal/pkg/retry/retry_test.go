package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastOptions(maxAttempts int) []Option {
	return []Option{
		WithMaxAttempts(maxAttempts),
		WithInitialDelay(time.Millisecond),
		WithJitter(0),
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	err := New(fastOptions(3)...).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoRetriesRetryableErrors(t *testing.T) {
	attempts := 0
	err := New(fastOptions(3)...).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	cause := errors.New("still down")
	attempts := 0
	err := New(fastOptions(3)...).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return Retryable(cause)
	})
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	// The Retryable wrapper is stripped from the final error
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want %v", err, cause)
	}
	if IsRetryable(err) {
		t.Error("final error should not carry the retryable wrapper")
	}
}

func TestDoStopsOnPlainError(t *testing.T) {
	attempts := 0
	err := New(fastOptions(3)...).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("not wrapped")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoStopsOnPermanentError(t *testing.T) {
	cause := errors.New("bad request")
	attempts := 0
	err := New(fastOptions(3)...).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return Permanent(cause)
	})
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want %v", err, cause)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := New(WithMaxAttempts(5), WithInitialDelay(10*time.Millisecond), WithJitter(0)).
		Do(ctx, func(ctx context.Context) error {
			attempts++
			cancel()
			return Retryable(errors.New("transient"))
		})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoCallsOnRetry(t *testing.T) {
	var retries []int
	opts := append(fastOptions(3), WithOnRetry(func(attempt int, err error, delay time.Duration) {
		retries = append(retries, attempt)
	}))
	_ = New(opts...).Do(context.Background(), func(ctx context.Context) error {
		return Retryable(errors.New("transient"))
	})
	if len(retries) != 2 {
		t.Errorf("OnRetry called %d times, want 2", len(retries))
	}
}

func TestCalculateDelayBackoffAndCap(t *testing.T) {
	r := New(
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(2.0),
		WithMaxDelay(300*time.Millisecond),
		WithJitter(0),
	)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 300 * time.Millisecond}, // capped
		{4, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := r.calculateDelay(tt.attempt); got != tt.want {
			t.Errorf("calculateDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestPackageLevelDo(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return Retryable(errors.New("transient"))
		}
		return nil
	}, fastOptions(3)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}
