package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	testCases := []struct {
		name      string
		failures  []error
		retryable func(error) bool
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt succeeds", wantCalls: 1},
		{name: "succeeds after retries", failures: []error{errTemporary, errTemporary}, wantCalls: 3},
		{
			name:      "gives up after max attempts",
			failures:  []error{errTemporary, errTemporary, errTemporary, errTemporary},
			wantCalls: 3,
			wantErr:   errTemporary,
		},
		{
			name:      "non retryable stops immediately",
			failures:  []error{errFatal},
			retryable: func(err error) bool { return !errors.Is(err, errFatal) },
			wantCalls: 1,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			cfg := utils.RetryConfig{
				MaxAttempts:  3,
				InitialDelay: time.Millisecond,
				Retryable:    tc.retryable,
			}

			err := utils.Retry(context.Background(), cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			})

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour}, func() error {
		calls++
		return errors.New("always")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
