package trm_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/food-order-service/pkg/trm"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	serialization := fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})
	deadlock := &pq.Error{Code: "40P01"}

	assert.True(t, trm.IsUniqueViolation(unique))
	assert.False(t, trm.IsUniqueViolation(serialization))
	assert.False(t, trm.IsUniqueViolation(errors.New("boom")))

	assert.True(t, trm.IsRetryable(serialization))
	assert.True(t, trm.IsRetryable(deadlock))
	assert.False(t, trm.IsRetryable(unique))
	assert.False(t, trm.IsRetryable(nil))

	tooLong := fmt.Errorf("insert: %w", &pq.Error{Code: "22001"})
	outOfRange := fmt.Errorf("upsert: %w", &pq.Error{Code: "22003"})

	assert.True(t, trm.IsStringTooLong(tooLong))
	assert.False(t, trm.IsStringTooLong(outOfRange))
	assert.True(t, trm.IsNumericOutOfRange(outOfRange))
	assert.False(t, trm.IsNumericOutOfRange(unique))
}
