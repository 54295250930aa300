package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "abc", truncateUTF8("abc", 10))

	got := truncateUTF8("aé", 2)
	assert.Equal(t, "a", got)
	assert.True(t, utf8.ValidString(got))
}

func TestGeminiService_Backoff(t *testing.T) {
	s := &GeminiService{BaseDelay: time.Second, MaxDelay: 5 * time.Second}
	assert.Equal(t, time.Second, s.calculateBackoff(1))
	assert.Equal(t, 4*time.Second, s.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, s.calculateBackoff(10))
}

func TestGeminiService_IsRetryable(t *testing.T) {
	s := &GeminiService{}
	assert.False(t, s.isRetryableError(nil))
	assert.False(t, s.isRetryableError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.True(t, s.isRetryableError(errors.New("read: connection reset by peer")))
	assert.False(t, s.isRetryableError(errors.New("invalid argument")))
}

func TestGeminiService_CircuitBreaker(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	s := &GeminiService{
		circuitBreakerMax: 2,
		CircuitCooldown:   30 * time.Second,
		now:               func() time.Time { return clock },
	}

	s.recordFailure(context.Background())
	s.recordFailure(context.Background())
	n, open := s.GetCircuitBreakerStatus()
	assert.Equal(t, 2, n)
	assert.True(t, open)

	_, err := s.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "circuit breaker open")

	clock = clock.Add(31 * time.Second)
	assert.NoError(t, s.checkCircuit(), "first call after the cooldown is let through")
	assert.ErrorContains(t, s.checkCircuit(), "circuit breaker open", "only one trial call at a time")

	s.recordSuccess()
	_, open = s.GetCircuitBreakerStatus()
	assert.False(t, open)
	assert.NoError(t, s.checkCircuit())
}

func TestGeminiService_FailedTrialRestartsCooldown(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	s := &GeminiService{
		circuitBreakerMax: 1,
		CircuitCooldown:   10 * time.Second,
		now:               func() time.Time { return clock },
	}
	s.recordFailure(context.Background())

	clock = clock.Add(11 * time.Second)
	assert.NoError(t, s.checkCircuit())
	s.recordFailure(context.Background())

	clock = clock.Add(5 * time.Second)
	assert.Error(t, s.checkCircuit())
	clock = clock.Add(6 * time.Second)
	assert.NoError(t, s.checkCircuit())
}

func TestGeminiService_CancelledCallsKeepBreakerClosed(t *testing.T) {
	s := &GeminiService{circuitBreakerMax: 5, CircuitCooldown: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range 10 {
		_, err := s.Generate(ctx, "prompt")
		assert.ErrorIs(t, err, context.Canceled)
		s.recordFailure(ctx)
	}

	n, open := s.GetCircuitBreakerStatus()
	assert.Equal(t, 0, n)
	assert.False(t, open)

	s.ResetCircuitBreaker()
	assert.NoError(t, s.checkCircuit())
}
