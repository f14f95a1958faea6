package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

func testSettings(name string) Settings {
	return Settings{
		Name:             name,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 2,
		SuccessThreshold: 1,
	}
}

func TestCircuitBreaker_Success(t *testing.T) {
	cb := NewCircuitBreaker(testSettings("test-success"), nil)

	result, err := cb.Execute(context.Background(), func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestCircuitBreaker_PassesThroughError(t *testing.T) {
	cb := NewCircuitBreaker(testSettings("test-error"), nil)

	result, err := cb.Execute(context.Background(), func(ctx context.Context) (interface{}, error) {
		return nil, errUpstream
	})

	assert.Nil(t, result)
	assert.Equal(t, errUpstream, err)
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(testSettings("test-open"), nil)
	fail := func(ctx context.Context) (interface{}, error) { return nil, errUpstream }

	_, _ = cb.Execute(context.Background(), fail)
	_, _ = cb.Execute(context.Background(), fail)

	// Third call should be rejected without invoking the operation.
	called := false
	_, err := cb.Execute(context.Background(), func(ctx context.Context) (interface{}, error) {
		called = true
		return nil, nil
	})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "operation must not run while breaker is open")
}

func TestCircuitBreaker_StaticFallbackWhenOpen(t *testing.T) {
	cb := NewCircuitBreaker(testSettings("test-fallback"), StaticFallback("default"))
	fail := func(ctx context.Context) (interface{}, error) { return nil, errUpstream }

	_, _ = cb.Execute(context.Background(), fail)
	_, _ = cb.Execute(context.Background(), fail)

	result, err := cb.Execute(context.Background(), fail)

	require.NoError(t, err)
	assert.Equal(t, "default", result)
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(testSettings("test-recover"), nil)
	fail := func(ctx context.Context) (interface{}, error) { return nil, errUpstream }

	_, _ = cb.Execute(context.Background(), fail)
	_, _ = cb.Execute(context.Background(), fail)

	// Wait for the open window to elapse, then a success should close it.
	time.Sleep(80 * time.Millisecond)

	result, err := cb.Execute(context.Background(), func(ctx context.Context) (interface{}, error) {
		return "recovered", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
}

func TestBuildSettings_Defaults(t *testing.T) {
	s := BuildSettings("rates", 0, 0, 0, 0)

	assert.Equal(t, "rates", s.Name)
	assert.Equal(t, time.Minute, s.Interval)
	assert.Equal(t, 30*time.Second, s.Timeout)
	assert.Equal(t, uint32(5), s.FailureThreshold)
	assert.Equal(t, uint32(1), s.SuccessThreshold)
}
