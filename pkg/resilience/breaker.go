// Package resilience wraps sony/gobreaker with Prometheus instrumentation and
// fallback helpers. Breakers guard the outbound dependencies of this service
// so a dead upstream degrades to static data or a clean error instead of
// piling up slow requests.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the breaker rejects the call outright.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Settings holds breaker tuning knobs.
type Settings struct {
	Name             string
	Interval         time.Duration // rolling window for failure counts
	Timeout          time.Duration // how long the breaker stays open
	FailureThreshold uint32        // consecutive failures before tripping
	SuccessThreshold uint32        // successes required to close from half-open
}

// Operation is a unit of work executed through a breaker.
type Operation func(ctx context.Context) (interface{}, error)

// CircuitBreaker guards a single downstream dependency.
type CircuitBreaker struct {
	name     string
	cb       *gobreaker.CircuitBreaker
	fallback FallbackFunc
}

// NewCircuitBreaker creates an instrumented breaker. fallback may be nil, in
// which case open-circuit calls return ErrCircuitOpen.
func NewCircuitBreaker(settings Settings, fallback FallbackFunc) *CircuitBreaker {
	name := nextBreakerName(settings.Name)

	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.SuccessThreshold,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		OnStateChange: func(n string, from, to gobreaker.State) {
			recordBreakerStateChange(n, from, to)
		},
	}

	recordBreakerState(name, gobreaker.StateClosed)

	return &CircuitBreaker{
		name:     name,
		cb:       gobreaker.NewCircuitBreaker(st),
		fallback: fallback,
	}
}

// Name returns the breaker's registered name.
func (b *CircuitBreaker) Name() string {
	return b.name
}

// Execute runs op through the breaker. When the breaker is open the fallback
// (if any) decides the result; otherwise ErrCircuitOpen is returned.
func (b *CircuitBreaker) Execute(ctx context.Context, op Operation) (interface{}, error) {
	recordBreakerRequest(b.name)

	result, err := b.cb.Execute(func() (interface{}, error) {
		return op(ctx)
	})
	if err == nil {
		return result, nil
	}

	recordBreakerFailure(b.name)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		recordBreakerFallback(b.name)
		if b.fallback != nil {
			return b.fallback(ctx, ErrCircuitOpen)
		}
		return nil, ErrCircuitOpen
	}

	return nil, err
}
