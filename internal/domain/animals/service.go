package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rescue-dashboard/internal/domain/query"
	"rescue-dashboard/internal/platform/logger"
	"rescue-dashboard/internal/platform/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

const DefaultReadTimeout = 5 * time.Second

// BreakerSettings configura el circuit breaker del store.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type ServiceOptions struct {
	Backend string
	Timeout time.Duration
	Breaker BreakerSettings
	Logger  logger.Logger
}

// Service envuelve el Repository con timeout, circuit breaker y métricas.
type Service struct {
	repo    Repository
	backend string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[[]Record]
	log     logger.Logger
}

func NewService(repo Repository, opts ServiceOptions) *Service {
	backend := strings.TrimSpace(opts.Backend)
	if backend == "" {
		backend = "unknown"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	threshold := opts.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	s := &Service{
		repo:    repo,
		backend: backend,
		timeout: timeout,
		log:     log.With(map[string]any{"component": "animals", "backend": backend}),
	}

	s.cb = gobreaker.NewCircuitBreaker[[]Record](gobreaker.Settings{
		Name:        "store-" + backend,
		MaxRequests: opts.Breaker.MaxRequests,
		Interval:    opts.Breaker.Interval,
		Timeout:     opts.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Un cliente que cancela no es una falla del store.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerState(name, int(to))
			s.log.Warn("store breaker state change", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
	metrics.SetBreakerState("store-"+backend, int(gobreaker.StateClosed))

	return s
}

func (s *Service) Backend() string { return s.backend }

// Read lee del store con la projection por defecto (sin _id).
// Toda falla se devuelve envuelta en ErrStoreUnavailable.
func (s *Service) Read(ctx context.Context, f query.Filter) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	out, err := s.cb.Execute(func() ([]Record, error) {
		return s.repo.Read(ctx, f, DefaultProjection)
	})
	metrics.ObserveStoreRead(s.backend, time.Since(start), len(out), err)

	if err != nil {
		s.log.Warn("store read failed", map[string]any{
			"filter": f.Map(),
			"error":  err,
		})
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.log.Debug("store read", map[string]any{
		"filter": f.Map(),
		"rows":   len(out),
		"took":   time.Since(start).String(),
	})
	return out, nil
}
