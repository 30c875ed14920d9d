package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"rescue-dashboard/internal/domain/query"
)

// -------------------------
// Test repo
// -------------------------

type stubRepo struct {
	calls   int
	err     error
	block   bool
	records []Record
	gotProj query.Projection
}

func (r *stubRepo) Read(ctx context.Context, f query.Filter, p query.Projection) ([]Record, error) {
	r.calls++
	r.gotProj = p
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.records, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Read_UsesDefaultProjection(t *testing.T) {
	repo := &stubRepo{records: []Record{{Breed: "Beagle"}}}
	svc := NewService(repo, ServiceOptions{Backend: "stub"})

	out, err := svc.Read(context.Background(), query.All())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if !repo.gotProj.Excludes(IDField) {
		t.Fatalf("expected projection to exclude %s, got %#v", IDField, repo.gotProj)
	}
}

func TestService_Read_WrapsErrors(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewService(&stubRepo{err: cause}, ServiceOptions{Backend: "stub"})

	_, err := svc.Read(context.Background(), query.All())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestService_Read_AppliesTimeout(t *testing.T) {
	svc := NewService(&stubRepo{block: true}, ServiceOptions{Backend: "stub", Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := svc.Read(context.Background(), query.All())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("timeout not applied")
	}
}

func TestService_Read_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	repo := &stubRepo{err: errors.New("down")}
	svc := NewService(repo, ServiceOptions{
		Backend: "stub",
		Breaker: BreakerSettings{FailureThreshold: 2, Timeout: time.Minute},
	})

	for i := 0; i < 2; i++ {
		_, _ = svc.Read(context.Background(), query.All())
	}
	callsBefore := repo.calls

	_, err := svc.Read(context.Background(), query.All())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable with open breaker, got %v", err)
	}
	if repo.calls != callsBefore {
		t.Fatalf("expected open breaker to short-circuit the store, calls %d -> %d", callsBefore, repo.calls)
	}
}
