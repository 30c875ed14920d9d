package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveStoreRead_CountsRowsOnlyOnSuccess(t *testing.T) {
	before := testutil.ToFloat64(StoreRecordsRead.WithLabelValues("metrics-test"))

	ObserveStoreRead("metrics-test", 10*time.Millisecond, 5, nil)
	ObserveStoreRead("metrics-test", 10*time.Millisecond, 7, errors.New("down"))

	after := testutil.ToFloat64(StoreRecordsRead.WithLabelValues("metrics-test"))
	if after-before != 5 {
		t.Fatalf("expected 5 rows counted, got %v", after-before)
	}
}

func TestSetBreakerState(t *testing.T) {
	SetBreakerState("metrics-test", 2)
	if got := testutil.ToFloat64(BreakerState.WithLabelValues("metrics-test")); got != 2 {
		t.Fatalf("expected breaker gauge 2, got %v", got)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/metrics-test", "200"))
	RecordHTTPRequest("GET", "/metrics-test", 200, time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/metrics-test", "200"))
	if after-before != 1 {
		t.Fatalf("expected one request recorded, got %v", after-before)
	}
}
