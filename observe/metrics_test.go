package observe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*metricsImpl, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := mp.Meter("test")

	m, err := newMetrics(meter)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return m, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, name)
	if found == nil {
		t.Fatalf("%s metric not found", name)
	}

	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", found.Data)
	}
	if len(sum.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	return sum
}

// TestMetrics_HitCounterIncrements verifies cache.hits.total is incremented.
func TestMetrics_HitCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	m.RecordHit(context.Background(), meta)
	m.RecordHit(context.Background(), meta)

	sum := collectSum(t, reader, "cache.hits.total")
	if sum.DataPoints[0].Value != 2 {
		t.Errorf("expected count 2, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_MissCounterIncrements verifies cache.misses.total is incremented.
func TestMetrics_MissCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	m.RecordMiss(context.Background(), meta)

	sum := collectSum(t, reader, "cache.misses.total")
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected count 1, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_EvictionCounterIncrements verifies cache.evictions.total is incremented.
func TestMetrics_EvictionCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	m.RecordEviction(context.Background(), meta)

	sum := collectSum(t, reader, "cache.evictions.total")
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected count 1, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_OpCounterIncrements verifies cache.op.total is incremented.
func TestMetrics_OpCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	m.RecordOp(context.Background(), meta, "get", 100*time.Millisecond, nil)

	sum := collectSum(t, reader, "cache.op.total")
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected count 1, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_ErrorCounterOnSuccess verifies errors counter NOT incremented on success.
func TestMetrics_ErrorCounterOnSuccess(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	m.RecordOp(context.Background(), meta, "get", 50*time.Millisecond, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, "cache.op.errors")
	if found == nil {
		// If metric doesn't exist at all (no errors recorded), that's acceptable
		return
	}

	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		return // Different type, skip
	}
	if len(sum.DataPoints) > 0 && sum.DataPoints[0].Value != 0 {
		t.Errorf("expected errors count 0, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_ErrorCounterOnFailure verifies errors counter incremented on failure.
func TestMetrics_ErrorCounterOnFailure(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	testErr := errors.New("load failed")
	m.RecordOp(context.Background(), meta, "load", 50*time.Millisecond, testErr)

	sum := collectSum(t, reader, "cache.op.errors")
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected errors count 1, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_DurationHistogramRecords verifies duration is recorded.
func TestMetrics_DurationHistogramRecords(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}

	duration := 50 * time.Millisecond
	m.RecordOp(context.Background(), meta, "load", duration, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, "cache.op.duration_ms")
	if found == nil {
		t.Fatal("cache.op.duration_ms metric not found")
	}

	hist, ok := found.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", found.Data)
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}

	// Verify sum is approximately 50ms
	dp := hist.DataPoints[0]
	if dp.Sum < 40 || dp.Sum > 60 {
		t.Errorf("expected duration ~50ms, got %f", dp.Sum)
	}
}

// TestMetrics_LabelsApplied verifies labels include cache metadata.
func TestMetrics_LabelsApplied(t *testing.T) {
	m, reader := newTestMetrics(t)

	meta := CacheMeta{
		Name:     "sessions",
		Capacity: 256,
		Policy:   "lru",
	}
	m.RecordOp(context.Background(), meta, "get", 10*time.Millisecond, nil)

	sum := collectSum(t, reader, "cache.op.total")

	// Verify attributes
	attrs := sum.DataPoints[0].Attributes
	var foundName, foundCapacity, foundPolicy, foundOp bool
	for iter := attrs.Iter(); iter.Next(); {
		kv := iter.Attribute()
		switch string(kv.Key) {
		case "cache.name":
			foundName = true
			if kv.Value.AsString() != "sessions" {
				t.Errorf("expected cache.name='sessions', got %q", kv.Value.AsString())
			}
		case "cache.capacity":
			foundCapacity = true
			if kv.Value.AsInt64() != 256 {
				t.Errorf("expected cache.capacity=256, got %d", kv.Value.AsInt64())
			}
		case "cache.policy":
			foundPolicy = true
			if kv.Value.AsString() != "lru" {
				t.Errorf("expected cache.policy='lru', got %q", kv.Value.AsString())
			}
		case "cache.op":
			foundOp = true
			if kv.Value.AsString() != "get" {
				t.Errorf("expected cache.op='get', got %q", kv.Value.AsString())
			}
		}
	}

	if !foundName {
		t.Error("cache.name attribute not found")
	}
	if !foundCapacity {
		t.Error("cache.capacity attribute not found")
	}
	if !foundPolicy {
		t.Error("cache.policy attribute not found")
	}
	if !foundOp {
		t.Error("cache.op attribute not found")
	}
}

// TestMetrics_ConcurrentRecording verifies thread safety.
func TestMetrics_ConcurrentRecording(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := CacheMeta{Name: "sessions"}
	const numGoroutines = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			m.RecordHit(context.Background(), meta)
		}()
	}

	wg.Wait()

	sum := collectSum(t, reader, "cache.hits.total")
	if sum.DataPoints[0].Value != numGoroutines {
		t.Errorf("expected count %d, got %d", numGoroutines, sum.DataPoints[0].Value)
	}
}

// findMetric searches for a metric by name in ResourceMetrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}
