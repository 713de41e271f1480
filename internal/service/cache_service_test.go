package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/events"
)

func TestCacheServiceDisabledIsAlwaysMiss(t *testing.T) {
	repo := newMemoryCacheRepo()
	svc := NewCacheService(repo, nil, 0, nil, false)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k", map[string]int{"a": 1}, 0))
	assert.Empty(t, repo.entries)

	var out map[string]int
	hit, err := svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}

func TestCacheServiceRoundTripAndErrors(t *testing.T) {
	repo := newMemoryCacheRepo()
	metrics := NewMetricsService()
	svc := NewCacheService(repo, metrics, 0, nil, true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "dash:admin", map[string]int{"students": 20}, 0))
	var out map[string]int
	hit, err := svc.Get(ctx, "dash:admin", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 20, out["students"])

	repo.getErr = errors.New("broken pipe")
	hit, err = svc.Get(ctx, "dash:admin", &out)
	assert.Error(t, err)
	assert.False(t, hit)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.CacheHits)
	assert.Equal(t, uint64(1), snapshot.CacheMisses)
	assert.InDelta(t, 0.5, snapshot.CacheHitRatio, 0.0001)
}

func TestMeteredPublisherForwards(t *testing.T) {
	recorder := &events.Recorder{}
	metrics := NewMetricsService()
	publisher := NewMeteredPublisher(recorder, metrics)

	publisher.Publish(context.Background(), events.New(events.JobPosted, "j1", "Data Analyst", nil))
	publisher.Publish(context.Background(), events.New(events.JobEnrolled, "j1", "Riya", nil))
	assert.Equal(t, []events.Type{events.JobPosted, events.JobEnrolled}, recorder.Types())

	NewMeteredPublisher(nil, nil).Publish(context.Background(), events.New(events.DriveRemoved, "d1", "", nil))
}

func TestMetricsServiceSnapshotAverages(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveHTTPRequest("GET", "/api/v1/students", 200, 10_000_000)
	metrics.ObserveHTTPRequest("GET", "/api/v1/students", 200, 30_000_000)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(2), snapshot.RequestsTotal)
	assert.InDelta(t, 20.0, snapshot.AverageRequestDurationMs, 0.0001)
	assert.Positive(t, snapshot.Goroutines)

	var nilMetrics *MetricsService
	assert.Equal(t, uint64(0), nilMetrics.Snapshot().RequestsTotal)
	assert.NotNil(t, metrics.Handler())
}
