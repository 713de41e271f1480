package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type memoryCacheRepo struct {
	entries map[string][]byte
	getErr  error
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	for key := range m.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.entries, key)
		}
	}
	return nil
}

type errCounter struct{}

func (errCounter) Count(context.Context) (int, error) { return 0, errors.New("timeout") }

func newDashboard(t *testing.T, repo *memoryCacheRepo, metrics *MetricsService) *DashboardService {
	t.Helper()
	store := seededStore(t)
	return NewDashboardService(DashboardServiceParams{
		Students:      store.Students(),
		Drives:        store.Drives(),
		Jobs:          store.Jobs(),
		Colleges:      store.Colleges(),
		Departments:   store.Departments(),
		Notifications: store.Notifications(),
		Cache:         NewCacheService(repo, metrics, time.Minute, nil, true),
		Metrics:       metrics,
	})
}

func TestDashboardAdminCachesSummary(t *testing.T) {
	repo := newMemoryCacheRepo()
	metrics := NewMetricsService()
	svc := newDashboard(t, repo, metrics)
	ctx := context.Background()

	summary, hit, err := svc.Admin(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 20, summary.Students)
	assert.Equal(t, 3, summary.Drives)
	assert.Equal(t, 5, summary.Jobs)
	assert.Equal(t, 3, summary.Colleges)
	assert.Equal(t, 5, summary.Departments)
	assert.Equal(t, 3, summary.UnreadNotifications)

	cached, hit, err := svc.Admin(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, summary.Students, cached.Students)

	cache := NewCacheService(repo, nil, 0, nil, true)
	require.NoError(t, cache.Invalidate(ctx, DashboardCachePattern))
	_, hit, err = svc.Admin(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.CacheHits)
	assert.Equal(t, uint64(2), snapshot.CacheMisses)
	assert.Equal(t, uint64(12), snapshot.StoreQueryCount)
}

func TestDashboardAdminFallsBackWhenCacheFails(t *testing.T) {
	repo := newMemoryCacheRepo()
	repo.getErr = errors.New("redis unavailable")
	svc := newDashboard(t, repo, nil)

	summary, hit, err := svc.Admin(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 20, summary.Students)
}

func TestDashboardAdminWithoutCache(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{Students: errCounter{}})

	_, _, err := svc.Admin(context.Background())
	requireAppError(t, err, http.StatusInternalServerError)
}
