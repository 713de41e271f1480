package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

// DashboardCachePattern matches every cached dashboard payload.
const DashboardCachePattern = "dash:*"

const adminDashboardKey = "dash:admin"

type counter interface {
	Count(ctx context.Context) (int, error)
}

type unreadCounter interface {
	CountUnread(ctx context.Context) (int, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Students      counter
	Drives        counter
	Jobs          counter
	Colleges      counter
	Departments   counter
	Notifications unreadCounter
	Cache         *CacheService
	Metrics       *MetricsService
	Logger        *zap.Logger
	Config        DashboardServiceConfig
}

// DashboardService composes the admin overview and caches it.
type DashboardService struct {
	params DashboardServiceParams
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
	cfg    DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{params: params, cache: params.Cache, logger: logger, now: time.Now, cfg: cfg}
}

// Admin returns the admin summary and reports whether it came from cache.
func (s *DashboardService) Admin(ctx context.Context) (*models.AdminDashboard, bool, error) {
	if s.cache.Enabled() {
		var cached models.AdminDashboard
		// lookup failures are logged by the cache service; fall through to a fresh summary
		if hit, err := s.cache.Get(ctx, adminDashboardKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	summary, err := s.composeAdmin(ctx)
	if err != nil {
		return nil, false, err
	}
	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, adminDashboardKey, summary, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", adminDashboardKey), zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *DashboardService) composeAdmin(ctx context.Context) (*models.AdminDashboard, error) {
	summary := &models.AdminDashboard{GeneratedAt: s.now().UTC()}
	counts := []struct {
		label string
		src   counter
		dest  *int
	}{
		{"count_students", s.params.Students, &summary.Students},
		{"count_drives", s.params.Drives, &summary.Drives},
		{"count_jobs", s.params.Jobs, &summary.Jobs},
		{"count_colleges", s.params.Colleges, &summary.Colleges},
		{"count_departments", s.params.Departments, &summary.Departments},
	}
	for _, c := range counts {
		if c.src == nil {
			continue
		}
		start := time.Now()
		n, err := c.src.Count(ctx)
		s.params.Metrics.ObserveStoreQuery(c.label, time.Since(start))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard")
		}
		*c.dest = n
	}
	if s.params.Notifications != nil {
		start := time.Now()
		n, err := s.params.Notifications.CountUnread(ctx)
		s.params.Metrics.ObserveStoreQuery("count_unread_notifications", time.Since(start))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard")
		}
		summary.UnreadNotifications = n
	}
	return summary, nil
}
