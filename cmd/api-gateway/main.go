package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/ajs-hub/placement-api/api/swagger"
	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/handler"
	"github.com/ajs-hub/placement-api/internal/middleware"
	"github.com/ajs-hub/placement-api/internal/repository"
	"github.com/ajs-hub/placement-api/internal/repository/memory"
	"github.com/ajs-hub/placement-api/internal/service"
	"github.com/ajs-hub/placement-api/pkg/cache"
	"github.com/ajs-hub/placement-api/pkg/config"
	"github.com/ajs-hub/placement-api/pkg/database"
	"github.com/ajs-hub/placement-api/pkg/jobs"
	"github.com/ajs-hub/placement-api/pkg/logger"
	corsmiddleware "github.com/ajs-hub/placement-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ajs-hub/placement-api/pkg/middleware/requestid"
)

// @title AJS-Hub Placement API
// @version 1.0.0
// @description Campus placement platform: student rosters, drive and job eligibility, tenant management.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	readiness := map[string]handler.ReadinessCheck{}

	stores, db, err := openStores(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
		readiness["postgres"] = db.PingContext
	}

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close() //nolint:errcheck
			readiness["redis"] = cacheRepo.Ping
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cacheRepo.Enabled())

	dispatcher := events.NewDispatcher(jobs.QueueConfig{
		Workers:    cfg.Events.Workers,
		BufferSize: cfg.Events.BufferSize,
		MaxRetries: cfg.Events.Retries,
		RetryDelay: 500 * time.Millisecond,
		Logger:     logr.Named("events"),
	})
	dispatcher.Subscribe(
		events.NewNotificationWriter(stores.Notifications),
		events.NewCacheInvalidator(cacheSvc, service.DashboardCachePattern),
	)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()
	publisher := service.NewMeteredPublisher(dispatcher, metricsSvc)

	users, err := memory.NewUserDirectory(memory.DemoUsers(), memory.DemoPassword, bcrypt.DefaultCost)
	if err != nil {
		logr.Fatal("failed to build user directory", zap.Error(err))
	}
	authSvc := service.NewAuthService(users, nil, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            "placement-api",
	})

	exportSvc := service.NewExportService(logr)
	studentSvc := service.NewStudentService(stores.Students, nil, publisher, metricsSvc, logr)
	driveSvc := service.NewDriveService(stores.Drives, stores.Students, exportSvc, nil, publisher, metricsSvc, logr)
	eligibilitySvc := service.NewEligibilityService(stores.Students, nil, metricsSvc, logr)
	jobSvc := service.NewJobService(stores.Jobs, stores.Students, nil, publisher, metricsSvc, logr)
	notificationSvc := service.NewNotificationService(stores.Notifications, logr)
	collegeSvc := service.NewCollegeService(stores.Colleges, nil, publisher, logr)
	departmentSvc := service.NewDepartmentService(stores.Departments, stores.Colleges, nil, publisher, logr)
	announcementSvc := service.NewAnnouncementService(stores.Announcements, nil, publisher, logr)
	eventSvc := service.NewEventService(stores.Events, stores.Students, nil, publisher, logr)
	meetingSvc := service.NewMeetingService(stores.Meetings, nil, publisher, logr)
	courseSvc := service.NewCourseService(stores.Courses, stores.Students, nil, publisher, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Students:      stores.Students,
		Drives:        stores.Drives,
		Jobs:          stores.Jobs,
		Colleges:      stores.Colleges,
		Departments:   stores.Departments,
		Notifications: stores.Notifications,
		Cache:         cacheSvc,
		Metrics:       metricsSvc,
		Logger:        logr,
		Config:        service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})

	metricsHandler := handler.NewMetricsHandler(metricsSvc, readiness)
	handlers := handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Students:      handler.NewStudentHandler(studentSvc, cfg.Import.MaxBytes),
		Drives:        handler.NewDriveHandler(driveSvc),
		Eligibility:   handler.NewEligibilityHandler(eligibilitySvc),
		Jobs:          handler.NewJobHandler(jobSvc),
		Notifications: handler.NewNotificationHandler(notificationSvc),
		Colleges:      handler.NewCollegeHandler(collegeSvc),
		Departments:   handler.NewDepartmentHandler(departmentSvc),
		Announcements: handler.NewAnnouncementHandler(announcementSvc),
		Events:        handler.NewEventHandler(eventSvc),
		Meetings:      handler.NewMeetingHandler(meetingSvc),
		Courses:       handler.NewCourseHandler(courseSvc),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc),
		Metrics:       metricsHandler,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	handler.RegisterOps(r, metricsHandler)
	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handlers, middleware.JWT(authSvc), logr.Named("audit"))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "store", cfg.Store.Driver, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openStores returns the configured repositories. The postgres store is
// migrated on start and seeded only when it holds no students.
func openStores(ctx context.Context, cfg *config.Config, logr *zap.Logger) (repository.Stores, *sqlx.DB, error) {
	if cfg.Store.Driver != config.StorePostgres {
		store := memory.NewStore()
		if cfg.Store.SeedDemo {
			if err := memory.Seed(ctx, store.Target(), time.Now()); err != nil {
				return repository.Stores{}, nil, err
			}
			logr.Info("memory store seeded with demo data")
		}
		return store.Stores(), nil, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return repository.Stores{}, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return repository.Stores{}, nil, fmt.Errorf("migrate: %w", err)
	}
	stores := repository.NewPostgresStores(db)
	if cfg.Store.SeedDemo {
		count, err := stores.Students.Count(ctx)
		if err != nil {
			_ = db.Close()
			return repository.Stores{}, nil, fmt.Errorf("count students: %w", err)
		}
		if count == 0 {
			if err := memory.Seed(ctx, memory.TargetOf(stores), time.Now()); err != nil {
				_ = db.Close()
				return repository.Stores{}, nil, fmt.Errorf("seed postgres: %w", err)
			}
			logr.Info("postgres store seeded with demo data")
		}
	}
	return stores, db, nil
}
