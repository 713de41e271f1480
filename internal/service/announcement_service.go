package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type announcementRepository interface {
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, int, error)
	FindByID(ctx context.Context, id string) (*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id string) error
}

// AnnouncementService publishes staff announcements.
type AnnouncementService struct {
	repo      announcementRepository
	validator *validator.Validate
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnnouncementService constructs an AnnouncementService.
func NewAnnouncementService(repo announcementRepository, validate *validator.Validate, publisher events.Publisher, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AnnouncementService{repo: repo, validator: validate, publisher: publisherOrDiscard(publisher), logger: logger,
		now: func() time.Time { return time.Now().UTC() }}
	_ = svc.validator.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		switch models.AnnouncementPriority(strings.ToLower(fl.Field().String())) {
		case models.AnnouncementPriorityHigh, models.AnnouncementPriorityMedium, models.AnnouncementPriorityLow:
			return true
		default:
			return false
		}
	})
	return svc
}

// List returns announcements newest first.
func (s *AnnouncementService) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, *models.Pagination, error) {
	filter.Priority = models.AnnouncementPriority(strings.ToLower(string(filter.Priority)))
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}
	return items, paginate(filter.Page, filter.PageSize, total), nil
}

// Get returns one announcement.
func (s *AnnouncementService) Get(ctx context.Context, id string) (*models.Announcement, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "announcement not found", "failed to get announcement")
	}
	return item, nil
}

// Create publishes an announcement and notifies users.
func (s *AnnouncementService) Create(ctx context.Context, req models.AnnouncementRequest, author string) (*models.Announcement, error) {
	item := &models.Announcement{CreatedBy: author}
	if err := s.apply(item, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}
	s.logger.Info("announcement posted", zap.String("id", item.ID), zap.String("priority", string(item.Priority)))
	s.publisher.Publish(ctx, events.New(events.AnnouncementPosted, item.ID, item.Title, nil))
	return item, nil
}

// Update edits an announcement. An empty priority keeps the current one.
func (s *AnnouncementService) Update(ctx context.Context, id string, req models.AnnouncementRequest) (*models.Announcement, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "announcement not found", "failed to get announcement")
	}
	if err := s.apply(item, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storeError(err, "announcement not found", "failed to update announcement")
	}
	return item, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "announcement not found", "failed to delete announcement")
	}
	return nil
}

func (s *AnnouncementService) apply(item *models.Announcement, req models.AnnouncementRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid announcement payload")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	item.Title = strings.TrimSpace(req.Title)
	item.Content = strings.TrimSpace(req.Content)
	switch {
	case req.Priority != "":
		item.Priority = models.AnnouncementPriority(strings.ToLower(string(req.Priority)))
	case item.Priority == "":
		item.Priority = models.AnnouncementPriorityMedium
	}
	switch {
	case date != nil:
		item.Date = *date
	case item.Date.IsZero():
		item.Date = s.now().Truncate(24 * time.Hour)
	}
	return nil
}
