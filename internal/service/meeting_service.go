package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type meetingRepository interface {
	List(ctx context.Context) ([]models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id string) error
}

// MeetingService schedules placement meetings.
type MeetingService struct {
	repo      meetingRepository
	validator *validator.Validate
	publisher events.Publisher
	logger    *zap.Logger
}

// NewMeetingService constructs a MeetingService.
func NewMeetingService(repo meetingRepository, validate *validator.Validate, publisher events.Publisher, logger *zap.Logger) *MeetingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{repo: repo, validator: validate, publisher: publisherOrDiscard(publisher), logger: logger}
}

// List returns meetings in date order.
func (s *MeetingService) List(ctx context.Context) ([]models.Meeting, error) {
	meetings, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list meetings")
	}
	return meetings, nil
}

// Schedule stores a meeting and notifies users.
func (s *MeetingService) Schedule(ctx context.Context, req models.MeetingRequest) (*models.Meeting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid meeting payload")
	}
	date, err := parseDate(req.Date)
	if err != nil || date == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	meeting := &models.Meeting{
		Title:     strings.TrimSpace(req.Title),
		Date:      *date,
		Time:      strings.TrimSpace(req.Time),
		Location:  strings.TrimSpace(req.Location),
		Attendees: req.Attendees,
	}
	if err := s.repo.Create(ctx, meeting); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule meeting")
	}
	s.publisher.Publish(ctx, events.New(events.MeetingScheduled, meeting.ID, meeting.Title, map[string]string{
		events.AttrDate: meeting.Date.Format(dateLayout),
		events.AttrTime: meeting.Time,
	}))
	return meeting, nil
}

// Cancel removes a meeting.
func (s *MeetingService) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "meeting not found", "failed to cancel meeting")
	}
	return nil
}
