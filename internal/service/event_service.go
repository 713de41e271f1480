package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type eventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.DepartmentEvent, int, error)
	FindByID(ctx context.Context, id string) (*models.DepartmentEvent, error)
	Create(ctx context.Context, event *models.DepartmentEvent) error
	Update(ctx context.Context, event *models.DepartmentEvent) error
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, registration *models.EventRegistration) error
	UpdateRegistration(ctx context.Context, eventID, studentID string, status models.RegistrationStatus) error
}

type studentLookup interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// EventService manages department events and student registrations.
type EventService struct {
	repo      eventRepository
	students  studentLookup
	validator *validator.Validate
	publisher events.Publisher
	logger    *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo eventRepository, students studentLookup, validate *validator.Validate, publisher events.Publisher, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, students: students, validator: validate, publisher: publisherOrDiscard(publisher), logger: logger}
}

// List returns events in date order.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.DepartmentEvent, *models.Pagination, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return items, paginate(filter.Page, filter.PageSize, total), nil
}

// Get returns an event with its registrations.
func (s *EventService) Get(ctx context.Context, id string) (*models.DepartmentEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "event not found", "failed to get event")
	}
	return event, nil
}

// Create schedules an event. Status defaults to Upcoming and events start active.
func (s *EventService) Create(ctx context.Context, req models.EventRequest) (*models.DepartmentEvent, error) {
	event := &models.DepartmentEvent{Status: models.EventStatusUpcoming, Active: true}
	if err := s.apply(event, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	s.publisher.Publish(ctx, events.New(events.EventCreated, event.ID, event.Title, map[string]string{events.AttrTitle: event.Title}))
	return event, nil
}

// Update edits an event. A cap below the current registration count is rejected.
func (s *EventService) Update(ctx context.Context, id string, req models.EventRequest) (*models.DepartmentEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "event not found", "failed to get event")
	}
	if err := s.apply(event, req); err != nil {
		return nil, err
	}
	if event.MaxParticipants != nil && *event.MaxParticipants < event.Registered {
		return nil, appErrors.Clone(appErrors.ErrConflict, "max_participants is below the number already registered")
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, storeError(err, "event not found", "failed to update event")
	}
	s.publisher.Publish(ctx, events.New(events.EventUpdated, event.ID, event.Title, nil))
	return event, nil
}

// Delete removes an event and its registrations.
func (s *EventService) Delete(ctx context.Context, id string) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "event not found", "failed to get event")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "event not found", "failed to delete event")
	}
	s.publisher.Publish(ctx, events.New(events.EventRemoved, event.ID, event.Title, nil))
	return nil
}

// Register signs a student up for an active event that has not finished.
func (s *EventService) Register(ctx context.Context, eventID, studentID string) (*models.EventRegistration, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id is required")
	}
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, storeError(err, "event not found", "failed to get event")
	}
	if !event.Active || event.Status == models.EventStatusCompleted {
		return nil, appErrors.Clone(appErrors.ErrValidation, "event is not open for registration")
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	reg := &models.EventRegistration{EventID: event.ID, StudentID: student.ID, Status: models.RegistrationRegistered}
	if err := s.repo.Register(ctx, reg); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, appErrors.Clone(appErrors.ErrConflict, "student is already registered for this event")
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, appErrors.Clone(appErrors.ErrConflict, "event is full")
		}
		return nil, storeError(err, "event not found", "failed to register for event")
	}
	s.logger.Info("event registration", zap.String("event_id", event.ID), zap.String("student_id", student.ID))
	s.publisher.Publish(ctx, events.New(events.EventRegistered, event.ID, event.Title, map[string]string{
		events.AttrTitle:   event.Title,
		events.AttrStudent: student.ID,
	}))
	return reg, nil
}

// MarkAttendance records whether a registered student attended.
func (s *EventService) MarkAttendance(ctx context.Context, eventID, studentID string, req models.RegistrationStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid registration status")
	}
	if err := s.repo.UpdateRegistration(ctx, eventID, studentID, req.Status); err != nil {
		return storeError(err, "registration not found", "failed to update registration")
	}
	return nil
}

func (s *EventService) apply(event *models.DepartmentEvent, req models.EventRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid event payload")
	}
	date, err := parseDate(req.Date)
	if err != nil || date == nil {
		return appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	event.Title = strings.TrimSpace(req.Title)
	event.Description = strings.TrimSpace(req.Description)
	event.Type = req.Type
	event.Date = *date
	event.Time = req.Time
	event.Location = strings.TrimSpace(req.Location)
	event.OnlineLink = strings.TrimSpace(req.OnlineLink)
	event.MaxParticipants = req.MaxParticipants
	event.PosterURL = strings.TrimSpace(req.PosterURL)
	if req.Status != "" {
		event.Status = req.Status
	}
	if req.Active != nil {
		event.Active = *req.Active
	}
	return nil
}
