package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ajs-hub/placement-api/internal/models"
)

const eventColumns = "id, title, description, type, event_date, start_time, location, online_link, max_participants, status, active, poster_url, registered, created_at, updated_at"

// EventRepository persists department events and their registrations.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events in date order.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.DepartmentEvent, int, error) {
	args := []interface{}{}
	conditions := []string{"1=1"}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)+1))
		args = append(args, filter.Type)
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "active")
	}
	where := "WHERE " + strings.Join(conditions, " AND ")
	_, size, offset := PageBounds(filter.Page, filter.PageSize)

	query := fmt.Sprintf("SELECT %s FROM events %s ORDER BY event_date, start_time, id LIMIT %d OFFSET %d", eventColumns, where, size, offset)
	var events []models.DepartmentEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM events "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}

// FindByID fetches an event with its registrations.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.DepartmentEvent, error) {
	var event models.DepartmentEvent
	if err := r.db.GetContext(ctx, &event, "SELECT "+eventColumns+" FROM events WHERE id = $1", id); err != nil {
		return nil, err
	}
	const query = "SELECT event_id, student_id, status, registered_at FROM event_registrations WHERE event_id = $1 ORDER BY registered_at, student_id"
	if err := r.db.SelectContext(ctx, &event.Registrations, query, id); err != nil {
		return nil, fmt.Errorf("list event registrations: %w", err)
	}
	return &event, nil
}

// Create inserts an event together with any registrations it already carries.
func (r *EventRepository) Create(ctx context.Context, event *models.DepartmentEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	event.Registered = len(event.Registrations)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create event: %w", err)
	}
	const query = `INSERT INTO events (id, title, description, type, event_date, start_time, location, online_link, max_participants,
        status, active, poster_url, registered, created_at, updated_at)
        VALUES (:id, :title, :description, :type, :event_date, :start_time, :location, :online_link, :max_participants,
        :status, :active, :poster_url, :registered, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create event: %w", err)
	}
	for i := range event.Registrations {
		reg := &event.Registrations[i]
		reg.EventID = event.ID
		if reg.RegisteredAt.IsZero() {
			reg.RegisteredAt = now
		}
		if err := insertRegistration(ctx, tx, reg); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create event: %w", err)
	}
	return nil
}

// Update modifies an event. The registration count is left alone.
func (r *EventRepository) Update(ctx context.Context, event *models.DepartmentEvent) error {
	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE events SET title = :title, description = :description, type = :type, event_date = :event_date,
        start_time = :start_time, location = :location, online_link = :online_link, max_participants = :max_participants,
        status = :status, active = :active, poster_url = :poster_url, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, event)
	return expectOne(res, err, "update event")
}

// Delete removes an event; registrations cascade.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	return expectOne(res, err, "delete event")
}

// Register adds a student to an event. The counter is bumped in the same
// statement that checks the cap, so concurrent registrations cannot overfill it.
func (r *EventRepository) Register(ctx context.Context, reg *models.EventRegistration) error {
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now().UTC()
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin register: %w", err)
	}
	const bump = `UPDATE events SET registered = registered + 1
        WHERE id = $1 AND (max_participants IS NULL OR registered < max_participants)`
	res, err := tx.ExecContext(ctx, bump, reg.EventID)
	if err := expectOne(res, err, "reserve event seat"); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCapacityReached
		}
		return err
	}
	if err := insertRegistration(ctx, tx, reg); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit register: %w", err)
	}
	return nil
}

// UpdateRegistration records attendance for a registered student.
func (r *EventRepository) UpdateRegistration(ctx context.Context, eventID, studentID string, status models.RegistrationStatus) error {
	res, err := r.db.ExecContext(ctx, "UPDATE event_registrations SET status = $1 WHERE event_id = $2 AND student_id = $3", status, eventID, studentID)
	return expectOne(res, err, "update registration")
}

func insertRegistration(ctx context.Context, tx *sqlx.Tx, reg *models.EventRegistration) error {
	if reg.Status == "" {
		reg.Status = models.RegistrationRegistered
	}
	const query = `INSERT INTO event_registrations (event_id, student_id, status, registered_at)
        VALUES (:event_id, :student_id, :status, :registered_at)`
	if _, err := tx.NamedExecContext(ctx, query, reg); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}
