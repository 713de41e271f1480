package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ajs-hub/placement-api/internal/models"
)

const driveColumns = "id, company, role, ctc_lpa, drive_date, deadline, description, criteria, status, created_at, updated_at"

// DriveRepository persists campus drives. Criteria are stored as JSONB.
type DriveRepository struct {
	db *sqlx.DB
}

// NewDriveRepository constructs a DriveRepository.
func NewDriveRepository(db *sqlx.DB) *DriveRepository {
	return &DriveRepository{db: db}
}

// List returns drives ordered by drive date.
func (r *DriveRepository) List(ctx context.Context, filter models.DriveFilter) ([]models.Drive, int, error) {
	args := []interface{}{}
	conditions := []string{"1=1"}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(company) LIKE $%d OR LOWER(role) LIKE $%d)", idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	where := "WHERE " + strings.Join(conditions, " AND ")
	_, size, offset := PageBounds(filter.Page, filter.PageSize)

	query := fmt.Sprintf("SELECT %s FROM drives %s ORDER BY drive_date ASC, id LIMIT %d OFFSET %d", driveColumns, where, size, offset)
	var drives []models.Drive
	if err := r.db.SelectContext(ctx, &drives, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list drives: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM drives "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count drives: %w", err)
	}
	return drives, total, nil
}

// FindByID fetches a drive.
func (r *DriveRepository) FindByID(ctx context.Context, id string) (*models.Drive, error) {
	var drive models.Drive
	if err := r.db.GetContext(ctx, &drive, "SELECT "+driveColumns+" FROM drives WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &drive, nil
}

// Create inserts a drive.
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	if drive.ID == "" {
		drive.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if drive.CreatedAt.IsZero() {
		drive.CreatedAt = now
	}
	drive.UpdatedAt = now
	const query = `INSERT INTO drives (id, company, role, ctc_lpa, drive_date, deadline, description, criteria, status, created_at, updated_at)
        VALUES (:id, :company, :role, :ctc_lpa, :drive_date, :deadline, :description, :criteria, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, drive); err != nil {
		return fmt.Errorf("create drive: %w", err)
	}
	return nil
}

// Update replaces a drive's mutable fields.
func (r *DriveRepository) Update(ctx context.Context, drive *models.Drive) error {
	drive.UpdatedAt = time.Now().UTC()
	const query = `UPDATE drives SET company = :company, role = :role, ctc_lpa = :ctc_lpa, drive_date = :drive_date, deadline = :deadline,
        description = :description, criteria = :criteria, status = :status, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, drive)
	return expectOne(res, err, "update drive")
}

// Delete removes a drive.
func (r *DriveRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM drives WHERE id = $1", id)
	return expectOne(res, err, "delete drive")
}

// Count returns the number of drives.
func (r *DriveRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM drives"); err != nil {
		return 0, fmt.Errorf("count drives: %w", err)
	}
	return total, nil
}
