package memory

import (
	"context"
	"sort"

	"github.com/ajs-hub/placement-api/internal/models"
)

// DriveRepository keeps campus drives.
type DriveRepository struct {
	s *Store
}

// List returns drives ordered by drive date.
func (r *DriveRepository) List(_ context.Context, filter models.DriveFilter) ([]models.Drive, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]models.Drive, 0, len(r.s.drives))
	for _, drive := range r.s.drives {
		if filter.Status != "" && drive.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !contains(drive.Company, filter.Search) && !contains(drive.Role, filter.Search) {
			continue
		}
		matched = append(matched, cloneDrive(drive))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DriveDate.Equal(matched[j].DriveDate) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].DriveDate.Before(matched[j].DriveDate)
	})
	return page(matched, filter.Page, filter.PageSize), len(matched), nil
}

// FindByID fetches a drive.
func (r *DriveRepository) FindByID(_ context.Context, id string) (*models.Drive, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	drive, ok := r.s.drives[id]
	if !ok {
		return nil, errNotFound
	}
	drive = cloneDrive(drive)
	return &drive, nil
}

// Create inserts a drive.
func (r *DriveRepository) Create(_ context.Context, drive *models.Drive) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	drive.ID = newID(drive.ID)
	now := r.s.stamp()
	if drive.CreatedAt.IsZero() {
		drive.CreatedAt = now
	}
	drive.UpdatedAt = now
	r.s.drives[drive.ID] = cloneDrive(*drive)
	return nil
}

// Update replaces a drive.
func (r *DriveRepository) Update(_ context.Context, drive *models.Drive) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.drives[drive.ID]
	if !ok {
		return errNotFound
	}
	drive.CreatedAt = current.CreatedAt
	drive.UpdatedAt = r.s.stamp()
	r.s.drives[drive.ID] = cloneDrive(*drive)
	return nil
}

// Delete removes a drive.
func (r *DriveRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.drives[id]; !ok {
		return errNotFound
	}
	delete(r.s.drives, id)
	return nil
}

// Count returns the number of drives.
func (r *DriveRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.drives), nil
}

// JobRepository keeps job postings.
type JobRepository struct {
	s *Store
}

// List returns job postings ordered by deadline, undated postings last.
func (r *JobRepository) List(_ context.Context, filter models.JobFilter) ([]models.Job, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]models.Job, 0, len(r.s.jobs))
	for _, job := range r.s.jobs {
		if filter.Department != "" && !equalFold(job.Department, filter.Department) {
			continue
		}
		if filter.Search != "" && !contains(job.Title, filter.Search) && !contains(job.Company, filter.Search) {
			continue
		}
		matched = append(matched, cloneJob(job))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].Deadline, matched[j].Deadline
		switch {
		case a == nil && b == nil, a != nil && b != nil && a.Equal(*b):
			return matched[i].ID < matched[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Before(*b)
	})
	return page(matched, filter.Page, filter.PageSize), len(matched), nil
}

// FindByID fetches a job posting.
func (r *JobRepository) FindByID(_ context.Context, id string) (*models.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	job, ok := r.s.jobs[id]
	if !ok {
		return nil, errNotFound
	}
	job = cloneJob(job)
	return &job, nil
}

// Create inserts a job posting.
func (r *JobRepository) Create(_ context.Context, job *models.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job.ID = newID(job.ID)
	now := r.s.stamp()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	if job.Eligibility == nil {
		job.Eligibility = []string{}
	}
	r.s.jobs[job.ID] = cloneJob(*job)
	return nil
}

// IncrementApplicants bumps the applicant counter of a job.
func (r *JobRepository) IncrementApplicants(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	job, ok := r.s.jobs[id]
	if !ok {
		return errNotFound
	}
	job.Applicants++
	job.UpdatedAt = r.s.stamp()
	r.s.jobs[id] = job
	return nil
}

// Count returns the number of job postings.
func (r *JobRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.jobs), nil
}
