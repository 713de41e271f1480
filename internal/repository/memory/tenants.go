package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/ajs-hub/placement-api/internal/models"
)

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }

// CollegeRepository keeps tenant colleges.
type CollegeRepository struct {
	s *Store
}

// List returns all colleges by name.
func (r *CollegeRepository) List(_ context.Context) ([]models.College, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	colleges := make([]models.College, 0, len(r.s.colleges))
	for _, college := range r.s.colleges {
		colleges = append(colleges, college)
	}
	sort.SliceStable(colleges, func(i, j int) bool {
		if colleges[i].Name == colleges[j].Name {
			return colleges[i].ID < colleges[j].ID
		}
		return colleges[i].Name < colleges[j].Name
	})
	return colleges, nil
}

// FindByID fetches a college.
func (r *CollegeRepository) FindByID(_ context.Context, id string) (*models.College, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	college, ok := r.s.colleges[id]
	if !ok {
		return nil, errNotFound
	}
	return &college, nil
}

// Create inserts a college.
func (r *CollegeRepository) Create(_ context.Context, college *models.College) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	college.ID = newID(college.ID)
	now := r.s.stamp()
	if college.CreatedAt.IsZero() {
		college.CreatedAt = now
	}
	college.UpdatedAt = now
	r.s.colleges[college.ID] = *college
	return nil
}

// Update replaces a college.
func (r *CollegeRepository) Update(_ context.Context, college *models.College) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.colleges[college.ID]
	if !ok {
		return errNotFound
	}
	college.CreatedAt = current.CreatedAt
	college.UpdatedAt = r.s.stamp()
	r.s.colleges[college.ID] = *college
	return nil
}

// Delete removes a college.
func (r *CollegeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.colleges[id]; !ok {
		return errNotFound
	}
	delete(r.s.colleges, id)
	return nil
}

// Count returns the number of colleges.
func (r *CollegeRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.colleges), nil
}

// DepartmentRepository keeps departments of tenant colleges.
type DepartmentRepository struct {
	s *Store
}

// List returns departments by name, optionally for one college.
func (r *DepartmentRepository) List(_ context.Context, filter models.DepartmentFilter) ([]models.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	departments := make([]models.Department, 0, len(r.s.departments))
	for _, department := range r.s.departments {
		if filter.CollegeID != "" && department.CollegeID != filter.CollegeID {
			continue
		}
		departments = append(departments, department)
	}
	sort.SliceStable(departments, func(i, j int) bool {
		if departments[i].Name == departments[j].Name {
			return departments[i].ID < departments[j].ID
		}
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

// FindByID fetches a department.
func (r *DepartmentRepository) FindByID(_ context.Context, id string) (*models.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	department, ok := r.s.departments[id]
	if !ok {
		return nil, errNotFound
	}
	return &department, nil
}

// Create inserts a department.
func (r *DepartmentRepository) Create(_ context.Context, department *models.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	department.ID = newID(department.ID)
	now := r.s.stamp()
	if department.CreatedAt.IsZero() {
		department.CreatedAt = now
	}
	department.UpdatedAt = now
	r.s.departments[department.ID] = *department
	return nil
}

// Update replaces a department.
func (r *DepartmentRepository) Update(_ context.Context, department *models.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.departments[department.ID]
	if !ok {
		return errNotFound
	}
	department.CreatedAt = current.CreatedAt
	department.UpdatedAt = r.s.stamp()
	r.s.departments[department.ID] = *department
	return nil
}

// Delete removes a department.
func (r *DepartmentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.departments[id]; !ok {
		return errNotFound
	}
	delete(r.s.departments, id)
	return nil
}

// Count returns the number of departments.
func (r *DepartmentRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.departments), nil
}
