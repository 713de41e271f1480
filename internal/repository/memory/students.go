package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
)

// StudentRepository keeps student records with a case-insensitive
// enrollment index.
type StudentRepository struct {
	s *Store
}

// List filters, sorts and pages students.
func (r *StudentRepository) List(_ context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]models.Student, 0, len(r.s.students))
	for _, student := range r.s.students {
		if filter.Department != "" && !strings.EqualFold(student.Department, filter.Department) {
			continue
		}
		if filter.Search != "" && !contains(student.Name, filter.Search) &&
			!contains(student.EnrollmentNumber, filter.Search) && !contains(student.Email, filter.Search) {
			continue
		}
		matched = append(matched, cloneStudent(student))
	}
	sortStudents(matched, filter.SortBy, strings.EqualFold(filter.SortOrder, "desc"))
	return page(matched, filter.Page, filter.PageSize), len(matched), nil
}

// All returns every student in creation order.
func (r *StudentRepository) All(_ context.Context) ([]models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	students := make([]models.Student, 0, len(r.s.students))
	for _, student := range r.s.students {
		students = append(students, cloneStudent(student))
	}
	sortStudents(students, "created_at", false)
	return students, nil
}

// FindByID fetches a student.
func (r *StudentRepository) FindByID(_ context.Context, id string) (*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	student, ok := r.s.students[id]
	if !ok {
		return nil, errNotFound
	}
	student = cloneStudent(student)
	return &student, nil
}

// FindByEnrollment fetches a student by enrollment number ignoring case.
func (r *StudentRepository) FindByEnrollment(_ context.Context, enrollment string) (*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.enrollments[models.EnrollmentKey(enrollment)]
	if !ok {
		return nil, errNotFound
	}
	student := cloneStudent(r.s.students[id])
	return &student, nil
}

// ExistsByEnrollment reports whether the enrollment number belongs to a
// student other than excludeID.
func (r *StudentRepository) ExistsByEnrollment(_ context.Context, enrollment string, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.enrollments[models.EnrollmentKey(enrollment)]
	return ok && id != excludeID, nil
}

// Create inserts a student.
func (r *StudentRepository) Create(_ context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := models.EnrollmentKey(student.EnrollmentNumber)
	if _, taken := r.s.enrollments[key]; taken {
		return repository.ErrDuplicateKey
	}
	student.ID = newID(student.ID)
	if _, taken := r.s.students[student.ID]; taken {
		return repository.ErrDuplicateKey
	}
	now := r.s.stamp()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	if student.Skills == nil {
		student.Skills = []string{}
	}
	r.s.students[student.ID] = cloneStudent(*student)
	r.s.enrollments[key] = student.ID
	return nil
}

// Update replaces a student, re-keying the enrollment index when the number changes.
func (r *StudentRepository) Update(_ context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.students[student.ID]
	if !ok {
		return errNotFound
	}
	oldKey := models.EnrollmentKey(current.EnrollmentNumber)
	newKey := models.EnrollmentKey(student.EnrollmentNumber)
	if owner, taken := r.s.enrollments[newKey]; taken && owner != student.ID {
		return repository.ErrDuplicateKey
	}
	student.CreatedAt = current.CreatedAt
	student.EnrolledJobs = current.EnrolledJobs
	student.UpdatedAt = r.s.stamp()
	if student.Skills == nil {
		student.Skills = []string{}
	}
	delete(r.s.enrollments, oldKey)
	r.s.enrollments[newKey] = student.ID
	r.s.students[student.ID] = cloneStudent(*student)
	return nil
}

// IncrementEnrolledJobs bumps the enrolled job counter of a student.
func (r *StudentRepository) IncrementEnrolledJobs(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	student, ok := r.s.students[id]
	if !ok {
		return errNotFound
	}
	student.EnrolledJobs++
	student.UpdatedAt = r.s.stamp()
	r.s.students[id] = student
	return nil
}

// Count returns the number of students.
func (r *StudentRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.students), nil
}

func sortStudents(students []models.Student, sortBy string, desc bool) {
	if _, ok := repository.StudentSorts[sortBy]; !ok {
		sortBy = "created_at"
	}
	compare := func(a, b models.Student) int {
		switch sortBy {
		case "name":
			return strings.Compare(a.Name, b.Name)
		case "enrollment_number":
			return strings.Compare(a.EnrollmentNumber, b.EnrollmentNumber)
		case "cgpa":
			return compareOptional(a.CGPA, b.CGPA)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	sort.SliceStable(students, func(i, j int) bool {
		c := compare(students[i], students[j])
		if c == 0 {
			return students[i].ID < students[j].ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareOptional places unknown values last in ascending order, like NULL in postgres.
func compareOptional(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
