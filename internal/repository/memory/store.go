// Package memory is the default store: every repository of the postgres
// store, kept in process maps behind one lock. Missing rows surface as
// sql.ErrNoRows and unique clashes as repository.ErrDuplicateKey so services
// treat both stores the same way.
package memory

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
)

// Store holds all entities of one running instance.
type Store struct {
	mu            sync.RWMutex
	students      map[string]models.Student
	enrollments   map[string]string
	drives        map[string]models.Drive
	jobs          map[string]models.Job
	notifications map[string]models.Notification
	colleges      map[string]models.College
	departments   map[string]models.Department
	announcements map[string]models.Announcement
	events        map[string]models.DepartmentEvent
	meetings      map[string]models.Meeting
	courses       map[string]models.Course
	seq           int64
	now           func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		students:      make(map[string]models.Student),
		enrollments:   make(map[string]string),
		drives:        make(map[string]models.Drive),
		jobs:          make(map[string]models.Job),
		notifications: make(map[string]models.Notification),
		colleges:      make(map[string]models.College),
		departments:   make(map[string]models.Department),
		announcements: make(map[string]models.Announcement),
		events:        make(map[string]models.DepartmentEvent),
		meetings:      make(map[string]models.Meeting),
		courses:       make(map[string]models.Course),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Stores exposes every repository of the store.
func (s *Store) Stores() repository.Stores {
	return repository.Stores{
		Students: s.Students(), Drives: s.Drives(), Jobs: s.Jobs(),
		Colleges: s.Colleges(), Departments: s.Departments(), Notifications: s.Notifications(),
		Announcements: s.Announcements(), Events: s.Events(), Meetings: s.Meetings(), Courses: s.Courses(),
	}
}

// Students exposes the student repository.
func (s *Store) Students() *StudentRepository { return &StudentRepository{s: s} }

// Drives exposes the drive repository.
func (s *Store) Drives() *DriveRepository { return &DriveRepository{s: s} }

// Jobs exposes the job repository.
func (s *Store) Jobs() *JobRepository { return &JobRepository{s: s} }

// Notifications exposes the notification repository.
func (s *Store) Notifications() *NotificationRepository { return &NotificationRepository{s: s} }

// Colleges exposes the college repository.
func (s *Store) Colleges() *CollegeRepository { return &CollegeRepository{s: s} }

// Departments exposes the department repository.
func (s *Store) Departments() *DepartmentRepository { return &DepartmentRepository{s: s} }

// Announcements exposes the announcement repository.
func (s *Store) Announcements() *AnnouncementRepository { return &AnnouncementRepository{s: s} }

// Events exposes the department event repository.
func (s *Store) Events() *EventRepository { return &EventRepository{s: s} }

// Meetings exposes the meeting repository.
func (s *Store) Meetings() *MeetingRepository { return &MeetingRepository{s: s} }

// Courses exposes the course repository.
func (s *Store) Courses() *CourseRepository { return &CourseRepository{s: s} }

// stamp returns a strictly increasing timestamp so creation order survives
// sorting even when the clock does not advance between inserts.
func (s *Store) stamp() time.Time {
	s.seq++
	return s.now().Add(time.Duration(s.seq) * time.Nanosecond)
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func page[T any](items []T, pageNum, size int) []T {
	_, size, offset := repository.PageBounds(pageNum, size)
	if offset >= len(items) {
		return []T{}
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStudent(student models.Student) models.Student {
	student.Skills = cloneStrings(student.Skills)
	return student
}

func cloneDrive(drive models.Drive) models.Drive {
	drive.Criteria.RequiredSkills = cloneStrings(drive.Criteria.RequiredSkills)
	return drive
}

func cloneJob(job models.Job) models.Job {
	job.Eligibility = cloneStrings(job.Eligibility)
	return job
}

var errNotFound = sql.ErrNoRows
