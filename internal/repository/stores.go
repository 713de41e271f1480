package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ajs-hub/placement-api/internal/models"
)

// StudentStore is implemented by the postgres and memory student repositories.
type StudentStore interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
	All(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByEnrollment(ctx context.Context, enrollment string) (*models.Student, error)
	ExistsByEnrollment(ctx context.Context, enrollment string, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	IncrementEnrolledJobs(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// DriveStore persists campus drives.
type DriveStore interface {
	List(ctx context.Context, filter models.DriveFilter) ([]models.Drive, int, error)
	FindByID(ctx context.Context, id string) (*models.Drive, error)
	Create(ctx context.Context, drive *models.Drive) error
	Update(ctx context.Context, drive *models.Drive) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// JobStore persists job postings.
type JobStore interface {
	List(ctx context.Context, filter models.JobFilter) ([]models.Job, int, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	IncrementApplicants(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CollegeStore persists tenant colleges.
type CollegeStore interface {
	List(ctx context.Context) ([]models.College, error)
	FindByID(ctx context.Context, id string) (*models.College, error)
	Create(ctx context.Context, college *models.College) error
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// DepartmentStore persists departments.
type DepartmentStore interface {
	List(ctx context.Context, filter models.DepartmentFilter) ([]models.Department, error)
	FindByID(ctx context.Context, id string) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// NotificationStore persists the notification feed.
type NotificationStore interface {
	List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, int, error)
	Create(ctx context.Context, n *models.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	CountUnread(ctx context.Context) (int, error)
}

// AnnouncementStore persists staff announcements.
type AnnouncementStore interface {
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, int, error)
	FindByID(ctx context.Context, id string) (*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id string) error
}

// EventStore persists department events and their registrations.
// FindByID loads registrations; List does not.
type EventStore interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.DepartmentEvent, int, error)
	FindByID(ctx context.Context, id string) (*models.DepartmentEvent, error)
	Create(ctx context.Context, event *models.DepartmentEvent) error
	Update(ctx context.Context, event *models.DepartmentEvent) error
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, registration *models.EventRegistration) error
	UpdateRegistration(ctx context.Context, eventID, studentID string, status models.RegistrationStatus) error
}

// MeetingStore persists scheduled meetings.
type MeetingStore interface {
	List(ctx context.Context) ([]models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id string) error
}

// CourseStore persists training courses and per-student progress.
// FindByID loads enrollments; List does not.
type CourseStore interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	SaveProgress(ctx context.Context, enrollment *models.CourseEnrollment) error
}

// Stores groups one implementation of every repository.
type Stores struct {
	Students      StudentStore
	Drives        DriveStore
	Jobs          JobStore
	Colleges      CollegeStore
	Departments   DepartmentStore
	Notifications NotificationStore
	Announcements AnnouncementStore
	Events        EventStore
	Meetings      MeetingStore
	Courses       CourseStore
}

// NewPostgresStores builds the sqlx-backed repositories on db.
func NewPostgresStores(db *sqlx.DB) Stores {
	return Stores{
		Students:      NewStudentRepository(db),
		Drives:        NewDriveRepository(db),
		Jobs:          NewJobRepository(db),
		Colleges:      NewCollegeRepository(db),
		Departments:   NewDepartmentRepository(db),
		Notifications: NewNotificationRepository(db),
		Announcements: NewAnnouncementRepository(db),
		Events:        NewEventRepository(db),
		Meetings:      NewMeetingRepository(db),
		Courses:       NewCourseRepository(db),
	}
}

var (
	_ StudentStore      = (*StudentRepository)(nil)
	_ DriveStore        = (*DriveRepository)(nil)
	_ JobStore          = (*JobRepository)(nil)
	_ CollegeStore      = (*CollegeRepository)(nil)
	_ DepartmentStore   = (*DepartmentRepository)(nil)
	_ NotificationStore = (*NotificationRepository)(nil)
	_ AnnouncementStore = (*AnnouncementRepository)(nil)
	_ EventStore        = (*EventRepository)(nil)
	_ MeetingStore      = (*MeetingRepository)(nil)
	_ CourseStore       = (*CourseRepository)(nil)
)
