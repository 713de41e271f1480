package memory

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, Seed(context.Background(), store.Target(), time.Now()))
	return store
}

func TestSeedLoadsFixtures(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	count, _ := store.Students().Count(ctx)
	assert.Equal(t, 20, count)
	count, _ = store.Drives().Count(ctx)
	assert.Equal(t, 3, count)
	count, _ = store.Jobs().Count(ctx)
	assert.Equal(t, 5, count)
	count, _ = store.Colleges().Count(ctx)
	assert.Equal(t, 3, count)
	count, _ = store.Departments().Count(ctx)
	assert.Equal(t, 5, count)
	unread, _ := store.Notifications().CountUnread(ctx)
	assert.Equal(t, 3, unread)
	_, total, _ := store.Announcements().List(ctx, models.AnnouncementFilter{})
	assert.Equal(t, 2, total)
	_, total, _ = store.Events().List(ctx, models.EventFilter{ActiveOnly: true})
	assert.Equal(t, 2, total)
	courses, _ := store.Courses().List(ctx, models.CourseFilter{})
	assert.Len(t, courses, 3)

	all, err := store.Students().All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Riya Sharma", all[0].Name)
	assert.Equal(t, "Zoya Sheikh", all[19].Name)
}

func TestStudentRepositoryEnrollmentIsCaseInsensitive(t *testing.T) {
	store := seeded(t)
	repo := store.Students()
	ctx := context.Background()

	student, err := repo.FindByEnrollment(ctx, "eng20220045")
	require.NoError(t, err)
	assert.Equal(t, "1", student.ID)

	exists, _ := repo.ExistsByEnrollment(ctx, "Eng20220045", "")
	assert.True(t, exists)
	exists, _ = repo.ExistsByEnrollment(ctx, "ENG20220045", "1")
	assert.False(t, exists)

	err = repo.Create(ctx, &models.Student{EnrollmentNumber: "eng20220045", Name: "Copy"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	_, err = repo.FindByEnrollment(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryUpdateRekeysEnrollment(t *testing.T) {
	store := seeded(t)
	repo := store.Students()
	ctx := context.Background()

	student, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	student.EnrollmentNumber = "ENG-NEW"
	require.NoError(t, repo.Update(ctx, student))

	_, err = repo.FindByEnrollment(ctx, "ENG20220046")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	found, err := repo.FindByEnrollment(ctx, "eng-new")
	require.NoError(t, err)
	assert.Equal(t, "2", found.ID)
	assert.Equal(t, 1, found.EnrolledJobs)

	found.EnrollmentNumber = "ENG20220045"
	assert.ErrorIs(t, repo.Update(ctx, found), repository.ErrDuplicateKey)
	assert.ErrorIs(t, repo.Update(ctx, &models.Student{ID: "nope"}), sql.ErrNoRows)
}

func TestStudentRepositoryListFiltersAndPages(t *testing.T) {
	store := seeded(t)
	repo := store.Students()
	ctx := context.Background()

	students, total, err := repo.List(ctx, models.StudentFilter{Department: "electronics"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, students, 3)

	students, total, err = repo.List(ctx, models.StudentFilter{Search: "kapoor", SortBy: "cgpa", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Sanya Kapoor", students[0].Name)

	students, total, err = repo.List(ctx, models.StudentFilter{Page: 2, PageSize: 15})
	require.NoError(t, err)
	assert.Equal(t, 20, total)
	assert.Len(t, students, 5)
	assert.Equal(t, "Ishita Malhotra", students[0].Name)

	students, _, _ = repo.List(ctx, models.StudentFilter{Page: 9})
	assert.Empty(t, students)
}

func TestStudentRepositoryReturnsCopies(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	student, err := store.Students().FindByID(ctx, "1")
	require.NoError(t, err)
	student.Skills[0] = "Changed"
	student.Name = "Changed"

	again, _ := store.Students().FindByID(ctx, "1")
	assert.Equal(t, "Riya Sharma", again.Name)
	assert.Equal(t, "Python", again.Skills[0])
}

func TestCountersIncrement(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	require.NoError(t, store.Students().IncrementEnrolledJobs(ctx, "4"))
	require.NoError(t, store.Jobs().IncrementApplicants(ctx, "1"))
	assert.ErrorIs(t, store.Jobs().IncrementApplicants(ctx, "99"), sql.ErrNoRows)

	student, _ := store.Students().FindByID(ctx, "4")
	job, _ := store.Jobs().FindByID(ctx, "1")
	assert.Equal(t, 1, student.EnrolledJobs)
	assert.Equal(t, 26, job.Applicants)
}

func TestDriveRepositoryOrdersByDate(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	drives, total, err := store.Drives().List(ctx, models.DriveFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"d2", "d1", "d3"}, []string{drives[0].ID, drives[1].ID, drives[2].ID})

	drives, _, _ = store.Drives().List(ctx, models.DriveFilter{Status: models.DriveStatusAnnounced, Search: "goo"})
	require.Len(t, drives, 1)
	assert.Equal(t, "d3", drives[0].ID)

	require.NoError(t, store.Drives().Delete(ctx, "d3"))
	assert.ErrorIs(t, store.Drives().Delete(ctx, "d3"), sql.ErrNoRows)
}

func TestNotificationRepositoryLifecycle(t *testing.T) {
	store := seeded(t)
	repo := store.Notifications()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Notification{Title: "Job Enrollment", Type: models.NotificationTypeEnrollment}))
	items, total, err := repo.List(ctx, models.NotificationFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, "Job Enrollment", items[0].Title)
	assert.Equal(t, "New Announcement", items[3].Title)

	require.NoError(t, repo.MarkRead(ctx, "1"))
	assert.ErrorIs(t, repo.MarkRead(ctx, "missing"), sql.ErrNoRows)
	changed, _ := repo.MarkAllRead(ctx)
	assert.Equal(t, 3, changed)

	unreadOnly, _, _ := repo.List(ctx, models.NotificationFilter{UnreadOnly: true})
	assert.Empty(t, unreadOnly)

	require.NoError(t, repo.DeleteAll(ctx))
	_, total, _ = repo.List(ctx, models.NotificationFilter{})
	assert.Zero(t, total)
}

func TestDepartmentRepositoryFiltersByCollege(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	departments, err := store.Departments().List(ctx, models.DepartmentFilter{CollegeID: "2"})
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Civil Engineering", departments[0].Name)
	assert.Equal(t, "Mechanical", departments[1].Name)

	colleges, err := store.Colleges().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ABC College of Engineering", colleges[0].Name)
}

func TestStoreConcurrentCreates(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Students().Create(ctx, &models.Student{EnrollmentNumber: "SAME"})
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		}
	}
	assert.Equal(t, 1, created)
}
