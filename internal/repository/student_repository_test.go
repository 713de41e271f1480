package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func studentRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "enrollment_number", "name", "email", "department", "cgpa", "backlogs", "skills", "created_at", "updated_at"}).
		AddRow("1", "ENG20220045", "Riya Sharma", "riya@xyz.edu", "Computer Science", 8.7, 0, []byte("{Python,SQL}"), now, now)
}

func TestStudentRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT .* FROM students WHERE 1=1 AND LOWER\(department\) = \$1 AND \(LOWER\(name\) LIKE \$2 OR LOWER\(enrollment_number\) LIKE \$2 OR LOWER\(email\) LIKE \$2\) ORDER BY cgpa DESC, id LIMIT 10 OFFSET 10`).
		WithArgs("computer science", "%riya%").
		WillReturnRows(studentRows())
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM students WHERE 1=1 AND LOWER\(department\)`).
		WithArgs("computer science", "%riya%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	students, total, err := repo.List(context.Background(), models.StudentFilter{
		Department: "Computer Science", Search: "Riya", Page: 2, PageSize: 10, SortBy: "cgpa", SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 11, total)
	assert.Equal(t, "ENG20220045", students[0].EnrollmentNumber)
	require.NotNil(t, students[0].CGPA)
	assert.Equal(t, 8.7, *students[0].CGPA)
	assert.Equal(t, []string{"Python", "SQL"}, []string(students[0].Skills))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListDefaultsSort(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`FROM students WHERE 1=1 ORDER BY created_at ASC, id LIMIT 20 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM students WHERE 1=1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	students, total, err := repo.List(context.Background(), models.StudentFilter{SortBy: "password; DROP", SortOrder: "sideways"})
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByEnrollmentIgnoresCase(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`FROM students WHERE LOWER\(enrollment_number\) = LOWER\(\$1\)`).
		WithArgs("ENG20220045").
		WillReturnRows(studentRows())

	student, err := repo.FindByEnrollment(context.Background(), " ENG20220045 ")
	require.NoError(t, err)
	assert.Equal(t, "1", student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`FROM students WHERE id = \$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryExistsByEnrollment(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT 1 FROM students WHERE LOWER\(enrollment_number\) = LOWER\(\$1\) LIMIT 1`).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectQuery(`SELECT 1 FROM students WHERE LOWER\(enrollment_number\) = LOWER\(\$1\) AND id <> \$2 LIMIT 1`).
		WithArgs("E1", "7").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByEnrollment(context.Background(), "E1", "")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEnrollment(context.Background(), "E1", "7")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnResult(sqlmock.NewResult(1, 1))

	student := &models.Student{EnrollmentNumber: "E1", Name: "A", Email: "a@x", Department: "CSE"}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.NotEmpty(t, student.ID)
	assert.False(t, student.CreatedAt.IsZero())
	assert.NotNil(t, student.Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Student{EnrollmentNumber: "E1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestStudentRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Student{ID: "nope"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStudentRepositoryIncrementEnrolledJobs(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(`UPDATE students SET enrolled_jobs = enrolled_jobs \+ 1`).
		WithArgs("4", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementEnrolledJobs(context.Background(), "4"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageBounds(t *testing.T) {
	page, size, offset := PageBounds(0, 0)
	assert.Equal(t, []int{1, 20, 0}, []int{page, size, offset})

	page, size, offset = PageBounds(3, 50)
	assert.Equal(t, []int{3, 50, 100}, []int{page, size, offset})

	_, size, _ = PageBounds(1, 500)
	assert.Equal(t, 20, size)
}
