package memory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ajs-hub/placement-api/internal/models"
)

// DemoPassword is shared by every compiled-in account.
const DemoPassword = "password123"

// UserDirectory is a read-only set of accounts looked up by email or ID.
type UserDirectory struct {
	byID    map[string]models.User
	byEmail map[string]string
}

// DemoUsers returns the compiled-in accounts without password hashes.
func DemoUsers() []models.User {
	return []models.User{
		{ID: "1", Email: "admin@saas.com", FullName: "Admin User", Role: models.RoleAdmin},
		{ID: "2", Email: "dept1@saas.com", FullName: "Computer Science Dept", Role: models.RoleDepartment},
		{ID: "3", Email: "dept2@saas.com", FullName: "Mathematics Dept", Role: models.RoleDepartment},
		{ID: "4", Email: "student1@saas.com", FullName: "John Doe", Role: models.RoleStudent, StudentID: "1"},
		{ID: "5", Email: "student2@saas.com", FullName: "Jane Smith", Role: models.RoleStudent, StudentID: "2"},
		{ID: "6", Email: "student3@saas.com", FullName: "Mike Johnson", Role: models.RoleStudent, StudentID: "3"},
	}
}

// NewUserDirectory hashes password for every user and indexes them.
func NewUserDirectory(users []models.User, password string, cost int) (*UserDirectory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	dir := &UserDirectory{byID: make(map[string]models.User, len(users)), byEmail: make(map[string]string, len(users))}
	for _, user := range users {
		user.PasswordHash = string(hash)
		dir.byID[user.ID] = user
		dir.byEmail[strings.ToLower(user.Email)] = user.ID
	}
	return dir, nil
}

// FindByEmail looks an account up ignoring case.
func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	id, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, errNotFound
	}
	user := d.byID[id]
	return &user, nil
}

// FindByID looks an account up by ID.
func (d *UserDirectory) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := d.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return &user, nil
}
