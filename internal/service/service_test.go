package service

import (
	"testing"
	"time"

	"staffhub/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Todo{},
		&model.DailyUpdate{},
		&model.WorkingHoursSummary{},
		&model.Leave{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string, createdByID *uint) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
		IsVerified:   true,
		CreatedByID:  createdByID,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	return seedUser(t, db, email, model.RoleAdmin, nil)
}

func seedPM(t *testing.T, db *gorm.DB, email string, admin *model.User) *model.User {
	t.Helper()
	return seedUser(t, db, email, model.RolePM, &admin.ID)
}

func seedEmployee(t *testing.T, db *gorm.DB, email string, pm *model.User) *model.User {
	t.Helper()
	return seedUser(t, db, email, model.RoleEmployee, &pm.ID)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date.UTC()
}

// fakeMailer records enqueued verification tokens.
type fakeMailer struct {
	tokens []string
}

func (f *fakeMailer) EnqueueVerification(email, token string, userID uint) bool {
	f.tokens = append(f.tokens, token)
	return true
}

func (f *fakeMailer) Close() {}
