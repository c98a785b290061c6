package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fluxo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBlob stores a raw profile blob, bypassing validation. Tests use
// it to plant corrupt or legacy payloads.
func CreateTestBlob(t *testing.T, db *gorm.DB, userID, name, payload string) *models.ProfileBlob {
	t.Helper()

	blob := &models.ProfileBlob{UserID: userID, Name: name, Payload: payload}
	if err := db.Save(blob).Error; err != nil {
		t.Fatalf("failed to create test blob: %v", err)
	}
	return blob
}

// CountBlobs returns the number of stored blobs of a user.
func CountBlobs(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.ProfileBlob{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count blobs: %v", err)
	}
	return count
}
