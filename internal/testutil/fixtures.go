package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneybook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name. Categories are
// shared master data, not owned by any user.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	name := fmt.Sprintf("Test Category %d", nextID())
	return CreateTestCategoryWithName(t, db, name)
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBudget creates a budget for the given category spanning the
// current month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID uint, money int64) *models.Budget {
	t.Helper()

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Money:      money,
		StartDate:  start,
		EndDate:    start.AddDate(0, 1, -1),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpenditure creates an expenditure dated today.
func CreateTestExpenditure(t *testing.T, db *gorm.DB, userID, categoryID uint, money int64) *models.Expenditure {
	t.Helper()

	expenditure := &models.Expenditure{
		UserID:      userID,
		CategoryID:  categoryID,
		Money:       money,
		Comment:     fmt.Sprintf("Test Expenditure %d", nextID()),
		ExpenseDate: time.Now().Truncate(24 * time.Hour),
		IsSum:       true,
	}
	if err := db.Create(expenditure).Error; err != nil {
		t.Fatalf("failed to create test expenditure: %v", err)
	}
	return expenditure
}
