package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"patrimon/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

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

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Currency: "BRL",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestInstitution creates a national institution with the given balance (in cents).
func CreateTestInstitution(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Institution {
	t.Helper()

	institution := &models.Institution{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Institution %d", nextID()),
		Balance: balance,
	}
	if err := db.Create(institution).Error; err != nil {
		t.Fatalf("failed to create test institution: %v", err)
	}
	return institution
}

// CreateTestAsset creates an asset in the given category with the given
// value and invested amount (in cents).
func CreateTestAsset(t *testing.T, db *gorm.DB, userID, institutionID string, category models.AssetCategory, value, invested int64) *models.Asset {
	t.Helper()

	n := nextID()
	asset := &models.Asset{
		UserID:        userID,
		InstitutionID: institutionID,
		Name:          fmt.Sprintf("Test Asset %d", n),
		Ticker:        fmt.Sprintf("TST%d", n),
		Category:      category,
		Value:         value,
		Invested:      invested,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestGlobalAsset creates an asset flagged as global.
func CreateTestGlobalAsset(t *testing.T, db *gorm.DB, userID, institutionID string, category models.AssetCategory, value, invested int64) *models.Asset {
	t.Helper()

	asset := CreateTestAsset(t, db, userID, institutionID, category, value, invested)
	if err := db.Model(asset).Update("is_global", true).Error; err != nil {
		t.Fatalf("failed to flag test asset as global: %v", err)
	}
	asset.IsGlobal = true
	return asset
}

// CreateTestGoal creates a financial goal due in six months.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string) *models.FinancialGoal {
	t.Helper()

	goal := &models.FinancialGoal{
		UserID:        userID,
		Title:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  1000000, // R$ 10.000,00
		CurrentAmount: 250000,
		Deadline:      time.Now().AddDate(0, 6, 0),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
