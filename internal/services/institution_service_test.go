package services

import (
	"math"
	"testing"

	"patrimon/internal/catalog"
	"patrimon/internal/models"
	"patrimon/internal/pagination"
	"patrimon/internal/testutil"
)

func TestConnect(t *testing.T) {
	t.Run("national_institution", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		inst, err := svc.Connect(Actor{UserID: user.ID}, "NuBank", "tok-123")
		testutil.AssertNoError(t, err)

		if inst.Name != "NuBank" {
			t.Errorf("expected name NuBank, got %s", inst.Name)
		}
		if inst.IsGlobal {
			t.Error("expected NuBank to be national")
		}
		if inst.LogoURI == "" {
			t.Error("expected catalog logo URI")
		}
		if inst.Balance < seedBalanceMin {
			t.Errorf("expected seeded balance >= %d, got %d", seedBalanceMin, inst.Balance)
		}
	})

	t.Run("global_institution", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		inst, err := svc.Connect(Actor{UserID: user.ID}, "Avenue", "tok-123")
		testutil.AssertNoError(t, err)

		if !inst.IsGlobal {
			t.Error("expected Avenue to be global")
		}
	})

	t.Run("seeds_cash_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		inst, err := svc.Connect(Actor{UserID: user.ID}, "Binance", "tok-123")
		testutil.AssertNoError(t, err)

		var assets []models.Asset
		if err := db.Where("institution_id = ?", inst.ID).Find(&assets).Error; err != nil {
			t.Fatalf("failed to load seeded assets: %v", err)
		}
		if len(assets) != 1 {
			t.Fatalf("expected 1 seeded asset, got %d", len(assets))
		}
		seed := assets[0]
		if seed.Category != models.CategoryCash {
			t.Errorf("expected cash category, got %s", seed.Category)
		}
		if seed.Value != inst.Balance {
			t.Errorf("expected seed value %d to match balance, got %d", inst.Balance, seed.Value)
		}
		if seed.IsGlobal != inst.IsGlobal {
			t.Error("expected seed asset to inherit the institution's region")
		}
	})

	t.Run("recomputes_shares", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Connect(Actor{UserID: user.ID}, "XP Investimentos", "tok-123")
		testutil.AssertNoError(t, err)
		_, err = svc.Connect(Actor{UserID: user.ID}, "Banco Inter", "tok-123")
		testutil.AssertNoError(t, err)

		var institutions []models.Institution
		if err := db.Where("user_id = ?", user.ID).Find(&institutions).Error; err != nil {
			t.Fatalf("failed to load institutions: %v", err)
		}

		var totalShare float64
		for _, inst := range institutions {
			if inst.SharePct <= 0 {
				t.Errorf("expected positive share for %s, got %f", inst.Name, inst.SharePct)
			}
			totalShare += inst.SharePct
		}
		if math.Abs(totalShare-100) > 0.0001 {
			t.Errorf("expected shares to sum to 100, got %f", totalShare)
		}
	})

	t.Run("unknown_institution", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Connect(Actor{UserID: user.ID}, "Not A Bank", "tok-123")
		testutil.AssertAppError(t, err, "UNKNOWN_INSTITUTION")
	})

	t.Run("missing_credential", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Connect(Actor{UserID: user.ID}, "NuBank", "   ")
		testutil.AssertAppError(t, err, "MISSING_CREDENTIAL")
	})

	t.Run("viewer_mode_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Connect(Actor{UserID: user.ID, ReadOnly: true}, "NuBank", "tok-123")
		testutil.AssertAppError(t, err, "READ_ONLY_MODE")

		var count int64
		db.Model(&models.Institution{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected no institutions created in viewer mode, got %d", count)
		}
	})
}

func TestGetUserInstitutions(t *testing.T) {
	t.Run("returns_user_institutions_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestInstitution(t, db, user1.ID, 100000)
		testutil.CreateTestInstitution(t, db, user1.ID, 200000)
		testutil.CreateTestInstitution(t, db, user2.ID, 300000)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserInstitutions(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 institutions, got %d", result.TotalItems)
		}
	})

	t.Run("ordered_by_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInstitutionService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestInstitution(t, db, user.ID, 100000)
		testutil.CreateTestInstitution(t, db, user.ID, 500000)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserInstitutions(user.ID, page)
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 || result.Data[0].Balance != 500000 {
			t.Error("expected the largest balance first")
		}
	})
}

func TestCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewInstitutionService(db)

	entries := svc.Catalog()
	if len(entries) != len(catalog.Entries) {
		t.Errorf("expected %d catalog entries, got %d", len(catalog.Entries), len(entries))
	}
}
