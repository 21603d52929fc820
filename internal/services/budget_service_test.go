package services

import (
	"testing"
	"time"

	"moneybook/internal/models"
	"moneybook/internal/testutil"

	"gorm.io/gorm"
)

func newTestBudgetService(db *gorm.DB) BudgetServicer {
	return NewBudgetService(db, NewCategoryService(db))
}

func TestCreateBudgets(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, "Food")
		testutil.CreateTestCategoryWithName(t, db, "Travel")

		budgets, err := svc.CreateBudgets(user.ID, start, end, []BudgetAllocation{
			{Category: "Food", Money: 100},
			{Category: "Travel", Money: 200},
		})
		testutil.AssertNoError(t, err)

		if len(budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(budgets))
		}
		// Rows come back in submission order.
		if budgets[0].Category.Name != "Food" || budgets[1].Category.Name != "Travel" {
			t.Errorf("expected [Food, Travel], got [%s, %s]", budgets[0].Category.Name, budgets[1].Category.Name)
		}
		if budgets[0].Money != 100 || budgets[1].Money != 200 {
			t.Errorf("expected amounts [100, 200], got [%d, %d]", budgets[0].Money, budgets[1].Money)
		}
		if !budgets[0].StartDate.Equal(start) || !budgets[0].EndDate.Equal(end) {
			t.Errorf("expected date range %v–%v, got %v–%v", start, end, budgets[0].StartDate, budgets[0].EndDate)
		}
	})

	t.Run("missing_date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, "Food")

		_, err := svc.CreateBudgets(user.ID, time.Time{}, end, []BudgetAllocation{{Category: "Food", Money: 100}})
		testutil.AssertAppError(t, err, "MISSING_DATE_RANGE")

		_, err = svc.CreateBudgets(user.ID, start, time.Time{}, []BudgetAllocation{{Category: "Food", Money: 100}})
		testutil.AssertAppError(t, err, "MISSING_DATE_RANGE")
	})

	t.Run("end_before_start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, "Food")

		_, err := svc.CreateBudgets(user.ID, end, start, []BudgetAllocation{{Category: "Food", Money: 100}})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_allocations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudgets(user.ID, start, end, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_category_rolls_back_batch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, "Food")

		_, err := svc.CreateBudgets(user.ID, start, end, []BudgetAllocation{
			{Category: "Food", Money: 100},
			{Category: "Yachts", Money: 200},
		})
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")

		// The valid first row must not survive the rollback.
		var count int64
		if err := db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count budgets: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 budgets after rollback, got %d", count)
		}
	})

	t.Run("negative_money", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, "Food")

		_, err := svc.CreateBudgets(user.ID, start, end, []BudgetAllocation{{Category: "Food", Money: -1}})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("returns_user_budgets_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, cat.ID, 100)
		testutil.CreateTestBudget(t, db, user1.ID, cat.ID, 200)
		testutil.CreateTestBudget(t, db, user2.ID, cat.ID, 300)

		budgets, err := svc.GetUserBudgets(user1.ID, nil)
		testutil.AssertNoError(t, err)

		if len(budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(budgets))
		}
		if budgets[0].Money != 100 || budgets[1].Money != 200 {
			t.Errorf("expected amounts [100, 200] in insertion order, got [%d, %d]", budgets[0].Money, budgets[1].Money)
		}
		if budgets[0].Category.Name != cat.Name {
			t.Errorf("expected category %q preloaded, got %q", cat.Name, budgets[0].Category.Name)
		}
	})

	t.Run("empty_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budgets, err := svc.GetUserBudgets(user.ID, nil)
		testutil.AssertNoError(t, err)
		if len(budgets) != 0 {
			t.Errorf("expected empty list, got %d budgets", len(budgets))
		}
	})

	t.Run("month_filter_matches_any_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		createAt := func(start time.Time, money int64) {
			budget := &models.Budget{
				UserID:     user.ID,
				CategoryID: cat.ID,
				Money:      money,
				StartDate:  start,
				EndDate:    start.AddDate(0, 1, -1),
			}
			if err := db.Create(budget).Error; err != nil {
				t.Fatalf("failed to create budget: %v", err)
			}
		}
		createAt(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), 100)
		createAt(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 200)
		createAt(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 300)

		month := 3
		budgets, err := svc.GetUserBudgets(user.ID, &month)
		testutil.AssertNoError(t, err)

		if len(budgets) != 2 {
			t.Fatalf("expected 2 March budgets across years, got %d", len(budgets))
		}
		if budgets[0].Money != 100 || budgets[1].Money != 200 {
			t.Errorf("expected amounts [100, 200], got [%d, %d]", budgets[0].Money, budgets[1].Money)
		}
	})
}

func TestGetBudgetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, user.ID, cat.ID, 100)

		budget, err := svc.GetBudgetByID(user.ID, created.ID)
		testutil.AssertNoError(t, err)
		if budget.ID != created.ID {
			t.Errorf("expected budget ID %d, got %d", created.ID, budget.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetByID(user.ID, 9999)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, owner.ID, cat.ID, 100)

		_, err := svc.GetBudgetByID(other.ID, created.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("update_money", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, user.ID, cat.ID, 100)

		money := int64(999)
		budget, err := svc.UpdateBudget(user.ID, created.ID, BudgetUpdate{Money: &money})
		testutil.AssertNoError(t, err)
		if budget.Money != 999 {
			t.Errorf("expected money 999, got %d", budget.Money)
		}
	})

	t.Run("update_category_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		oldCat := testutil.CreateTestCategory(t, db)
		newCat := testutil.CreateTestCategoryWithName(t, db, "Travel")
		created := testutil.CreateTestBudget(t, db, user.ID, oldCat.ID, 100)

		name := "Travel"
		budget, err := svc.UpdateBudget(user.ID, created.ID, BudgetUpdate{Category: &name})
		testutil.AssertNoError(t, err)
		if budget.CategoryID != newCat.ID {
			t.Errorf("expected category ID %d, got %d", newCat.ID, budget.CategoryID)
		}
		if budget.Category.Name != "Travel" {
			t.Errorf("expected category Travel, got %s", budget.Category.Name)
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, user.ID, cat.ID, 100)

		name := "Yachts"
		_, err := svc.UpdateBudget(user.ID, created.ID, BudgetUpdate{Category: &name})
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("end_before_start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, user.ID, cat.ID, 100)

		start := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.UpdateBudget(user.ID, created.ID, BudgetUpdate{StartDate: &start, EndDate: &end})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		money := int64(999)
		_, err := svc.UpdateBudget(user.ID, 9999, BudgetUpdate{Money: &money})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, user.ID, cat.ID, 100)

		testutil.AssertNoError(t, svc.DeleteBudget(user.ID, created.ID))

		_, err := svc.GetBudgetByID(user.ID, created.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		created := testutil.CreateTestBudget(t, db, owner.ID, cat.ID, 100)

		err := svc.DeleteBudget(other.ID, created.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestRecommendBudgets(t *testing.T) {
	t.Run("proportional_to_history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestCategoryWithName(t, db, "Food")
		travel := testutil.CreateTestCategoryWithName(t, db, "Travel")
		testutil.CreateTestCategoryWithName(t, db, "Housing")

		testutil.CreateTestBudget(t, db, user.ID, food.ID, 600)
		testutil.CreateTestBudget(t, db, user.ID, travel.ID, 400)

		rec, err := svc.RecommendBudgets(user.ID, 500, RecommendScopeUser)
		testutil.AssertNoError(t, err)

		if rec["Food"] != 300 {
			t.Errorf("expected Food 300, got %v", rec["Food"])
		}
		if rec["Travel"] != 200 {
			t.Errorf("expected Travel 200, got %v", rec["Travel"])
		}
		// Categories with no history still appear, at zero.
		if got, ok := rec["Housing"]; !ok || got != 0 {
			t.Errorf("expected Housing 0, got %v (present=%v)", got, ok)
		}
	})

	t.Run("shares_rounded_to_two_decimals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestCategoryWithName(t, db, "Food")
		travel := testutil.CreateTestCategoryWithName(t, db, "Travel")

		// Shares 1/3 and 2/3 round to 0.33 and 0.67, so the amounts
		// deliberately do not sum to the target.
		testutil.CreateTestBudget(t, db, user.ID, food.ID, 100)
		testutil.CreateTestBudget(t, db, user.ID, travel.ID, 200)

		rec, err := svc.RecommendBudgets(user.ID, 300, RecommendScopeUser)
		testutil.AssertNoError(t, err)

		if rec["Food"] != 99 {
			t.Errorf("expected Food 99, got %v", rec["Food"])
		}
		if rec["Travel"] != 201 {
			t.Errorf("expected Travel 201, got %v", rec["Travel"])
		}
	})

	t.Run("no_history_yields_all_zeros", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, "Food")
		testutil.CreateTestCategoryWithName(t, db, "Travel")

		rec, err := svc.RecommendBudgets(user.ID, 500, RecommendScopeUser)
		testutil.AssertNoError(t, err)

		if len(rec) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(rec))
		}
		for name, amount := range rec {
			if amount != 0 {
				t.Errorf("expected %s to be 0, got %v", name, amount)
			}
		}
	})

	t.Run("user_scope_ignores_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestCategoryWithName(t, db, "Food")
		travel := testutil.CreateTestCategoryWithName(t, db, "Travel")

		testutil.CreateTestBudget(t, db, user.ID, food.ID, 100)
		testutil.CreateTestBudget(t, db, other.ID, travel.ID, 900)

		rec, err := svc.RecommendBudgets(user.ID, 500, RecommendScopeUser)
		testutil.AssertNoError(t, err)

		if rec["Food"] != 500 {
			t.Errorf("expected Food 500, got %v", rec["Food"])
		}
		if rec["Travel"] != 0 {
			t.Errorf("expected Travel 0, got %v", rec["Travel"])
		}
	})

	t.Run("global_scope_aggregates_all_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestCategoryWithName(t, db, "Food")
		travel := testutil.CreateTestCategoryWithName(t, db, "Travel")

		testutil.CreateTestBudget(t, db, user.ID, food.ID, 300)
		testutil.CreateTestBudget(t, db, other.ID, travel.ID, 700)

		rec, err := svc.RecommendBudgets(user.ID, 1000, RecommendScopeGlobal)
		testutil.AssertNoError(t, err)

		if rec["Food"] != 300 {
			t.Errorf("expected Food 300, got %v", rec["Food"])
		}
		if rec["Travel"] != 700 {
			t.Errorf("expected Travel 700, got %v", rec["Travel"])
		}
	})
}
