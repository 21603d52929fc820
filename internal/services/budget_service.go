package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db         *gorm.DB
	categories CategoryServicer
}

// NewBudgetService creates a new BudgetServicer. Category name resolution is
// delegated to the injected CategoryServicer.
func NewBudgetService(db *gorm.DB, categories CategoryServicer) BudgetServicer {
	return &budgetService{db: db, categories: categories}
}

// GetUserBudgets returns the user's budgets in insertion order. If month is
// set (1–12), only budgets whose start date falls in that calendar month are
// returned, regardless of year.
func (s *budgetService) GetUserBudgets(userID uint, month *int) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Category").Where("user_id = ?", userID).
		Order("id").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if month == nil {
		return budgets, nil
	}

	// Month extraction functions differ between PostgreSQL and SQLite, so the
	// month filter is applied here instead of in SQL.
	filtered := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if int(b.StartDate.Month()) == *month {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// CreateBudgets inserts one budget row per allocation, all sharing the given
// owner and date range. The whole batch runs in a single transaction: an
// unresolvable category name or invalid amount rolls back every insert from
// this call. Created rows are returned in allocation order.
func (s *budgetService) CreateBudgets(userID uint, startDate, endDate time.Time, allocations []BudgetAllocation) ([]models.Budget, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, apperrors.ErrMissingDateRange
	}
	if endDate.Before(startDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must not be before start_date")
	}
	if len(allocations) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget_data must not be empty")
	}

	created := make([]models.Budget, 0, len(allocations))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, alloc := range allocations {
			if alloc.Money < 0 {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, alloc.Category+": money must not be negative")
			}

			category, err := s.categories.GetByName(alloc.Category)
			if err != nil {
				return err
			}

			budget := models.Budget{
				UserID:     userID,
				CategoryID: category.ID,
				Money:      alloc.Money,
				StartDate:  startDate,
				EndDate:    endDate,
			}
			if err := tx.Create(&budget).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			budget.Category = *category
			created = append(created, budget)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget applies the supplied fields to an existing budget.
func (s *budgetService) UpdateBudget(userID, budgetID uint, update BudgetUpdate) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Category != nil {
		category, err := s.categories.GetByName(*update.Category)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}
	if update.Money != nil {
		if *update.Money < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "money must not be negative")
		}
		updates["money"] = *update.Money
	}
	if update.StartDate != nil {
		updates["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		updates["end_date"] = *update.EndDate
	}
	if update.StartDate != nil && update.EndDate != nil && update.EndDate.Before(*update.StartDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must not be before start_date")
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetBudgetByID(userID, budgetID)
}

// DeleteBudget permanently deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// categorySum is one row of the per-category aggregation.
type categorySum struct {
	Name  string
	Total int64
}

// RecommendBudgets allocates the target total across all catalog categories
// proportionally to historical budget amounts. With RecommendScopeUser the
// aggregation covers only the caller's budgets; RecommendScopeGlobal covers
// everyone's. Each category's share of the historical grand total is rounded
// to two decimals before scaling, so the output amounts may not sum exactly
// to the target. Categories with no history get 0, and an empty history
// yields all-zero amounts.
func (s *budgetService) RecommendBudgets(userID uint, total int64, scope RecommendScope) (map[string]float64, error) {
	names, err := s.categories.GetAllNames()
	if err != nil {
		return nil, err
	}

	base := s.db.Model(&models.Budget{}).
		Joins("JOIN categories ON categories.id = budgets.category_id")
	if scope != RecommendScopeGlobal {
		base = base.Where("budgets.user_id = ?", userID)
	}

	var sums []categorySum
	if err := base.Select("categories.name AS name, SUM(budgets.money) AS total").
		Group("categories.name").Scan(&sums).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var grandTotal int64
	for _, row := range sums {
		grandTotal += row.Total
	}

	shares := make(map[string]float64, len(names))
	for _, name := range names {
		shares[name] = 0.0
	}
	if grandTotal > 0 {
		for _, row := range sums {
			shares[row.Name] = math.Round(float64(row.Total)/float64(grandTotal)*100) / 100
		}
	}

	recommendation := make(map[string]float64, len(shares))
	for name, share := range shares {
		recommendation[name] = share * float64(total)
	}
	return recommendation, nil
}
