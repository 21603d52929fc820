package services

import (
	"time"

	"moneybook/internal/models"
	"moneybook/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	ClearRefreshTokenHash(userID uint) error
}

// CategoryServicer defines the contract for the read-only category catalog.
// Name resolution is an explicit capability so services that accept category
// names can be tested against an in-memory fake.
type CategoryServicer interface {
	GetByName(name string) (*models.Category, error)
	GetAllNames() ([]string, error)
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
}

// BudgetAllocation is one category→amount pair from a bulk budget submission.
// Order is significant: created rows are returned in submission order.
type BudgetAllocation struct {
	Category string
	Money    int64
}

// BudgetUpdate holds the optional fields of a partial budget update.
// Nil fields are left untouched.
type BudgetUpdate struct {
	Category  *string
	Money     *int64
	StartDate *time.Time
	EndDate   *time.Time
}

// RecommendScope selects whose budget history feeds the recommendation.
type RecommendScope string

const (
	// RecommendScopeUser aggregates only the caller's budgets.
	RecommendScopeUser RecommendScope = "user"
	// RecommendScopeGlobal aggregates budgets across all users.
	RecommendScopeGlobal RecommendScope = "global"
)

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	GetUserBudgets(userID uint, month *int) ([]models.Budget, error)
	CreateBudgets(userID uint, startDate, endDate time.Time, allocations []BudgetAllocation) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	UpdateBudget(userID, budgetID uint, update BudgetUpdate) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	RecommendBudgets(userID uint, total int64, scope RecommendScope) (map[string]float64, error)
}

// ExpenditureUpdate holds the optional fields of a partial expenditure update.
type ExpenditureUpdate struct {
	Category    *string
	Money       *int64
	Comment     *string
	ExpenseDate *time.Time
	IsSum       *bool
}

// ExpenditureServicer defines the contract for expenditure-related business logic.
type ExpenditureServicer interface {
	CreateExpenditure(userID uint, categoryName string, money int64, expenseDate time.Time, comment string, isSum *bool) (*models.Expenditure, error)
	GetUserExpenditures(userID uint) ([]models.Expenditure, error)
	GetExpenditureByID(userID, expenditureID uint) (*models.Expenditure, error)
	UpdateExpenditure(userID, expenditureID uint, update ExpenditureUpdate) (*models.Expenditure, error)
	DeleteExpenditure(userID, expenditureID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
