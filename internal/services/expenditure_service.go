package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
)

// expenditureService handles expenditure-related business logic.
type expenditureService struct {
	db         *gorm.DB
	categories CategoryServicer
}

// NewExpenditureService creates a new ExpenditureServicer.
func NewExpenditureService(db *gorm.DB, categories CategoryServicer) ExpenditureServicer {
	return &expenditureService{db: db, categories: categories}
}

// CreateExpenditure records a single spending event for the user.
// isSum defaults to true when not supplied.
func (s *expenditureService) CreateExpenditure(userID uint, categoryName string, money int64, expenseDate time.Time, comment string, isSum *bool) (*models.Expenditure, error) {
	if money < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "money must not be negative")
	}

	category, err := s.categories.GetByName(categoryName)
	if err != nil {
		return nil, err
	}

	expenditure := &models.Expenditure{
		UserID:      userID,
		CategoryID:  category.ID,
		Money:       money,
		Comment:     comment,
		ExpenseDate: expenseDate,
		IsSum:       true,
	}
	if isSum != nil {
		expenditure.IsSum = *isSum
	}

	if err := s.db.Create(expenditure).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenditure.Category = *category
	return expenditure, nil
}

// GetUserExpenditures returns the user's expenditures in insertion order.
// An empty history is reported as ErrNoExpenditures rather than an empty
// list; budget listing deliberately differs here.
func (s *expenditureService) GetUserExpenditures(userID uint) ([]models.Expenditure, error) {
	var expenditures []models.Expenditure
	if err := s.db.Preload("Category").Where("user_id = ?", userID).
		Order("id").Find(&expenditures).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(expenditures) == 0 {
		return nil, apperrors.ErrNoExpenditures
	}
	return expenditures, nil
}

// GetExpenditureByID returns an expenditure by ID if it belongs to the user.
func (s *expenditureService) GetExpenditureByID(userID, expenditureID uint) (*models.Expenditure, error) {
	var expenditure models.Expenditure
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", expenditureID, userID).
		First(&expenditure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenditureNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expenditure, nil
}

// UpdateExpenditure applies the supplied fields to an existing expenditure.
func (s *expenditureService) UpdateExpenditure(userID, expenditureID uint, update ExpenditureUpdate) (*models.Expenditure, error) {
	expenditure, err := s.GetExpenditureByID(userID, expenditureID)
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
	if update.Comment != nil {
		updates["comment"] = *update.Comment
	}
	if update.ExpenseDate != nil {
		updates["expense_date"] = *update.ExpenseDate
	}
	if update.IsSum != nil {
		updates["is_sum"] = *update.IsSum
	}

	if len(updates) > 0 {
		if err := s.db.Model(expenditure).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetExpenditureByID(userID, expenditureID)
}

// DeleteExpenditure permanently deletes an expenditure.
func (s *expenditureService) DeleteExpenditure(userID, expenditureID uint) error {
	expenditure, err := s.GetExpenditureByID(userID, expenditureID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expenditure).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
