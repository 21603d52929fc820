package models

import "time"

// Expenditure represents a recorded actual spending event.
type Expenditure struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	Money       int64     `gorm:"not null" json:"money"`
	Comment     string    `json:"comment"`
	ExpenseDate time.Time `gorm:"not null" json:"expense_date"`
	// IsSum marks whether the expenditure counts toward summary aggregates.
	IsSum bool `gorm:"default:true" json:"is_sum"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
