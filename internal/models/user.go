package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Username            string     `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Password            string     `gorm:"not null" json:"-"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	IsAdmin             bool       `gorm:"default:false" json:"-"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Budgets      []Budget      `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Expenditures []Expenditure `gorm:"foreignKey:UserID" json:"expenditures,omitempty"`
}
