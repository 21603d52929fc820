package models

import "time"

// Budget represents a planned spending allotment for one category over a
// date range, owned by one user.
type Budget struct {
	Base
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CategoryID uint      `gorm:"not null" json:"category_id"`
	Money      int64     `gorm:"not null" json:"money"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
