package models

// Category represents a spending category. Categories are master data shared
// by all users and are only written by migrations, never through the API.
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
	Expenditures []Expenditure `gorm:"foreignKey:CategoryID" json:"expenditures,omitempty"`
}
