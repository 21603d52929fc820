// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// calendarDateLayout is the wire format for all date fields.
const calendarDateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
		_ = v.RegisterValidation("recommend_scope", validateRecommendScope)
	}
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(calendarDateLayout, fl.Field().String())
	return err == nil
}

func validateRecommendScope(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "user", "global":
		return true
	}
	return false
}
