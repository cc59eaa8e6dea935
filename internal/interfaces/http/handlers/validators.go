package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"gurukul/internal/domain/course"
)

// The coursetype binding rule delegates to the domain so the set of accepted
// kinds lives in one place.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("coursetype", func(fl validator.FieldLevel) bool {
			return course.Kind(fl.Field().String()).IsValid()
		})
	}
}
