package dto

import (
	"signalalert/model"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations adds the custom binding tags used by the request structs.
// Safe to call more than once.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("reporttype", func(fl validator.FieldLevel) bool {
			_, known := model.ParseReportType(fl.Field().String())
			return known
		})
	})
}
