package handlers

import (
	"sync"

	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators installs the custom binding tags used by the dto package.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("entrykind", validateEntryKind)
		}
	})
}

func validateEntryKind(fl validator.FieldLevel) bool {
	_, ok := domain.ParseEntryKind(fl.Field().String())
	return ok
}
