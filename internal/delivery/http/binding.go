package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

// registerValidators adds custom rules to gin's binding validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("swipeaction", func(fl validator.FieldLevel) bool {
		return domain.SwipeAction(fl.Field().String()).Valid()
	})
}
