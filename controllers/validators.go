package controllers

import (
	"fmt"
	"sync"

	"github.com/AGTechathon/Agriminds/entity"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// enumValidations backs the custom binding tags.
var enumValidations = map[string]validator.Func{
	"role": func(fl validator.FieldLevel) bool {
		r := entity.Role(fl.Field().String())
		return r.Valid() && r != entity.RoleAdmin
	},
	"orderstatus": func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).Valid()
	},
	"cropstatus": func(fl validator.FieldLevel) bool {
		return entity.CropStatus(fl.Field().String()).Valid()
	},
	"grade": func(fl validator.FieldLevel) bool {
		return entity.InspectionGrade(fl.Field().String()).Valid()
	},
}

// RegisterValidators adds the enum checks used in binding tags. It panics
// when they cannot be installed, since every request using them would fail.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("controllers: unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := registerValidations(v, enumValidations); err != nil {
			panic(err)
		}
	})
}

func registerValidations(v *validator.Validate, fns map[string]validator.Func) error {
	for tag, fn := range fns {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}
