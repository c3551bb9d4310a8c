package utils

import (
	"mindcare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("specialty", validateSpecialty)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSpecialty(fl validator.FieldLevel) bool {
	specialty := fl.Field().String()
	for _, supported := range constvars.TherapistSpecialties {
		if specialty == supported {
			return true
		}
	}
	return false
}
