package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var coordinateTags = map[string]validator.Func{
	"lat": inRange(-90, 90),
	"lng": inRange(-180, 180),
}

// RegisterCustomValidations adds the coordinate tags used by geo request bodies.
func RegisterCustomValidations(v *validator.Validate) error {
	for tag, fn := range coordinateTags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

func inRange(lo, hi float64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f >= lo && f <= hi
	}
}
