package validator

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"sportapp/pkg/e"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := RegisterCustomValidations(validate); err != nil {
		panic(err)
	}
}

// ValidateStruct returns *e.ValidationError when s violates its validate tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return e.Wrap("validator.ValidateStruct", err)
	}

	out := &e.ValidationError{Errors: make([]e.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, e.FieldError{
			Loc: fieldLoc(fe.Namespace()),
			Msg: fieldMsg(fe),
		})
	}
	return out
}

// fieldLoc drops Go type names: "StartSessionRequest.initial_location.latitude"
// becomes ["body", "initial_location", "latitude"]. Embedded structs carry no json
// name and show up capitalized, so they are dropped too.
func fieldLoc(namespace string) []string {
	loc := []string{"body"}
	for _, part := range strings.Split(namespace, ".") {
		if part == "" || unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		loc = append(loc, part)
	}
	return loc
}

func fieldMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "lat":
		return "latitude must be within [-90, 90]"
	case "lng":
		return "longitude must be within [-180, 180]"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
