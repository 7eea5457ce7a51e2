package checkout

import (
	"regexp"

	validatorv10 "github.com/go-playground/validator/v10"
)

// the storefront accepts any "x@y.z" shape; stricter RFC checking belongs
// to the order backend
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = newValidator()

func newValidator() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("contact_email", func(fl validatorv10.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return v
}

// messages maps struct field + failed rule to the user-facing message. The
// first failing rule per field wins, so an empty email reports "required"
// rather than the format message.
var messages = map[string]map[string]string{
	"Name":   {"required": "Name is required"},
	"Email":  {"required": "Email is required", "contact_email": "Invalid email format"},
	"Phone":  {"required": "Phone number is required"},
	"Street": {"required": "Street address is required"},
	"City":   {"required": "City is required"},
	"State":  {"required": "State is required"},
	"Zip":    {"required": "ZIP code is required"},
}

// fieldKeys maps struct fields to the wire names used in error responses.
var fieldKeys = map[string]string{
	"Name":   "name",
	"Email":  "email",
	"Phone":  "phone",
	"Street": "street",
	"City":   "city",
	"State":  "state",
	"Zip":    "zip",
}

type Result struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Validate checks every required field independently and returns a message
// per violated field, so the user sees all problems at once. It is a pure
// function of the form: no network or stock calls.
func Validate(f Form) Result {
	err := validate.Struct(f)
	if err == nil {
		return Result{Valid: true, FieldErrors: map[string]string{}}
	}

	fieldErrors := map[string]string{}
	for _, fe := range err.(validatorv10.ValidationErrors) {
		key, ok := fieldKeys[fe.StructField()]
		if !ok {
			continue
		}
		if msg, ok := messages[fe.StructField()][fe.Tag()]; ok {
			fieldErrors[key] = msg
		}
	}

	return Result{Valid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}
