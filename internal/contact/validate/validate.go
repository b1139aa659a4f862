package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/weblior/contact-api/internal/contact/domain"
)

var (
	// personNamePattern accepts Latin letters, the Hebrew block and
	// whitespace. The landing page serves both English and Hebrew
	// visitors, so names like "יוחנן דוד" must pass.
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\p{Hebrew}\s]+$`)

	// intlPhonePattern is a loose international format: optional +,
	// then digits with common separators, 7-20 characters total.
	intlPhonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)
)

// SubmissionValidator checks a Submission against its field constraints
// and reports every violation, not just the first.
type SubmissionValidator struct {
	engine *validator.Validate
}

func New() (*SubmissionValidator, error) {
	engine := validator.New()

	// Report JSON field names so details line up with what the
	// frontend actually sent.
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := engine.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register person_name: %w", err)
	}

	if err := engine.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return intlPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register intl_phone: %w", err)
	}

	return &SubmissionValidator{engine: engine}, nil
}

// Validate returns nil when the submission satisfies every constraint,
// otherwise one FieldError per violated field.
func (v *SubmissionValidator) Validate(sub *domain.Submission) []domain.FieldError {
	err := v.engine.Struct(sub)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// validator.InvalidValidationError; only reachable with a
		// non-struct argument.
		return []domain.FieldError{{Field: "submission", Message: "invalid submission payload"}}
	}

	details := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, domain.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email address"
	case "person_name":
		return "Full name may only contain letters (Hebrew or Latin) and spaces"
	case "intl_phone":
		return "Please enter a valid phone number"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
