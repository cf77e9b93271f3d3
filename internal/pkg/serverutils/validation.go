package serverutils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"compare-audius-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json field names so messages match the request body
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// IsSlug reports whether s is a lowercase, hyphen separated URL key
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidateRequest checks validate tags and returns a validation-kind error
// naming the first offending field.
func ValidateRequest(req interface{}) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation("Invalid request")
	}

	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return apperror.Validation("%s is required", field)
	case "oneof":
		return apperror.Validation("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "slug":
		return apperror.Validation("%s must contain only lowercase letters, numbers and hyphens", field)
	case "max":
		return apperror.Validation("%s must be at most %s characters", field, fe.Param())
	case "min":
		return apperror.Validation("%s must not be empty", field)
	default:
		return apperror.Validation("%s is invalid", field)
	}
}

// ParseAndValidate binds the JSON body into req and validates it
func ParseAndValidate(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	return ValidateRequest(req)
}

// RequireParam returns a trimmed route parameter or a validation error
func RequireParam(ctx *fiber.Ctx, name string) (string, error) {
	v := strings.TrimSpace(ctx.Params(name))
	if v == "" {
		return "", apperror.Validation("%s is required", name)
	}
	return v, nil
}
