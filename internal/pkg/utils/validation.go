package utils

import (
	"abdm-link-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate            *validator.Validate
	hexadecimalRegex    = regexp.MustCompile(constvars.RegexHexadecimal)
	hyphenatedUUIDRegex = regexp.MustCompile(constvars.RegexHyphenatedUUID)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("patient_uuid", validatePatientUUID)
	validate.RegisterValidation("hyphenated_uuid", validateHyphenatedUUID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsPatientUUID accepts 32 or 36 hexadecimal characters once every hyphen
// is removed.
func IsPatientUUID(value string) bool {
	stripped := strings.ReplaceAll(value, "-", "")
	if len(stripped) != 32 && len(stripped) != 36 {
		return false
	}
	return hexadecimalRegex.MatchString(stripped)
}

func IsHyphenatedUUID(value string) bool {
	return hyphenatedUUIDRegex.MatchString(value)
}

func validatePatientUUID(fl validator.FieldLevel) bool {
	return IsPatientUUID(fl.Field().String())
}

func validateHyphenatedUUID(fl validator.FieldLevel) bool {
	return IsHyphenatedUUID(fl.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
