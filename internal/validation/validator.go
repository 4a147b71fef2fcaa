package validation

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"task-filter/internal/config"
	"task-filter/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const defaultNameMaxLength = 255

// Validator wraps a go-playground validator with English messages and the
// tf-specific tags filter_name and filter_op.
type Validator struct {
	validate      *validator.Validate
	translator    ut.Translator
	nameMaxLength int
}

// NewValidator creates a validator with default limits
func NewValidator() *Validator {
	return NewValidatorWithConfig(nil)
}

// NewValidatorWithConfig creates a validator using the configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	v := &Validator{nameMaxLength: defaultNameMaxLength}
	if cfg != nil && cfg.Validation.FilterNameMaxLength > 0 {
		v.nameMaxLength = cfg.Validation.FilterNameMaxLength
	}

	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	v.translator, _ = uni.GetTranslator("en")

	v.validate = validator.New(validator.WithRequiredStructEnabled())
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" || tag == "-" {
			return fld.Name
		}
		return tag
	})
	_ = en_translations.RegisterDefaultTranslations(v.validate, v.translator)

	v.registerFilterName()
	v.registerFilterOperator()
	return v
}

// Struct validates s and collects every failure into a ValidationError.
// It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	result := NewValidationError()
	for _, fe := range verrs {
		result.AddError(fieldPath(fe), errorTypeFor(fe.Tag()), fe.Translate(v.translator), fe.Value())
	}
	return result
}

// NameMaxLength returns the maximum filter name length in characters
func (v *Validator) NameMaxLength() int {
	return v.nameMaxLength
}

func (v *Validator) registerFilterName() {
	_ = v.validate.RegisterValidation("filter_name", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= v.nameMaxLength
	})
	_ = v.validate.RegisterTranslation("filter_name", v.translator,
		func(t ut.Translator) error {
			return t.Add("filter_name", "{0} must be at most {1} characters long", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("filter_name", fe.Field(), strconv.Itoa(v.nameMaxLength))
			return msg
		},
	)
}

func (v *Validator) registerFilterOperator() {
	_ = v.validate.RegisterValidation("filter_op", func(fl validator.FieldLevel) bool {
		return domain.FilterOperator(fl.Field().Int()).IsValid()
	})

	names := make([]string, 0, len(domain.Operators()))
	for _, op := range domain.Operators() {
		names = append(names, op.String())
	}
	_ = v.validate.RegisterTranslation("filter_op", v.translator,
		func(t ut.Translator) error {
			return t.Add("filter_op", "{0} must be one of {1}", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("filter_op", fe.Field(), strings.Join(names, ", "))
			return msg
		},
	)
}

// fieldPath drops the root struct name from the namespace, giving
// e.g. "TagIds.Value[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func errorTypeFor(tag string) ValidationErrorType {
	switch tag {
	case "required":
		return ErrorTypeRequired
	case "filter_name", "max", "min":
		return ErrorTypeInvalidLength
	default:
		return ErrorTypeInvalidValue
	}
}
