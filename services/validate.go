package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bikeshare-explorer/models"
	"bikeshare-explorer/storage"

	"github.com/go-playground/validator/v10"
)

// FilterValidator checks user-supplied filter values against their domains
type FilterValidator struct {
	validate *validator.Validate
	tags     map[string]string // lower-case field name -> validate tag
}

// NewFilterValidator registers the "city" tag against the registry's identifiers
func NewFilterValidator(registry *storage.Registry) *FilterValidator {
	v := validator.New()
	_ = v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
		return registry.Has(fl.Field().String())
	})

	tags := make(map[string]string)
	st := reflect.TypeOf(models.FilterSpec{})
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		tags[strings.ToLower(f.Name)] = f.Tag.Get("validate")
	}
	return &FilterValidator{validate: v, tags: tags}
}

// Normalize lower-cases and trims raw answers, then validates them as a FilterSpec
func (v *FilterValidator) Normalize(city, month, day string) (models.FilterSpec, error) {
	spec := models.FilterSpec{
		City:  normalizeAnswer(city),
		Month: normalizeAnswer(month),
		Day:   normalizeAnswer(day),
	}
	if err := v.Validate(spec); err != nil {
		return models.FilterSpec{}, err
	}
	return spec, nil
}

// Validate checks an already normalized spec
func (v *FilterValidator) Validate(spec models.FilterSpec) error {
	return toValidationError(v.validate.Struct(spec))
}

// Field validates a single normalized value: field is "city", "month" or "day"
func (v *FilterValidator) Field(field, value string) error {
	tag, ok := v.tags[field]
	if !ok {
		return fmt.Errorf("unknown filter field %q", field)
	}
	if err := v.validate.Var(value, tag); err != nil {
		return &models.ValidationError{Field: field, Value: value}
	}
	return nil
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &models.ValidationError{Field: strings.ToLower(fe.Field()), Value: fmt.Sprint(fe.Value())}
	}
	return err
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
