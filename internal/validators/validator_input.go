package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/buy-from-me/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldProductName   = "name"
	FieldCategory      = "category"
	FieldOriginalPrice = "original_price"
	FieldNewPrice      = "new_price"
	FieldBusinessName  = "business_name"
	FieldCity          = "city"
	FieldRegion        = "region"
	FieldFileExtension = "file_extension"
)

// AllowedImageExtensions is the upload allow-list, compared lower-cased.
var AllowedImageExtensions = []any{"png", "jpg", "jpeg"}

// InputValidator checks client supplied payloads before they reach storage.
type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(*value, fields...)

	case models.ProductInput:
		return v.validateProductInput(value, fields...)
	case *models.ProductInput:
		return v.validateProductInput(*value, fields...)

	case models.BusinessUpdate:
		return v.validateBusinessUpdate(value, fields...)
	case *models.BusinessUpdate:
		return v.validateBusinessUpdate(*value, fields...)

	case models.ImageUpload:
		return v.validateImageUpload(value, fields...)
	case *models.ImageUpload:
		return v.validateImageUpload(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateRegistration(r models.RegistrationRequest, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldUsername: validation.Field(&r.Username, validation.Required, validation.Length(3, 20)),
		FieldEmail:    validation.Field(&r.Email, validation.Required, validation.Length(0, 200), is.Email),
		// bcrypt only reads the first 72 bytes
		FieldPassword: validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	}

	return validateFields(&r, rules, []string{FieldUsername, FieldEmail, FieldPassword}, fields)
}

func (v *InputValidator) validateProductInput(p models.ProductInput, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldProductName:   validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		FieldCategory:      validation.Field(&p.Category, validation.Length(0, 30)),
		FieldOriginalPrice: validation.Field(&p.OriginalPrice, validation.Required, validation.Min(0.0).Exclusive()),
		FieldNewPrice:      validation.Field(&p.NewPrice, validation.Min(0.0)),
	}

	return validateFields(&p, rules, []string{FieldProductName, FieldCategory, FieldOriginalPrice, FieldNewPrice}, fields)
}

func (v *InputValidator) validateBusinessUpdate(b models.BusinessUpdate, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldBusinessName: validation.Field(&b.Name, validation.Required, validation.Length(1, 20)),
		FieldCity:         validation.Field(&b.City, validation.Length(0, 100)),
		FieldRegion:       validation.Field(&b.Region, validation.Length(0, 100)),
	}

	return validateFields(&b, rules, []string{FieldBusinessName, FieldCity, FieldRegion}, fields)
}

func (v *InputValidator) validateImageUpload(u models.ImageUpload, fields ...string) error {
	for _, f := range fields {
		if f != FieldFileExtension {
			return ErrUnknownField
		}
	}

	if err := validation.Validate(u.Extension(), validation.Required, validation.In(AllowedImageExtensions...)); err != nil {
		return ErrInvalidFileExtension
	}

	return nil
}

// validateFields runs the rules named by fields (all of defaults when fields
// is empty) against structPtr.
func validateFields(structPtr any, rules map[string]*validation.FieldRules, defaults, fields []string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	selected := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		rule, ok := rules[f]
		if !ok {
			return ErrUnknownField
		}
		selected = append(selected, rule)
	}

	if err := validation.ValidateStruct(structPtr, selected...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}
