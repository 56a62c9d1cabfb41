package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/buy-from-me/models"
)

func TestInputValidator_Registration(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	valid := models.RegistrationRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	tests := []struct {
		name   string
		modify func(r *models.RegistrationRequest)
		field  string
	}{
		{"short username", func(r *models.RegistrationRequest) { r.Username = "al" }, "username"},
		{"long username", func(r *models.RegistrationRequest) { r.Username = strings.Repeat("a", 21) }, "username"},
		{"bad email", func(r *models.RegistrationRequest) { r.Email = "not-an-email" }, "email"},
		{"missing password", func(r *models.RegistrationRequest) { r.Password = "" }, "password"},
		{"password over bcrypt limit", func(r *models.RegistrationRequest) { r.Password = strings.Repeat("p", 73) }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.modify(&r)

			err := v.Validate(ctx, r)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestInputValidator_ProductInput(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.ProductInput
		wantErr bool
	}{
		{"valid", models.ProductInput{Name: "Bread", OriginalPrice: 100, NewPrice: 80}, false},
		{"free item", models.ProductInput{Name: "Bread", OriginalPrice: 100, NewPrice: 0}, false},
		{"zero original price", models.ProductInput{Name: "Bread", OriginalPrice: 0, NewPrice: 0}, true},
		{"negative original price", models.ProductInput{Name: "Bread", OriginalPrice: -1, NewPrice: 0}, true},
		{"negative new price", models.ProductInput{Name: "Bread", OriginalPrice: 10, NewPrice: -1}, true},
		{"missing name", models.ProductInput{OriginalPrice: 10, NewPrice: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInputValidator_FieldScoping(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	input := models.ProductInput{OriginalPrice: 10, NewPrice: 5}

	assert.NoError(t, v.Validate(ctx, input, FieldOriginalPrice, FieldNewPrice))
	assert.ErrorIs(t, v.Validate(ctx, input, FieldProductName), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, input, "nope"), ErrUnknownField)
}

func TestInputValidator_BusinessUpdate(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.BusinessUpdate{Name: "Alice Bakery", City: "Abuja"}))
	assert.ErrorIs(t, v.Validate(ctx, models.BusinessUpdate{City: "Abuja"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.BusinessUpdate{Name: strings.Repeat("b", 21)}), ErrValidation)
}

func TestInputValidator_ImageUpload(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	for _, name := range []string{"photo.png", "photo.jpg", "photo.JPEG", "a.b.jpg"} {
		assert.NoError(t, v.Validate(ctx, models.ImageUpload{Filename: name}), name)
	}
	for _, name := range []string{"photo.gif", "photo", "png", "photo.png.exe", ""} {
		assert.ErrorIs(t, v.Validate(ctx, models.ImageUpload{Filename: name}), ErrInvalidFileExtension, name)
	}
}

func TestInputValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewInputValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
