package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneValidation(t *testing.T) {
	RegisterCustomValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Phone string `binding:"phone" validate:"phone"`
	}

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"local number", "01712345678", true},
		{"international number", "+8801712345678", true},
		{"minimum length", "1234567", true},
		{"maximum length", "123456789012345", true},
		{"too short", "123456", false},
		{"too long", "1234567890123456", false},
		{"letters", "not-a-phone", false},
		{"plus in the middle", "123+4567890", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(payload{Phone: tt.phone})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
