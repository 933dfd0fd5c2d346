package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=USER STORE_OWNER"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Email: "ann@x.com", Role: "USER"})
		assert.Nil(t, errs)
	})

	t.Run("MissingFields", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{})
		assert.Len(t, errs, 2)
		assert.Equal(t, "This field is required", errs["Email"])
	})

	t.Run("BadEmailAndRole", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Email: "nope", Role: "ROOT"})
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Contains(t, errs["Role"], "Must be one of")
	})
}
