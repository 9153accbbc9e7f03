package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Month int    `validate:"gte=1,lte=12"`
}

func TestStructPasses(t *testing.T) {
	err := Struct(sampleRequest{Email: "a@example.com", Name: "Maria", Month: 3})
	assert.NoError(t, err)
}

func TestFieldErrors(t *testing.T) {
	err := Struct(sampleRequest{Email: "not-an-email", Month: 13})
	assert.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "Must be a valid email address", fields["email"])
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Must be at most 12", fields["month"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, FieldErrors(assert.AnError))
}
