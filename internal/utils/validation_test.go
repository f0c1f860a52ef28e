package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type labelRequest struct {
	Label string `validate:"required,max=8"`
}

func TestValidateAndFormat(t *testing.T) {
	assert.NoError(t, Validate(labelRequest{Label: "18-30"}))

	err := Validate(labelRequest{})
	assert.Error(t, err)
	assert.Equal(t, "Label failed on 'required'", FormatValidationError(err))

	err = Validate(labelRequest{Label: "much too long"})
	assert.Equal(t, "Label failed on 'max'", FormatValidationError(err))
}
