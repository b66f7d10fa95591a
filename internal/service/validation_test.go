package service

import (
	"testing"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Struct(model.CreateAppointmentRequest{Email: "x"})
	appErr := apperror.From(err)
	require.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, invalidInputMessage, appErr.Message)

	byField := map[string]string{}
	for _, f := range appErr.Fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "Name must be at least 2 characters", byField["name"])
	assert.Equal(t, "Please enter a valid email address", byField["email"])
	assert.Contains(t, byField, "sessionType")
	assert.Contains(t, byField, "date")
	assert.Contains(t, byField, "time")
}

func TestValidator_CollapsesSliceErrors(t *testing.T) {
	v := NewValidator()

	err := v.Struct(model.SubscribeRequest{Email: "a@example.com", Interests: []string{"x", "y"}})
	appErr := apperror.From(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "interests", appErr.Fields[0].Field)
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(model.SubscribeRequest{Email: "a@example.com", Interests: []string{"ai"}}))
}
